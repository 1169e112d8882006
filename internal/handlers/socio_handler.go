package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/FedericoSorianox/Badgers-Admin/internal/database"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/gin-gonic/gin"
)

func GetSocios(c *gin.Context) {
	ListarPaginado[models.Socio](c, database.DB.Model(&models.Socio{}).Order("nombre"))
}

func CreateSocio(c *gin.Context) {
	var socio models.Socio
	if err := c.ShouldBindJSON(&socio); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if socio.CI == "" || socio.Nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ci and nombre are required"})
		return
	}

	if err := database.DB.Create(&socio).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Socio with that CI already exists"})
		return
	}
	c.JSON(http.StatusCreated, socio)
}

// UpdateSocio applies a partial update; only the fields sent change
func UpdateSocio(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid socio ID"})
		return
	}

	var socio models.Socio
	if err := database.DB.First(&socio, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Socio not found"})
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	delete(updateData, "id")

	if err := database.DB.Model(&socio).Updates(updateData).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update socio"})
		return
	}
	c.JSON(http.StatusOK, socio)
}

func DeleteSocio(c *gin.Context) {
	res := database.DB.Delete(&models.Socio{}, c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete socio"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Socio not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Socio deleted successfully"})
}

// ImportSociosCSV expects columns: ci, nombre, celular, activo
func ImportSociosCSV(c *gin.Context) {
	rows, err := leerCSV(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rowErrors []string
	imported := 0
	for i, row := range rows {
		if row["ci"] == "" || row["nombre"] == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: ci y nombre son obligatorios", i+2))
			continue
		}
		socio := models.Socio{
			CI:      row["ci"],
			Nombre:  row["nombre"],
			Celular: row["celular"],
			Activo:  row["activo"] != "false" && row["activo"] != "0",
		}
		if err := database.DB.Create(&socio).Error; err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: CI %s duplicada", i+2, socio.CI))
			continue
		}
		imported++
	}
	respuestaImport(c, imported, rowErrors)
}

func ExportSociosCSV(c *gin.Context) {
	var socios []models.Socio
	if err := database.DB.Order("nombre").Find(&socios).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch socios"})
		return
	}

	records := make([][]string, 0, len(socios))
	for _, s := range socios {
		records = append(records, []string{s.CI, s.Nombre, s.Celular, strconv.FormatBool(s.Activo)})
	}
	escribirCSV(c, "socios.csv", []string{"ci", "nombre", "celular", "activo"}, records)
}
