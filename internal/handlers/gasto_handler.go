package handlers

import (
	"net/http"
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/database"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/gin-gonic/gin"
)

func GetGastos(c *gin.Context) {
	ListarPaginado[models.Gasto](c, database.DB.Model(&models.Gasto{}).Order("fecha desc, id desc"))
}

func CreateGasto(c *gin.Context) {
	var gasto models.Gasto
	if err := c.ShouldBindJSON(&gasto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if gasto.Concepto == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "concepto is required"})
		return
	}
	if gasto.Fecha.IsZero() {
		gasto.Fecha = models.FechaDe(time.Now())
	}

	if err := database.DB.Create(&gasto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create gasto"})
		return
	}
	c.JSON(http.StatusCreated, gasto)
}

func DeleteGasto(c *gin.Context) {
	res := database.DB.Delete(&models.Gasto{}, c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete gasto"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Gasto not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Gasto deleted successfully"})
}

func ExportGastosCSV(c *gin.Context) {
	var gastos []models.Gasto
	if err := database.DB.Order("fecha").Find(&gastos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gastos"})
		return
	}

	records := make([][]string, 0, len(gastos))
	for _, g := range gastos {
		records = append(records, []string{g.Concepto, g.Monto.StringFixed(2), g.Fecha.String()})
	}
	escribirCSV(c, "gastos.csv", []string{"concepto", "monto", "fecha"}, records)
}
