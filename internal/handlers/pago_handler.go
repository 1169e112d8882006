package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/database"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func GetPagos(c *gin.Context) {
	ListarPaginado[models.Pago](c, database.DB.Model(&models.Pago{}).Order("anio desc, mes desc"))
}

func CreatePago(c *gin.Context) {
	var pago models.Pago
	if err := c.ShouldBindJSON(&pago); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if pago.Mes < 1 || pago.Mes > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mes must be between 1 and 12"})
		return
	}

	// The payment must belong to a known socio
	var socio models.Socio
	if err := database.DB.Where("ci = ?", pago.SocioCI).First(&socio).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown socio CI"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify socio"})
		return
	}

	if pago.FechaPago.IsZero() {
		pago.FechaPago = models.FechaDe(time.Now())
	}
	if err := database.DB.Create(&pago).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pago"})
		return
	}
	c.JSON(http.StatusCreated, pago)
}

func DeletePago(c *gin.Context) {
	res := database.DB.Delete(&models.Pago{}, c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pago"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pago not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pago deleted successfully"})
}

// ImportPagosCSV expects columns: socio, mes, año, monto, fecha_pago
func ImportPagosCSV(c *gin.Context) {
	rows, err := leerCSV(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rowErrors []string
	imported := 0
	for i, row := range rows {
		linea := i + 2
		mes, errMes := strconv.Atoi(row["mes"])
		anio, errAnio := strconv.Atoi(row["año"])
		if row["socio"] == "" || errMes != nil || errAnio != nil || mes < 1 || mes > 12 {
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: socio, mes y año son obligatorios", linea))
			continue
		}

		monto := decimal.Zero
		if row["monto"] != "" {
			if monto, err = decimal.NewFromString(row["monto"]); err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("fila %d: monto inválido %q", linea, row["monto"]))
				continue
			}
		}

		pago := models.Pago{SocioCI: row["socio"], Mes: mes, Anio: anio, Monto: monto}
		if row["fecha_pago"] != "" {
			if err := pago.FechaPago.UnmarshalJSON([]byte(row["fecha_pago"])); err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("fila %d: fecha inválida %q", linea, row["fecha_pago"]))
				continue
			}
		} else {
			pago.FechaPago = models.FechaDe(time.Now())
		}

		if err := database.DB.Create(&pago).Error; err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: no se pudo guardar", linea))
			continue
		}
		imported++
	}
	respuestaImport(c, imported, rowErrors)
}

func ExportPagosCSV(c *gin.Context) {
	var pagos []models.Pago
	if err := database.DB.Order("anio, mes").Find(&pagos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pagos"})
		return
	}

	records := make([][]string, 0, len(pagos))
	for _, p := range pagos {
		records = append(records, []string{
			p.SocioCI,
			strconv.Itoa(p.Mes),
			strconv.Itoa(p.Anio),
			p.Monto.StringFixed(2),
			p.FechaPago.String(),
		})
	}
	escribirCSV(c, "pagos.csv", []string{"socio", "mes", "año", "monto", "fecha_pago"}, records)
}
