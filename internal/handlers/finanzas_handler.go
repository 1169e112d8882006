package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/database"

	"github.com/gin-gonic/gin"
)

// GetResumenFinanciero returns the income/expense summary for one month.
// Defaults to the current month when ?mes= / ?año= are absent.
func GetResumenFinanciero(c *gin.Context) {
	now := time.Now()
	mes, err := strconv.Atoi(c.DefaultQuery("mes", strconv.Itoa(int(now.Month()))))
	if err != nil || mes < 1 || mes > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mes"})
		return
	}
	anio, err := strconv.Atoi(c.DefaultQuery("año", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid año"})
		return
	}

	resumen, err := database.GetResumenFinanciero(mes, anio)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		return
	}
	c.JSON(http.StatusOK, resumen)
}
