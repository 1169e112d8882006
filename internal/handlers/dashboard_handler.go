package handlers

import (
	"net/http"
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/database"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats serves the aggregate counters the dashboard merges with
// its own derived figures. The client recomputes socios_activos with the
// exemption list applied; the server-side number is the raw activo count.
func GetDashboardStats(c *gin.Context) {
	var activos, inactivos, enInventario int64

	if err := database.DB.Model(&models.Socio{}).Where("activo = ?", true).Count(&activos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count socios"})
		return
	}
	if err := database.DB.Model(&models.Socio{}).Where("activo = ?", false).Count(&inactivos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count socios"})
		return
	}
	// Sold-out products do not count as inventory
	if err := database.DB.Model(&models.Producto{}).Where("stock > 0").Count(&enInventario).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count productos"})
		return
	}

	now := time.Now()
	resumen, err := database.GetResumenFinanciero(int(now.Month()), now.Year())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"socios_activos":          activos,
		"socios_inactivos":        inactivos,
		"productos_en_inventario": enInventario,
		"ingresos_mes":            resumen.IngresoCuotas.Add(resumen.IngresoVentas),
		"egresos_mes":             resumen.Egresos,
		"balance_mes":             resumen.Balance,
	})
}
