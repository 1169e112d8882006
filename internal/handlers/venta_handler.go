package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/database"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// conUpdateLock adds a row lock where the dialect supports it. SQLite takes
// a whole-database write lock instead, so FOR UPDATE would be a syntax error.
func conUpdateLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func GetVentas(c *gin.Context) {
	ListarPaginado[models.Venta](c, database.DB.Model(&models.Venta{}).Order("fecha_venta desc, id desc"))
}

// CreateVenta records a sale and takes the units out of stock in one
// transaction, so the dashboard's reconstruction stays consistent.
func CreateVenta(c *gin.Context) {
	var venta models.Venta
	if err := c.ShouldBindJSON(&venta); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if venta.Cantidad <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cantidad must be positive"})
		return
	}
	if venta.FechaVenta.IsZero() {
		venta.FechaVenta = models.FechaDe(time.Now())
	}

	tx := database.DB.Begin()

	var producto models.Producto
	// Lock the row so two concurrent sales cannot both pass the stock check
	if err := conUpdateLock(tx).First(&producto, venta.ProductoID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto not found"})
		return
	}

	if producto.Stock < venta.Cantidad {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"error": "No hay suficiente stock disponible"})
		return
	}

	producto.Stock -= venta.Cantidad
	if err := tx.Save(&producto).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
		return
	}

	if venta.TotalVenta.IsZero() {
		venta.TotalVenta = producto.PrecioVenta.Mul(decimal.NewFromInt(int64(venta.Cantidad)))
	}
	if err := tx.Create(&venta).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create venta"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusCreated, venta)
}

// DeleteVenta removes a sale and puts its units back on the shelf.
// Leaving the stock decrement in place would skew every weekly estimate.
func DeleteVenta(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid venta ID"})
		return
	}

	tx := database.DB.Begin()

	var venta models.Venta
	if err := tx.First(&venta, id).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"error": "Venta not found"})
		return
	}

	var producto models.Producto
	if err := conUpdateLock(tx).First(&producto, venta.ProductoID).Error; err == nil {
		producto.Stock += venta.Cantidad
		if err := tx.Save(&producto).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore stock"})
			return
		}
	}

	if err := tx.Delete(&venta).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete venta"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusOK, gin.H{"message": "Venta deleted successfully"})
}

func ExportVentasCSV(c *gin.Context) {
	var ventas []models.Venta
	if err := database.DB.Order("fecha_venta").Find(&ventas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ventas"})
		return
	}

	records := make([][]string, 0, len(ventas))
	for _, v := range ventas {
		records = append(records, []string{
			strconv.FormatUint(uint64(v.ProductoID), 10),
			strconv.Itoa(v.Cantidad),
			v.TotalVenta.StringFixed(2),
			v.FechaVenta.String(),
		})
	}
	escribirCSV(c, "ventas.csv", []string{"producto", "cantidad", "total_venta", "fecha_venta"}, records)
}
