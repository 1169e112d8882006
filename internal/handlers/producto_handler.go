package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/FedericoSorianox/Badgers-Admin/internal/database"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func GetProductos(c *gin.Context) {
	ListarPaginado[models.Producto](c, database.DB.Model(&models.Producto{}).Order("id"))
}

// The inventory form submits multipart (it may carry a photo); plain JSON is
// accepted too for API clients.
func CreateProducto(c *gin.Context) {
	var producto models.Producto

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		p, err := productoDesdeForm(c, models.Producto{})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		producto = p
	} else if err := c.ShouldBindJSON(&producto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if producto.Nombre == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nombre is required"})
		return
	}
	if producto.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stock cannot be negative"})
		return
	}

	if err := database.DB.Create(&producto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create producto"})
		return
	}
	c.JSON(http.StatusCreated, producto)
}

func UpdateProducto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid producto ID"})
		return
	}

	var producto models.Producto
	if err := database.DB.First(&producto, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto not found"})
		return
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		updated, err := productoDesdeForm(c, producto)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		producto = updated
		if err := database.DB.Save(&producto).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update producto"})
			return
		}
	} else {
		var updateData map[string]interface{}
		if err := c.ShouldBindJSON(&updateData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
			return
		}
		delete(updateData, "id")
		if err := database.DB.Model(&producto).Updates(updateData).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update producto"})
			return
		}
	}

	c.JSON(http.StatusOK, producto)
}

func DeleteProducto(c *gin.Context) {
	res := database.DB.Delete(&models.Producto{}, c.Param("id"))
	if res.Error != nil {
		// Usually a foreign key: the product has recorded sales
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not delete producto. It might be linked to past sales."})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Producto not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Producto deleted successfully"})
}

// productoDesdeForm overlays the multipart form fields onto base, saving the
// uploaded photo (if any) under ./uploads with a fresh name.
func productoDesdeForm(c *gin.Context, base models.Producto) (models.Producto, error) {
	if v, ok := c.GetPostForm("nombre"); ok {
		base.Nombre = v
	}
	if v, ok := c.GetPostForm("precio_costo"); ok && v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return base, fmt.Errorf("invalid precio_costo %q", v)
		}
		base.PrecioCosto = d
	}
	if v, ok := c.GetPostForm("precio_venta"); ok && v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return base, fmt.Errorf("invalid precio_venta %q", v)
		}
		base.PrecioVenta = d
	}
	if v, ok := c.GetPostForm("stock"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return base, fmt.Errorf("invalid stock %q", v)
		}
		base.Stock = n
	}

	file, err := c.FormFile("foto")
	if err != nil {
		return base, nil // photo is optional
	}
	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := c.SaveUploadedFile(file, "./uploads/"+filename); err != nil {
		return base, fmt.Errorf("failed to save photo")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}
	base.FotoURL = baseURL + "/uploads/" + filename
	return base, nil
}

// ImportProductosCSV expects columns: nombre, precio_costo, precio_venta, stock
func ImportProductosCSV(c *gin.Context) {
	rows, err := leerCSV(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var rowErrors []string
	imported := 0
	for i, row := range rows {
		linea := i + 2
		if row["nombre"] == "" {
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: nombre es obligatorio", linea))
			continue
		}
		producto := models.Producto{Nombre: row["nombre"]}
		if row["precio_costo"] != "" {
			if producto.PrecioCosto, err = decimal.NewFromString(row["precio_costo"]); err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("fila %d: precio_costo inválido", linea))
				continue
			}
		}
		if row["precio_venta"] != "" {
			if producto.PrecioVenta, err = decimal.NewFromString(row["precio_venta"]); err != nil {
				rowErrors = append(rowErrors, fmt.Sprintf("fila %d: precio_venta inválido", linea))
				continue
			}
		}
		if row["stock"] != "" {
			if producto.Stock, err = strconv.Atoi(row["stock"]); err != nil || producto.Stock < 0 {
				rowErrors = append(rowErrors, fmt.Sprintf("fila %d: stock inválido", linea))
				continue
			}
		}
		if err := database.DB.Create(&producto).Error; err != nil {
			rowErrors = append(rowErrors, fmt.Sprintf("fila %d: no se pudo guardar", linea))
			continue
		}
		imported++
	}
	respuestaImport(c, imported, rowErrors)
}

func ExportProductosCSV(c *gin.Context) {
	var productos []models.Producto
	if err := database.DB.Order("id").Find(&productos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch productos"})
		return
	}

	records := make([][]string, 0, len(productos))
	for _, p := range productos {
		records = append(records, []string{
			p.Nombre,
			p.PrecioCosto.StringFixed(2),
			p.PrecioVenta.StringFixed(2),
			strconv.Itoa(p.Stock),
		})
	}
	escribirCSV(c, "inventario.csv", []string{"nombre", "precio_costo", "precio_venta", "stock"}, records)
}
