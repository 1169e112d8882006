package handlers

import (
	"net/http"
	"os"

	"github.com/FedericoSorianox/Badgers-Admin/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the whole API surface onto r. Called by the server
// binary and by the handler tests.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "online"}) })
	r.POST("/login", Login)
	r.Static("/uploads", "./uploads")

	// Only opens if we explicitly allow it in .env
	if os.Getenv("ALLOW_REGISTRATION") == "true" {
		r.POST("/register", Register)
	}

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware())
	{
		// PUBLIC TO STAFF & ADMIN
		api.GET("/dashboard-stats/", GetDashboardStats)

		api.GET("/socios/", GetSocios)
		api.GET("/pagos/", GetPagos)
		api.POST("/pagos/", CreatePago)
		api.GET("/productos/", GetProductos)
		api.GET("/ventas/", GetVentas)
		api.POST("/ventas/", CreateVenta)
		api.DELETE("/ventas/:id/", DeleteVenta)
		api.GET("/gastos/", GetGastos)
		api.GET("/finanzas/resumen/", GetResumenFinanciero)

		// ADMIN ONLY
		admin := api.Group("/")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/ask", AskAI)

			admin.POST("/socios/", CreateSocio)
			admin.PUT("/socios/:id/", UpdateSocio)
			admin.PATCH("/socios/:id/", UpdateSocio)
			admin.DELETE("/socios/:id/", DeleteSocio)

			admin.DELETE("/pagos/:id/", DeletePago)

			admin.POST("/productos/", CreateProducto)
			admin.PUT("/productos/:id/", UpdateProducto)
			admin.PATCH("/productos/:id/", UpdateProducto)
			admin.DELETE("/productos/:id/", DeleteProducto)

			admin.POST("/gastos/", CreateGasto)
			admin.DELETE("/gastos/:id/", DeleteGasto)

			// Bulk CSV in / out
			admin.POST("/socios/import_csv/", ImportSociosCSV)
			admin.POST("/pagos/import_csv/", ImportPagosCSV)
			admin.POST("/productos/import_csv/", ImportProductosCSV)
			admin.GET("/socios/export_csv/", ExportSociosCSV)
			admin.GET("/pagos/export_csv/", ExportPagosCSV)
			admin.GET("/productos/export_csv/", ExportProductosCSV)
			admin.GET("/ventas/export_csv/", ExportVentasCSV)
			admin.GET("/gastos/export_csv/", ExportGastosCSV)
		}
	}
}
