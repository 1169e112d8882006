package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FedericoSorianox/Badgers-Admin/internal/auth"
	"github.com/FedericoSorianox/Badgers-Admin/internal/database"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// Per-test in-memory database to avoid cross-test interference
	_, err := database.OpenMemory(t.Name())
	require.NoError(t, err)
	r := gin.New()
	RegisterRoutes(r)
	return r
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "admin")
	require.NoError(t, err)
	return token
}

func staffToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(2, "staff")
	require.NoError(t, err)
	return token
}

func httpDo(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r := setupRouter(t)
	w := httpDo(r, "GET", "/api/socios/", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminOnlyRoutes(t *testing.T) {
	r := setupRouter(t)
	socio := models.Socio{CI: "1", Nombre: "Ana", Activo: true}

	w := httpDo(r, "POST", "/api/socios/", staffToken(t), socio)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = httpDo(r, "POST", "/api/socios/", adminToken(t), socio)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestSocioCRUDAndPagination(t *testing.T) {
	r := setupRouter(t)
	admin := adminToken(t)

	for i, nombre := range []string{"Ana", "Bruno", "Carla"} {
		w := httpDo(r, "POST", "/api/socios/", admin, models.Socio{
			CI: fmt.Sprintf("10%d", i), Nombre: nombre, Activo: true,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Duplicate CI rejected
	w := httpDo(r, "POST", "/api/socios/", admin, models.Socio{CI: "100", Nombre: "Otra"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Bare array without ?limit=
	w = httpDo(r, "GET", "/api/socios/", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var socios []models.Socio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &socios))
	require.Len(t, socios, 3)

	// Envelope with ?limit=
	w = httpDo(r, "GET", "/api/socios/?limit=2", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Count    int            `json:"count"`
		Next     *string        `json:"next"`
		Previous *string        `json:"previous"`
		Results  []models.Socio `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Equal(t, 3, page.Count)
	require.Len(t, page.Results, 2)
	require.NotNil(t, page.Next)
	require.Nil(t, page.Previous)
	require.Contains(t, *page.Next, "offset=2")

	// Second page
	w = httpDo(r, "GET", "/api/socios/?limit=2&offset=2", admin, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Results, 1)
	require.Nil(t, page.Next)
	require.NotNil(t, page.Previous)

	// Partial update
	id := socios[0].ID
	w = httpDo(r, "PATCH", fmt.Sprintf("/api/socios/%d/", id), admin, map[string]interface{}{"activo": false})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Socio
	require.NoError(t, database.DB.First(&updated, id).Error)
	require.False(t, updated.Activo)

	// Delete
	w = httpDo(r, "DELETE", fmt.Sprintf("/api/socios/%d/", id), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = httpDo(r, "DELETE", fmt.Sprintf("/api/socios/%d/", id), admin, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestVentaStockFlow(t *testing.T) {
	r := setupRouter(t)
	admin := adminToken(t)

	w := httpDo(r, "POST", "/api/productos/", admin, models.Producto{
		Nombre:      "Agua",
		PrecioVenta: decimal.NewFromInt(50),
		Stock:       10,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var producto models.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &producto))

	// A sale takes its units out of stock and computes the total
	w = httpDo(r, "POST", "/api/ventas/", admin, map[string]interface{}{
		"producto":    producto.ID,
		"cantidad":    4,
		"fecha_venta": "2026-07-14",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var venta models.Venta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &venta))
	require.Equal(t, "200", venta.TotalVenta.String())

	require.NoError(t, database.DB.First(&producto, producto.ID).Error)
	require.Equal(t, 6, producto.Stock)

	// Selling more than the shelf holds is rejected before any write
	w = httpDo(r, "POST", "/api/ventas/", admin, map[string]interface{}{
		"producto": producto.ID,
		"cantidad": 100,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NoError(t, database.DB.First(&producto, producto.ID).Error)
	require.Equal(t, 6, producto.Stock)

	// Deleting the sale puts the units back
	w = httpDo(r, "DELETE", fmt.Sprintf("/api/ventas/%d/", venta.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, database.DB.First(&producto, producto.ID).Error)
	require.Equal(t, 10, producto.Stock)
}

func TestCreatePagoValidation(t *testing.T) {
	r := setupRouter(t)
	admin := adminToken(t)

	// Unknown socio
	w := httpDo(r, "POST", "/api/pagos/", admin, map[string]interface{}{
		"socio": "999", "mes": 7, "año": 2026,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, database.DB.Create(&models.Socio{CI: "999", Nombre: "Ana", Activo: true}).Error)

	// Month out of range
	w = httpDo(r, "POST", "/api/pagos/", admin, map[string]interface{}{
		"socio": "999", "mes": 13, "año": 2026,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/pagos/", admin, map[string]interface{}{
		"socio": "999", "mes": 7, "año": 2026, "monto": 1200,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var pago models.Pago
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pago))
	require.Equal(t, 2026, pago.Anio)
	require.False(t, pago.FechaPago.IsZero())
}

func csvUpload(r *gin.Engine, path, token, csvBody string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("file", "data.csv")
	fmt.Fprint(fw, csvBody)
	mw.Close()

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportSociosCSV(t *testing.T) {
	r := setupRouter(t)

	csvBody := "ci,nombre,celular,activo\n" +
		"100,Ana,099111222,true\n" +
		",SinCI,,true\n" + // missing CI, collected as a row error
		"200,Bruno,,false\n"

	w := csvUpload(r, "/api/socios/import_csv/", adminToken(t), csvBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message  string   `json:"message"`
		Imported int      `json:"imported"`
		Errors   []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Imported)
	require.Len(t, resp.Errors, 1)
	require.Contains(t, resp.Errors[0], "fila 3")

	var count int64
	require.NoError(t, database.DB.Model(&models.Socio{}).Count(&count).Error)
	require.EqualValues(t, 2, count)

	var bruno models.Socio
	require.NoError(t, database.DB.Where("ci = ?", "200").First(&bruno).Error)
	require.False(t, bruno.Activo)
}

func TestImportCSVWithoutFile(t *testing.T) {
	r := setupRouter(t)
	w := httpDo(r, "POST", "/api/socios/import_csv/", adminToken(t), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportSociosCSV(t *testing.T) {
	r := setupRouter(t)
	require.NoError(t, database.DB.Create(&models.Socio{CI: "100", Nombre: "Ana", Celular: "099", Activo: true}).Error)

	w := httpDo(r, "GET", "/api/socios/export_csv/", adminToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	require.Contains(t, w.Header().Get("Content-Disposition"), "socios.csv")
	require.Contains(t, w.Body.String(), "ci,nombre,celular,activo")
	require.Contains(t, w.Body.String(), "100,Ana,099,true")
}

func TestDashboardStats(t *testing.T) {
	r := setupRouter(t)

	require.NoError(t, database.DB.Create(&models.Socio{CI: "1", Nombre: "Ana", Activo: true}).Error)
	require.NoError(t, database.DB.Create(&models.Socio{CI: "2", Nombre: "Bruno", Activo: false}).Error)
	require.NoError(t, database.DB.Create(&models.Producto{Nombre: "Agua", Stock: 5}).Error)
	require.NoError(t, database.DB.Create(&models.Producto{Nombre: "Vendas", Stock: 0}).Error)

	w := httpDo(r, "GET", "/api/dashboard-stats/", staffToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.EqualValues(t, 1, stats["socios_activos"])
	require.EqualValues(t, 1, stats["socios_inactivos"])
	// The sold-out product is not inventory
	require.EqualValues(t, 1, stats["productos_en_inventario"])
}

func TestResumenFinanciero(t *testing.T) {
	r := setupRouter(t)

	require.NoError(t, database.DB.Create(&models.Socio{CI: "1", Nombre: "Ana", Activo: true}).Error)
	require.NoError(t, database.DB.Create(&models.Pago{
		SocioCI: "1", Mes: 7, Anio: 2026,
		Monto:     decimal.NewFromInt(1500),
		FechaPago: models.NuevaFecha(2026, 7, 3),
	}).Error)
	require.NoError(t, database.DB.Create(&models.Venta{
		ProductoID: 1, Cantidad: 2,
		TotalVenta: decimal.NewFromInt(100),
		FechaVenta: models.NuevaFecha(2026, 7, 10),
	}).Error)
	require.NoError(t, database.DB.Create(&models.Gasto{
		Concepto: "Alquiler",
		Monto:    decimal.NewFromInt(900),
		Fecha:    models.NuevaFecha(2026, 7, 1),
	}).Error)

	w := httpDo(r, "GET", "/api/finanzas/resumen/?mes=7&a%C3%B1o=2026", staffToken(t), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resumen database.ResumenFinanciero
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resumen))
	require.Equal(t, "1500", resumen.IngresoCuotas.String())
	require.Equal(t, "100", resumen.IngresoVentas.String())
	require.Equal(t, "900", resumen.Egresos.String())
	require.Equal(t, "700", resumen.Balance.String())
}
