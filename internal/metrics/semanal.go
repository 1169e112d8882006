package metrics

import (
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/models"
)

// The weekly stock view is anchored on Wednesdays (stock is recounted at the
// Wednesday delivery). A selected Wednesday expands to the surrounding
// Sunday..Saturday window.

// Miercoles lists every Wednesday of a year, in order. These populate the
// week selector.
func Miercoles(anio int) []models.Fecha {
	var out []models.Fecha
	d := time.Date(anio, time.January, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Wednesday {
		d = d.AddDate(0, 0, 1)
	}
	for d.Year() == anio {
		out = append(out, models.FechaDe(d))
		d = d.AddDate(0, 0, 7)
	}
	return out
}

// DiasDeSemana expands a Wednesday anchor into its 7-day window, starting
// on the preceding Sunday.
func DiasDeSemana(miercoles models.Fecha) []models.Fecha {
	dias := make([]models.Fecha, 7)
	domingo := miercoles.AddDias(-3)
	for i := range dias {
		dias[i] = domingo.AddDias(i)
	}
	return dias
}

// FilaStockSemanal is one product row of the weekly table: Niveles[i] is the
// estimated stock on DiasDeSemana(anchor)[i].
type FilaStockSemanal struct {
	Producto models.Producto
	Niveles  []int
}

// TablaStockSemanal is the product × day grid for one selected week.
type TablaStockSemanal struct {
	Dias  []models.Fecha
	Filas []FilaStockSemanal
}

// StockSemanal reconstructs per-day stock levels for the week around the
// given Wednesday. There is no stored stock history, so each cell is
// estimated as current stock plus the units sold on that exact day. That
// ignores sales made between the day and now, i.e. the estimate is only
// exact for today; it is the figure the club has always worked with, so it
// is kept as is.
//
// A zero anchor yields an empty table (no week selected). A product with no
// sales in the window repeats its current stock across all seven days.
func StockSemanal(productos []models.Producto, ventas []models.Venta, miercoles models.Fecha) TablaStockSemanal {
	if miercoles.IsZero() {
		return TablaStockSemanal{}
	}

	tabla := TablaStockSemanal{Dias: DiasDeSemana(miercoles)}
	for _, prod := range productos {
		fila := FilaStockSemanal{Producto: prod, Niveles: make([]int, len(tabla.Dias))}
		for i, dia := range tabla.Dias {
			vendido := 0
			for _, v := range ventas {
				if v.ProductoID == prod.ID && v.FechaVenta.MismoDia(dia) {
					vendido += v.Cantidad
				}
			}
			fila.Niveles[i] = prod.Stock + vendido
		}
		tabla.Filas = append(tabla.Filas, fila)
	}
	return tabla
}
