package metrics

import (
	"sort"

	"github.com/FedericoSorianox/Badgers-Admin/internal/models"
)

// StockActual returns the products that are actually on the shelf
// (stock > 0), highest stock first. Products that tie keep their fetch
// order. The length of the result is the "productos en inventario"
// card: sold-out products are deliberately not counted.
func StockActual(productos []models.Producto) []models.Producto {
	enStock := make([]models.Producto, 0, len(productos))
	for _, p := range productos {
		if p.Stock > 0 {
			enStock = append(enStock, p)
		}
	}
	sort.SliceStable(enStock, func(i, j int) bool {
		return enStock[i].Stock > enStock[j].Stock
	})
	return enStock
}
