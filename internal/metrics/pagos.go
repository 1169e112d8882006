package metrics

import (
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"
)

// EstadoPagos summarizes the current month's fee collection.
// SociosPendientes keeps the order of the input member list so the
// reminder list renders the same way the member list does.
type EstadoPagos struct {
	Pagados          int
	Pendientes       int
	SociosPendientes []models.Socio
}

// ReconciliarPagos joins the month's pagos against the active members.
// Presence of any pago for (socio, mes, año) counts as paid; duplicate
// payment rows do not inflate the paid count.
func ReconciliarPagos(activos []models.Socio, pagos []models.Pago, mes, anio int) EstadoPagos {
	pagaron := make(map[string]bool)
	for _, p := range pagos {
		if p.Mes == mes && p.Anio == anio {
			pagaron[p.SocioCI] = true
		}
	}

	estado := EstadoPagos{}
	for _, s := range activos {
		if pagaron[s.CI] {
			estado.Pagados++
		} else {
			estado.SociosPendientes = append(estado.SociosPendientes, s)
		}
	}
	estado.Pendientes = len(estado.SociosPendientes)
	return estado
}
