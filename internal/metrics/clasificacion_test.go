package metrics

import (
	"testing"
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/stretchr/testify/require"
)

func socio(ci, nombre string, activo bool) models.Socio {
	return models.Socio{CI: ci, Nombre: nombre, Activo: activo}
}

func TestClasificarSocios(t *testing.T) {
	socios := []models.Socio{
		socio("100", "Ana", true),
		socio("200", "Bruno", false),
		socio("300", "Gonzalo Fernandez", true), // exempt instructor
		socio("400", "Carla", true),
	}
	exentos := ExentosSet([]string{"Gonzalo Fernandez", ""})

	c := ClasificarSocios(socios, exentos)

	require.Len(t, c.Activos, 2)
	require.Len(t, c.Inactivos, 1)
	require.Len(t, c.Exentos, 1)
	require.Equal(t, "Ana", c.Activos[0].Nombre)
	require.Equal(t, "Carla", c.Activos[1].Nombre)
	require.Equal(t, "Bruno", c.Inactivos[0].Nombre)
	require.Equal(t, "Gonzalo Fernandez", c.Exentos[0].Nombre)

	// The three sets partition the input: no socio in two buckets
	seen := map[string]int{}
	for _, s := range c.Activos {
		seen[s.CI]++
	}
	for _, s := range c.Inactivos {
		seen[s.CI]++
	}
	for _, s := range c.Exentos {
		seen[s.CI]++
	}
	require.Len(t, seen, len(socios))
	for ci, n := range seen {
		require.Equal(t, 1, n, "socio %s appears in more than one bucket", ci)
	}
}

func TestClasificarSociosEmpty(t *testing.T) {
	c := ClasificarSocios(nil, ExentosSet(nil))
	require.Empty(t, c.Activos)
	require.Empty(t, c.Inactivos)
	require.Empty(t, c.Exentos)
}

func TestReconciliarPagos(t *testing.T) {
	activos := []models.Socio{
		socio("A", "X", true),
		socio("B", "Y", true),
		socio("C", "Z", true),
	}
	pagos := []models.Pago{
		{SocioCI: "A", Mes: 7, Anio: 2026},
		{SocioCI: "A", Mes: 7, Anio: 2026}, // duplicate row must not double-count
		{SocioCI: "B", Mes: 6, Anio: 2026}, // wrong month
		{SocioCI: "C", Mes: 7, Anio: 2025}, // wrong year
	}

	estado := ReconciliarPagos(activos, pagos, 7, 2026)

	require.Equal(t, 1, estado.Pagados)
	require.Equal(t, 2, estado.Pendientes)
	// Pending keeps member-list order
	require.Equal(t, "B", estado.SociosPendientes[0].CI)
	require.Equal(t, "C", estado.SociosPendientes[1].CI)
}

func TestReconciliarPagosNadiePago(t *testing.T) {
	// members = [{A, activo}, {B, inactivo}], no payments this month
	todos := []models.Socio{socio("A", "X", true), socio("B", "Y", false)}
	c := ClasificarSocios(todos, nil)
	require.Len(t, c.Activos, 1)
	require.Len(t, c.Inactivos, 1)

	now := time.Now()
	estado := ReconciliarPagos(c.Activos, nil, int(now.Month()), now.Year())
	require.Equal(t, 0, estado.Pagados)
	require.Equal(t, 1, estado.Pendientes)
	require.Equal(t, "A", estado.SociosPendientes[0].CI)
}
