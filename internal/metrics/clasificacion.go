// Package metrics derives the dashboard numbers from the raw collections
// returned by the API. Everything here is pure: slices in, slices out,
// nothing is mutated and nothing touches the database.
package metrics

import (
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"
)

// Clasificacion partitions the member list for the dashboard cards.
// Exentos are members who train without paying a monthly fee (instructors,
// owners); they are left out of every count on purpose.
type Clasificacion struct {
	Activos   []models.Socio
	Inactivos []models.Socio
	Exentos   []models.Socio
}

// ExentosSet builds the lookup used by ClasificarSocios from a plain name
// list (typically the EXEMPT_SOCIOS env var, split on commas).
func ExentosSet(nombres []string) map[string]bool {
	set := make(map[string]bool, len(nombres))
	for _, n := range nombres {
		if n != "" {
			set[n] = true
		}
	}
	return set
}

// ClasificarSocios splits socios by the activo flag and the exemption list.
// A socio that is activo but exempt lands only in Exentos. Matching is by
// exact nombre, which is how the club has always tracked its exemptions.
func ClasificarSocios(socios []models.Socio, exentos map[string]bool) Clasificacion {
	var c Clasificacion
	for _, s := range socios {
		switch {
		case !s.Activo:
			c.Inactivos = append(c.Inactivos, s)
		case exentos[s.Nombre]:
			c.Exentos = append(c.Exentos, s)
		default:
			c.Activos = append(c.Activos, s)
		}
	}
	return c
}
