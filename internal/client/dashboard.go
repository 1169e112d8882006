package client

import (
	"context"
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/metrics"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"golang.org/x/sync/errgroup"
)

// DashboardData is everything the dashboard view needs, derived client-side
// from one round of fetches.
type DashboardData struct {
	// Stats carries the server's aggregate counters as-is; locally derived
	// figures below take precedence where they overlap.
	Stats map[string]interface{}

	Socios metrics.Clasificacion
	Pagos  metrics.EstadoPagos
	Stock  []models.Producto
	Mes    int
	Anio   int
}

// DashboardOptions inject the pieces that used to be globals in the web app:
// the exemption list and the evaluation time.
type DashboardOptions struct {
	Exentos []string
	Ahora   time.Time // zero means time.Now()
}

// Dashboard loads the four dashboard collections concurrently and derives
// the metrics. The load is all-or-nothing: if any fetch fails the whole call
// fails, matching how the web dashboard treated its Promise.all round.
func (c *Client) Dashboard(ctx context.Context, opts DashboardOptions) (*DashboardData, error) {
	var (
		stats     map[string]interface{}
		productos []models.Producto
		socios    []models.Socio
		pagos     []models.Pago
	)

	// Each goroutine writes only its own slot
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.GetJSON(ctx, "/dashboard-stats/", &stats)
	})
	g.Go(func() (err error) {
		productos, err = FetchAll[models.Producto](ctx, c, "/productos/")
		return err
	})
	g.Go(func() (err error) {
		socios, err = FetchAll[models.Socio](ctx, c, "/socios/?limit=1000")
		return err
	})
	g.Go(func() (err error) {
		pagos, err = FetchAll[models.Pago](ctx, c, "/pagos/?limit=10000")
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ahora := opts.Ahora
	if ahora.IsZero() {
		ahora = time.Now()
	}
	mes, anio := int(ahora.Month()), ahora.Year()

	clasif := metrics.ClasificarSocios(socios, metrics.ExentosSet(opts.Exentos))
	return &DashboardData{
		Stats:  stats,
		Socios: clasif,
		Pagos:  metrics.ReconciliarPagos(clasif.Activos, pagos, mes, anio),
		Stock:  metrics.StockActual(productos),
		Mes:    mes,
		Anio:   anio,
	}, nil
}

// StockSemanal loads productos and ventas concurrently and reconstructs the
// weekly stock table around the given Wednesday.
func (c *Client) StockSemanal(ctx context.Context, miercoles models.Fecha) (metrics.TablaStockSemanal, error) {
	var (
		productos []models.Producto
		ventas    []models.Venta
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		productos, err = FetchAll[models.Producto](ctx, c, "/productos/")
		return err
	})
	g.Go(func() (err error) {
		ventas, err = FetchAll[models.Venta](ctx, c, "/ventas/")
		return err
	})
	if err := g.Wait(); err != nil {
		return metrics.TablaStockSemanal{}, err
	}

	return metrics.StockSemanal(productos, ventas, miercoles), nil
}
