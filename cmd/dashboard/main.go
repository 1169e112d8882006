// Command dashboard renders the club dashboard in the terminal: member and
// payment status, current stock, and optionally the weekly stock table.
// It consumes the same API the web dashboard does.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/FedericoSorianox/Badgers-Admin/internal/client"
	"github.com/FedericoSorianox/Badgers-Admin/internal/models"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	apiURL := flag.String("api", envOr("BADGERS_API", "http://127.0.0.1:8000/api"), "base URL of the Badgers API")
	token := flag.String("token", os.Getenv("BADGERS_TOKEN"), "bearer token")
	semana := flag.String("semana", "", "Wednesday (YYYY-MM-DD) to show the weekly stock table for")
	flag.Parse()

	c := client.New(*apiURL, *token)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	exentos := strings.Split(os.Getenv("EXEMPT_SOCIOS"), ",")
	for i := range exentos {
		exentos[i] = strings.TrimSpace(exentos[i])
	}

	data, err := c.Dashboard(ctx, client.DashboardOptions{Exentos: exentos})
	if err != nil {
		log.Fatal("Failed to load dashboard: ", err)
	}

	fmt.Printf("== The Badgers · %02d/%d ==\n\n", data.Mes, data.Anio)
	fmt.Printf("Socios activos:          %d\n", len(data.Socios.Activos))
	fmt.Printf("Socios inactivos:        %d\n", len(data.Socios.Inactivos))
	fmt.Printf("Exentos de cuota:        %d\n", len(data.Socios.Exentos))
	fmt.Printf("Pagos del mes:           %d pagados / %d pendientes\n", data.Pagos.Pagados, data.Pagos.Pendientes)
	fmt.Printf("Productos en inventario: %d\n\n", len(data.Stock))

	if len(data.Pagos.SociosPendientes) > 0 {
		fmt.Println("Pendientes de pago:")
		for _, s := range data.Pagos.SociosPendientes {
			linea := fmt.Sprintf("  - %s (CI %s)", s.Nombre, s.CI)
			if s.Celular != "" {
				linea += " · " + s.Celular
			}
			fmt.Println(linea)
		}
		fmt.Println()
	}

	if len(data.Stock) > 0 {
		fmt.Println("Stock actual:")
		for _, p := range data.Stock {
			fmt.Printf("  %-25s %d\n", p.Nombre, p.Stock)
		}
		fmt.Println()
	}

	if *semana != "" {
		mostrarSemana(ctx, c, *semana)
	}
}

func mostrarSemana(ctx context.Context, c *client.Client, semana string) {
	var miercoles models.Fecha
	if err := miercoles.UnmarshalJSON([]byte(semana)); err != nil {
		log.Fatal("Invalid -semana date: ", err)
	}
	if miercoles.Weekday() != time.Wednesday {
		log.Fatal("-semana must be a Wednesday")
	}

	tabla, err := c.StockSemanal(ctx, miercoles)
	if err != nil {
		log.Fatal("Failed to load weekly stock: ", err)
	}

	fmt.Printf("Stock semanal (semana del %s):\n", miercoles)
	fmt.Printf("  %-25s", "Producto")
	for _, d := range tabla.Dias {
		fmt.Printf(" %6s", d.Format("02/01"))
	}
	fmt.Println()
	for _, fila := range tabla.Filas {
		fmt.Printf("  %-25s", fila.Producto.Nombre)
		for _, nivel := range fila.Niveles {
			fmt.Printf(" %6d", nivel)
		}
		fmt.Println()
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
