// datagen genera los tres CSV sintéticos con los que arranca el trainer
// cuando todavía no hay datos reales de la plataforma.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/config"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/dataset"
)

func main() {
	tenants := flag.Int("tenants", 1000, "cantidad de locataires")
	properties := flag.Int("properties", 300, "cantidad de propiedades")
	bookings := flag.Int("bookings", 5000, "cantidad de reservas/ratings")
	seed := flag.Int64("seed", 42, "semilla del generador")
	flag.Parse()

	cfg := config.Load()

	if err := os.MkdirAll(cfg.DatasetsDir, 0o755); err != nil {
		log.Fatalf("❌ creando %s: %v", cfg.DatasetsDir, err)
	}

	err := dataset.GenerateAll(cfg.DatasetsDir, dataset.GenOptions{
		NumTenants:    *tenants,
		NumProperties: *properties,
		NumBookings:   *bookings,
		Seed:          *seed,
	})
	if err != nil {
		log.Fatalf("❌ generando datasets: %v", err)
	}
}
