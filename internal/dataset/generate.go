package dataset

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"path/filepath"
	"strconv"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
)

// GenOptions controla el tamaño de los datasets sintéticos.
type GenOptions struct {
	NumTenants    int
	NumProperties int
	NumBookings   int
	Seed          int64
}

func (o *GenOptions) defaults() {
	if o.NumTenants <= 0 {
		o.NumTenants = 1000
	}
	if o.NumProperties <= 0 {
		o.NumProperties = 300
	}
	if o.NumBookings <= 0 {
		o.NumBookings = 5000
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
}

// GenerateTenantRisk produce perfiles de riesgo con el score derivado de la
// lógica de negocio: cancelaciones tardías pesan más y la deuda alta penaliza.
func GenerateTenantRisk(opts GenOptions) []models.TenantRiskDoc {
	opts.defaults()
	rng := rand.New(rand.NewSource(opts.Seed))

	out := make([]models.TenantRiskDoc, 0, opts.NumTenants)
	for tenantID := 1; tenantID <= opts.NumTenants; tenantID++ {
		totalBookings := 1 + rng.Intn(20)
		cancellations := rng.Intn(totalBookings/2 + 1)
		lateCancellations := rng.Intn(cancellations + 1)
		avgRating := round2(2.5 + rng.Float64()*2.5)
		income := math.Floor(rng.NormFloat64()*2500 + 9000)
		debtRatio := round2(0.1 + rng.Float64()*0.6)

		score := float64(cancellations)*10 +
			float64(lateCancellations)*15 +
			(5-avgRating)*10 +
			debtRatio*50
		riskScore := int(score)
		if riskScore > 100 {
			riskScore = 100
		}

		out = append(out, models.TenantRiskDoc{
			TenantID:          tenantID,
			Income:            income,
			DebtRatio:         debtRatio,
			TotalBookings:     totalBookings,
			Cancellations:     cancellations,
			LateCancellations: lateCancellations,
			AvgRating:         avgRating,
			RiskScore:         riskScore,
		})
	}
	return out
}

// GenerateProperties produce propiedades con precio base
// surface*3 + rooms*20 + amenities*5, ajustado por ocupación y rating,
// y convertido a ETH con models.EthEurRate.
func GenerateProperties(opts GenOptions) []models.PropertyDoc {
	opts.defaults()
	rng := rand.New(rand.NewSource(opts.Seed + 1))

	out := make([]models.PropertyDoc, 0, opts.NumProperties)
	for propertyID := 1; propertyID <= opts.NumProperties; propertyID++ {
		surface := float64(30 + rng.Intn(171))
		rooms := 1 + rng.Intn(5)
		amenities := 3 + rng.Intn(13)
		avgRating := round2(3 + rng.Float64()*2)
		occupancy := round2(0.3 + rng.Float64()*0.6)

		basePrice := surface*3 + float64(rooms)*20 + float64(amenities)*5
		priceEUR := int(basePrice * (1 + occupancy) * (avgRating / 4))
		priceETH := math.Round(float64(priceEUR)/models.EthEurRate*10000) / 10000

		out = append(out, models.PropertyDoc{
			PropertyID:       propertyID,
			Surface:          surface,
			Rooms:            rooms,
			AmenitiesCount:   amenities,
			AvgRating:        avgRating,
			OccupancyRate:    occupancy,
			PricePerNightEUR: priceEUR,
			PricePerNightETH: priceETH,
		})
	}
	return out
}

// GenerateRatings produce interacciones tenant/property. Los pares repetidos
// son posibles, igual que en un historial real de reservas.
func GenerateRatings(opts GenOptions) []models.RatingDoc {
	opts.defaults()
	rng := rand.New(rand.NewSource(opts.Seed + 2))

	out := make([]models.RatingDoc, 0, opts.NumBookings)
	for i := 0; i < opts.NumBookings; i++ {
		out = append(out, models.RatingDoc{
			TenantID:   1 + rng.Intn(opts.NumTenants),
			PropertyID: 1 + rng.Intn(opts.NumProperties),
			Rating:     float64(1 + rng.Intn(5)),
		})
	}
	return out
}

// GenerateAll escribe los tres CSV en dir.
func GenerateAll(dir string, opts GenOptions) error {
	opts.defaults()
	log.Printf("[dataset] generando datasets sintéticos (tenants=%d properties=%d bookings=%d seed=%d)",
		opts.NumTenants, opts.NumProperties, opts.NumBookings, opts.Seed)

	if err := WriteTenantRisk(filepath.Join(dir, "tenant_risk.csv"), GenerateTenantRisk(opts)); err != nil {
		return fmt.Errorf("tenant_risk.csv: %w", err)
	}
	if err := WriteProperties(filepath.Join(dir, "property_price.csv"), GenerateProperties(opts)); err != nil {
		return fmt.Errorf("property_price.csv: %w", err)
	}
	if err := WriteRatings(filepath.Join(dir, "recommendation.csv"), GenerateRatings(opts)); err != nil {
		return fmt.Errorf("recommendation.csv: %w", err)
	}
	log.Printf("[dataset] ✅ datasets generados en %s", dir)
	return nil
}

func WriteRatings(path string, ratings []models.RatingDoc) error {
	header := []string{"tenant_id", "property_id", "rating"}
	rows := make([][]string, 0, len(ratings))
	for _, r := range ratings {
		rows = append(rows, []string{
			strconv.Itoa(r.TenantID),
			strconv.Itoa(r.PropertyID),
			formatFloat(r.Rating),
		})
	}
	return writeCSV(path, header, rows)
}

func WriteProperties(path string, props []models.PropertyDoc) error {
	header := []string{
		"property_id", "surface", "rooms", "amenities_count",
		"avg_rating", "occupancy_rate", "price_per_night_eur", "price_per_night_eth",
	}
	rows := make([][]string, 0, len(props))
	for _, p := range props {
		rows = append(rows, []string{
			strconv.Itoa(p.PropertyID),
			formatFloat(p.Surface),
			strconv.Itoa(p.Rooms),
			strconv.Itoa(p.AmenitiesCount),
			formatFloat(p.AvgRating),
			formatFloat(p.OccupancyRate),
			strconv.Itoa(p.PricePerNightEUR),
			formatFloat(p.PricePerNightETH),
		})
	}
	return writeCSV(path, header, rows)
}

func WriteTenantRisk(path string, docs []models.TenantRiskDoc) error {
	header := []string{
		"tenant_id", "income", "debt_ratio", "total_bookings",
		"cancellations", "late_cancellations", "avg_rating", "risk_score",
	}
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		rows = append(rows, []string{
			strconv.Itoa(d.TenantID),
			formatFloat(d.Income),
			formatFloat(d.DebtRatio),
			strconv.Itoa(d.TotalBookings),
			strconv.Itoa(d.Cancellations),
			strconv.Itoa(d.LateCancellations),
			formatFloat(d.AvgRating),
			strconv.Itoa(d.RiskScore),
		})
	}
	return writeCSV(path, header, rows)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
