// El trainer es el batch offline: lee los CSV de datasets/raw (más los
// ratings de Mongo si se pide), entrena los cuatro modelos y deja los
// snapshots en models/. El API los carga al arrancar.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/config"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/dataset"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/db"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/recommender"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/regression"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/repository"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/service"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/trend"
)

func main() {
	optimize := flag.Bool("optimize", false, "evaluar métricas alternativas antes de entrenar")
	withMongo := flag.Bool("with-mongo", false, "mezclar los ratings guardados en Mongo con el CSV base")
	flag.Parse()

	cfg := config.Load()

	log.Println("============================================")
	log.Println("🚀 ENTRENAMIENTO DE MODELOS")
	log.Println("============================================")

	if err := os.MkdirAll(cfg.ModelsDir, 0o755); err != nil {
		log.Fatalf("❌ creando %s: %v", cfg.ModelsDir, err)
	}

	ratings, err := dataset.LoadRatings(filepath.Join(cfg.DatasetsDir, "recommendation.csv"))
	if err != nil {
		log.Fatalf("❌ leyendo recommendation.csv: %v (corre cmd/datagen primero)", err)
	}
	properties, err := dataset.LoadProperties(filepath.Join(cfg.DatasetsDir, "property_price.csv"))
	if err != nil {
		log.Fatalf("❌ leyendo property_price.csv: %v", err)
	}
	riskDocs, err := dataset.LoadTenantRisk(filepath.Join(cfg.DatasetsDir, "tenant_risk.csv"))
	if err != nil {
		log.Fatalf("❌ leyendo tenant_risk.csv: %v", err)
	}

	// Los ratings de Mongo van después del CSV: ante el mismo par
	// tenant/property gana la observación más reciente.
	if *withMongo {
		db.InitMongo(cfg)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		fromMongo, err := repository.NewRatingRepository().GetAll(ctx)
		cancel()
		if err != nil {
			log.Fatalf("❌ leyendo ratings de Mongo: %v", err)
		}
		log.Printf("[trainer] %d ratings extra desde Mongo", len(fromMongo))
		ratings = append(ratings, fromMongo...)
	}

	trainRecommendation(cfg, ratings, properties, *optimize)
	trainPrice(cfg, properties)
	trainRisk(cfg, riskDocs)
	trainTrend(cfg, properties, *optimize)

	log.Println("============================================")
	log.Println("✅ TODOS LOS MODELOS ENTRENADOS")
	log.Println("============================================")
}

func trainRecommendation(cfg *config.Config, ratings []models.RatingDoc, properties []models.PropertyDoc, optimize bool) {
	log.Printf("[trainer] entrenando recomendador (%d ratings, %d propiedades)", len(ratings), len(properties))

	snap := recommender.Train(ratings, properties, recommender.TrainOptions{Optimize: optimize})
	path := filepath.Join(cfg.ModelsDir, "recommendation_model.bson")
	if err := snap.Save(path); err != nil {
		log.Fatalf("❌ guardando %s: %v", path, err)
	}
	log.Printf("[trainer] ✅ %s (métrica=%s)", path, snap.SimilarityMetric)
}

func trainPrice(cfg *config.Config, properties []models.PropertyDoc) {
	features := make([][]float64, len(properties))
	targets := make([]float64, len(properties))
	for i, p := range properties {
		features[i] = []float64{p.Surface, float64(p.Rooms), float64(p.AmenitiesCount), p.AvgRating, p.OccupancyRate}
		targets[i] = p.PricePerNightETH
	}

	trainX, trainY, testX, testY := regression.Split(features, targets, 42)
	model, err := regression.Fit(trainX, trainY, service.PriceFeatureNames)
	if err != nil {
		log.Fatalf("❌ entrenando modelo de precio: %v", err)
	}
	mae, r2 := model.Evaluate(testX, testY)
	log.Printf("[trainer] precio: MAE=%.4f ETH, R2=%.4f", mae, r2)

	path := filepath.Join(cfg.ModelsDir, "price_model.bson")
	if err := model.Save(path); err != nil {
		log.Fatalf("❌ guardando %s: %v", path, err)
	}
	log.Printf("[trainer] ✅ %s", path)
}

func trainRisk(cfg *config.Config, docs []models.TenantRiskDoc) {
	features := make([][]float64, len(docs))
	targets := make([]float64, len(docs))
	for i, d := range docs {
		features[i] = []float64{d.Income, d.DebtRatio, float64(d.TotalBookings), float64(d.Cancellations), float64(d.LateCancellations), d.AvgRating}
		targets[i] = float64(d.RiskScore)
	}

	trainX, trainY, testX, testY := regression.Split(features, targets, 42)
	model, err := regression.Fit(trainX, trainY, service.RiskFeatureNames)
	if err != nil {
		log.Fatalf("❌ entrenando modelo de riesgo: %v", err)
	}
	mae, r2 := model.Evaluate(testX, testY)
	log.Printf("[trainer] riesgo: MAE=%.2f puntos, R2=%.4f", mae, r2)

	path := filepath.Join(cfg.ModelsDir, "risk_model.bson")
	if err := model.Save(path); err != nil {
		log.Fatalf("❌ guardando %s: %v", path, err)
	}
	log.Printf("[trainer] ✅ %s", path)
}

func trainTrend(cfg *config.Config, properties []models.PropertyDoc, optimize bool) {
	model := trend.Train(properties, trend.Options{Optimize: optimize})
	log.Printf("[trainer] tendencias: %d quartiers, %d clusters (optimizado=%v)",
		model.NNeighborhoods, model.NClusters, model.Optimized)

	path := filepath.Join(cfg.ModelsDir, "market_trend_model.bson")
	if err := model.Save(path); err != nil {
		log.Fatalf("❌ guardando %s: %v", path, err)
	}
	log.Printf("[trainer] ✅ %s", path)
}
