package main

import (
	"log"
	"net/http"
	"path/filepath"

	_ "github.com/mohamediliasskaddar/RENTOPIA/docs" // swagger docs

	"github.com/mohamediliasskaddar/RENTOPIA/internal/cache"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/config"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/db"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/handler"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/recommender"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/repository"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Rentopia AI Service API
// @version 1.0
// @description Microservicio IA de la plataforma de alquileres (precio, scoring, recomendaciones, tendencias)
// @host localhost:8090
// @BasePath /
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// modelos entrenados (si falta alguno, su endpoint responde 503)
	engine := recommender.LoadEngine(filepath.Join(cfg.ModelsDir, "recommendation_model.bson"))

	// repos
	ratingRepo := repository.NewRatingRepository()
	recRepo := repository.NewRecommendationRepository()

	// services
	recSvc := service.NewRecommendService(engine, recRepo)
	ratingSvc := service.NewRatingService(ratingRepo)
	priceSvc := service.NewPriceService(filepath.Join(cfg.ModelsDir, "price_model.bson"))
	riskSvc := service.NewRiskService(filepath.Join(cfg.ModelsDir, "risk_model.bson"))
	trendSvc := service.NewTrendService(filepath.Join(cfg.ModelsDir, "market_trend_model.bson"))

	// handlers
	recH := handler.NewRecommendHandler(recSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	priceH := handler.NewPriceHandler(priceSvc)
	scoringH := handler.NewScoringHandler(riskSvc)
	trendH := handler.NewTrendHandler(trendSvc)
	healthH := handler.NewHealthHandler(map[string]func() bool{
		"recommendation": recSvc.Ready,
		"price":          priceSvc.Ready,
		"scoring":        riskSvc.Ready,
		"market_trend":   trendSvc.Ready,
	})

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// CORS abierto: nos llaman el frontend, el gateway y el booking-service
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/", healthH.Root)
	r.Get("/health", healthH.Health)

	// ===== Recomendaciones =====
	r.Route("/recommend", func(r chi.Router) {
		r.Post("/predict", recH.Predict)
		r.Get("/properties", recH.GetByQuery)
		r.Get("/example", recH.Example)
		r.Get("/health", recH.Health)

		// WebSocket
		r.Get("/ws", recH.RecommendWS)

		// ratings que alimentan el próximo reentrenamiento
		r.Post("/ratings", ratingH.PostRating)
		r.Get("/tenants/{id}/ratings", ratingH.GetRatings)
	})

	// ===== Precio =====
	r.Route("/price", func(r chi.Router) {
		r.Post("/predict", priceH.Predict)
		r.Post("/predict/batch", priceH.PredictBatch)
		r.Get("/example", priceH.Example)
		r.Get("/health", priceH.Health)
	})

	// ===== Scoring locataire =====
	r.Route("/scoring", func(r chi.Router) {
		r.Post("/predict", scoringH.Predict)
		r.Get("/health", scoringH.Health)
	})

	// ===== Tendencias de mercado =====
	r.Route("/trend", func(r chi.Router) {
		r.Get("/trends", trendH.GetAllTrends)
		r.Get("/trends/{id}", trendH.GetNeighborhoodTrend)
		r.Get("/heatmap", trendH.GetHeatmap)
		r.Get("/summary", trendH.GetSummary)
		r.Get("/health", trendH.Health)
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
