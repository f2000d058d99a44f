package service

import (
	"log"
	"math"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/recommender"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/regression"
)

// Orden de features del modelo de precio. Tiene que coincidir con el orden
// con el que entrena el trainer.
var PriceFeatureNames = []string{"surface", "rooms", "amenities_count", "avg_rating", "occupancy_rate"}

type PriceService struct {
	model *regression.Model
}

// NewPriceService carga el modelo de precio desde disco. Si el snapshot no
// existe el servicio queda no disponible, igual que el motor de
// recomendaciones.
func NewPriceService(path string) *PriceService {
	model, err := regression.Load(path)
	if err != nil {
		log.Printf("[price] no se pudo cargar %s: %v (corre el trainer)", path, err)
		return &PriceService{}
	}
	log.Printf("[price] modelo cargado (MAE=%.4f R2=%.4f)", model.MAE, model.R2)
	return &PriceService{model: model}
}

func (s *PriceService) Ready() bool { return s.model != nil }

// Predict estima el precio por noche en ETH y arma la fourchette ±10%.
func (s *PriceService) Predict(req models.PriceRequest) (*models.PriceResponse, error) {
	if s.model == nil {
		return nil, recommender.ErrModelUnavailable
	}

	features := []float64{
		req.Surface,
		float64(req.Rooms),
		float64(req.AmenitiesCount),
		req.AvgRating,
		req.OccupancyRate,
	}
	priceETH := round4(s.model.Predict(features))
	if priceETH < 0 {
		priceETH = 0
	}

	margin := priceETH * 0.1
	rangeETH := models.ConfidenceRange{
		Min: round4(priceETH - margin),
		Max: round4(priceETH + margin),
	}
	rangeEUR := models.ConfidenceRange{
		Min: math.Floor(rangeETH.Min * models.EthEurRate),
		Max: math.Floor(rangeETH.Max * models.EthEurRate),
	}

	return &models.PriceResponse{
		PredictedPriceETH:  priceETH,
		ConfidenceRangeETH: rangeETH,
		PredictedPriceEUR:  int(priceETH * models.EthEurRate),
		ConfidenceRangeEUR: &rangeEUR,
		EthEurRate:         models.EthEurRate,
		Recommendation:     priceRecommendation(priceETH),
	}, nil
}

// priceRecommendation traduce el precio a una etiqueta legible. Los cortes
// están en EUR porque es lo que entiende el usuario final.
func priceRecommendation(priceETH float64) string {
	priceEUR := priceETH * models.EthEurRate
	switch {
	case priceEUR < 200:
		return "Prix économique - Bon rapport qualité/prix"
	case priceEUR < 350:
		return "Prix standard pour ce type de propriété"
	case priceEUR < 500:
		return "Prix premium - Propriété de qualité"
	default:
		return "Prix haut de gamme - Propriété d'exception"
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
