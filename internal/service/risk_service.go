package service

import (
	"log"
	"math"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/recommender"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/regression"
)

// Orden de features del modelo de riesgo, igual que en el trainer.
var RiskFeatureNames = []string{"income", "debt_ratio", "total_bookings", "cancellations", "late_cancellations", "avg_rating"}

type RiskService struct {
	model *regression.Model
}

func NewRiskService(path string) *RiskService {
	model, err := regression.Load(path)
	if err != nil {
		log.Printf("[scoring] no se pudo cargar %s: %v (corre el trainer)", path, err)
		return &RiskService{}
	}
	log.Printf("[scoring] modelo cargado (MAE=%.4f R2=%.4f)", model.MAE, model.R2)
	return &RiskService{model: model}
}

func (s *RiskService) Ready() bool { return s.model != nil }

// Predict estima el risk_score (0-100) de un locataire.
func (s *RiskService) Predict(req models.RiskRequest) (*models.RiskResponse, error) {
	if s.model == nil {
		return nil, recommender.ErrModelUnavailable
	}

	features := []float64{
		req.Income,
		req.DebtRatio,
		float64(req.TotalBookings),
		float64(req.Cancellations),
		float64(req.LateCancellations),
		req.AvgRating,
	}

	score := int(math.Round(s.model.Predict(features)))
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}

	return &models.RiskResponse{
		RiskScore: score,
		RiskLevel: RiskLevel(score),
	}, nil
}

// RiskLevel clasifica el score en los tres niveles que usa el backend de
// reservas para aceptar, pedir caución extra o rechazar.
func RiskLevel(score int) string {
	switch {
	case score < 30:
		return "LOW"
	case score < 70:
		return "MEDIUM"
	default:
		return "HIGH"
	}
}
