package service

import (
	"log"
	"math"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/recommender"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/trend"
)

type TrendService struct {
	model *trend.Model
}

func NewTrendService(path string) *TrendService {
	model, err := trend.Load(path)
	if err != nil {
		log.Printf("[trend] no se pudo cargar %s: %v (corre el trainer)", path, err)
		return &TrendService{}
	}
	log.Printf("[trend] modelo cargado (%d quartiers, %d clusters)", model.NNeighborhoods, model.NClusters)
	return &TrendService{model: model}
}

func (s *TrendService) Ready() bool { return s.model != nil }

// AllTrends devuelve todos los quartiers con el resumen agregado.
func (s *TrendService) AllTrends() (*models.MarketTrendResponse, error) {
	if s.model == nil {
		return nil, recommender.ErrModelUnavailable
	}

	trends := s.model.AllTrends()
	return &models.MarketTrendResponse{
		Neighborhoods: trends,
		Count:         len(trends),
		Summary:       trendBreakdown(trends),
	}, nil
}

// NeighborhoodTrend devuelve la tendencia de un quartier. found == false
// significa 404, no 500.
func (s *TrendService) NeighborhoodTrend(id int) (models.NeighborhoodTrend, bool, error) {
	if s.model == nil {
		return models.NeighborhoodTrend{}, false, recommender.ErrModelUnavailable
	}
	t, ok := s.model.NeighborhoodTrend(id)
	return t, ok, nil
}

func (s *TrendService) Heatmap() (*models.HeatmapData, error) {
	if s.model == nil {
		return nil, recommender.ErrModelUnavailable
	}
	h := s.model.Heatmap()
	return &h, nil
}

// MarketSummary arma los KPIs globales del mercado: variación esperada a 3
// meses, sentimiento y una recomendación de inversión de trazo grueso.
func (s *TrendService) MarketSummary() (map[string]any, error) {
	if s.model == nil {
		return nil, recommender.ErrModelUnavailable
	}

	trends := s.model.AllTrends()
	if len(trends) == 0 {
		return map[string]any{"total_neighborhoods": 0}, nil
	}

	var rising, stable, declining int
	var avgPrice, avgPredicted3m float64
	for _, t := range trends {
		switch t.TrendLabel {
		case trend.LabelRising:
			rising++
		case trend.LabelDeclining:
			declining++
		default:
			stable++
		}
		avgPrice += t.CurrentAvgPrice
		avgPredicted3m += t.PredictedPrice3m
	}
	avgPrice /= float64(len(trends))
	avgPredicted3m /= float64(len(trends))

	globalTrend := 0.0
	if avgPrice > 0 {
		globalTrend = (avgPredicted3m - avgPrice) / avgPrice * 100
	}

	sentiment := "NEUTRAL"
	if globalTrend > 1 {
		sentiment = "BULLISH"
	} else if globalTrend < -1 {
		sentiment = "BEARISH"
	}

	advice := "Wait and see"
	if rising > declining {
		advice = "Good time to invest"
	} else if declining > rising {
		advice = "Market correction expected"
	}

	return map[string]any{
		"total_neighborhoods":        len(trends),
		"avg_current_price_eth":      round4(avgPrice),
		"avg_predicted_price_3m_eth": round4(avgPredicted3m),
		"global_trend_percentage":    round2(globalTrend),
		"market_sentiment":           sentiment,
		"breakdown": map[string]int{
			"rising":    rising,
			"stable":    stable,
			"declining": declining,
		},
		"recommendation": advice,
	}, nil
}

func trendBreakdown(trends []models.NeighborhoodTrend) map[string]any {
	var rising, stable, declining int
	var avgPrice float64
	for _, t := range trends {
		switch t.TrendLabel {
		case trend.LabelRising:
			rising++
		case trend.LabelDeclining:
			declining++
		default:
			stable++
		}
		avgPrice += t.CurrentAvgPrice
	}
	if len(trends) > 0 {
		avgPrice /= float64(len(trends))
	}

	return map[string]any{
		"avg_price":               round4(avgPrice),
		"rising_neighborhoods":    rising,
		"stable_neighborhoods":    stable,
		"declining_neighborhoods": declining,
		"total_neighborhoods":     len(trends),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
