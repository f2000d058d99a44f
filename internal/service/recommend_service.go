package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/cache"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/recommender"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/repository"
)

const (
	DefaultTopN = 5
	MaxTopN     = 20 // por seguridad, no deja pedir 1000 ítems
)

type RecommendService struct {
	engine  *recommender.Engine
	recRepo *repository.RecommendationRepository
}

// NewRecommendService arma el servicio. recRepo puede ser nil (sin Mongo no
// hay historial, pero las recomendaciones siguen funcionando).
func NewRecommendService(engine *recommender.Engine, recRepo *repository.RecommendationRepository) *RecommendService {
	return &RecommendService{
		engine:  engine,
		recRepo: recRepo,
	}
}

// ====== Petición de recomendaciones (solo parámetros que sí cambian en runtime) ======

type RecRequest struct {
	TenantID   *int
	PropertyID *int
	TopN       int
	Refresh    bool
}

func cacheKey(tenantID, topN int) string {
	// Cachea por tenant + n (no incluye refresh, refresh solo decide si usar cache)
	return fmt.Sprintf("rec:tenant:%d:n:%d", tenantID, topN)
}

var recMessages = map[string]string{
	recommender.TypeUserBased: "Recommandations basées sur vos préférences",
	recommender.TypeItemBased: "Propriétés similaires à celle sélectionnée",
	recommender.TypePopular:   "Propriétés les plus populaires",
}

func (s *RecommendService) Ready() bool { return s.engine.Ready() }

func (s *RecommendService) Metric() string { return s.engine.Metric() }

func (s *RecommendService) Stats() (properties, ratings int) { return s.engine.Stats() }

// Recommend aplica la selección de modo del motor y enriquece los ítems con
// los metadatos de cada propiedad. Solo el modo user-based pasa por Redis:
// populares y similares ya son O(1) sobre el snapshot.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) (*models.RecommendationResponse, error) {
	// defaults y límites para top_n
	if req.TopN <= 0 {
		req.TopN = DefaultTopN
	} else if req.TopN > MaxTopN {
		req.TopN = MaxTopN
	}

	// 1) Cache Redis (solo user-based y si refresh = false)
	if req.TenantID != nil && !req.Refresh {
		var cached models.RecommendationResponse
		if ok, err := cache.GetJSON(ctx, cacheKey(*req.TenantID, req.TopN), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	// 2) Consultar el motor
	items, recType, err := s.engine.Recommend(req.TenantID, req.PropertyID, req.TopN)
	if err != nil {
		return nil, err
	}

	// 3) Enriquecer con metadatos
	resp := s.buildResponse(items, recType)

	// 4) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			TenantID:         req.TenantID,
			PropertyID:       req.PropertyID,
			Type:             recType,
			SimilarityMetric: s.engine.Metric(),
			Params: map[string]any{
				"topN":    req.TopN,
				"refresh": req.Refresh,
			},
			Items:     items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("[recommend] error guardando historial en Mongo: %v", err)
		}
	}

	// 5) Cachear en Redis (1 hora)
	if req.TenantID != nil {
		if err := cache.SetJSON(ctx, cacheKey(*req.TenantID, req.TopN), resp, 60*60); err != nil {
			log.Printf("[recommend] error cacheando en Redis: %v", err)
		}
	}

	return resp, nil
}

func (s *RecommendService) buildResponse(items []models.RecItem, recType string) *models.RecommendationResponse {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = it.PropertyID
	}
	details := s.engine.Details(ids)

	recs := make([]models.PropertyRecommendation, 0, len(items))
	for i, it := range items {
		rec := models.PropertyRecommendation{
			PropertyID: it.PropertyID,
			Score:      round3(it.Score),
		}
		if d := details[i]; d != nil {
			rec.Surface = &d.Surface
			rec.Rooms = &d.Rooms
			rec.AmenitiesCount = &d.AmenitiesCount
			rec.AvgRating = &d.AvgRating
			rec.OccupancyRate = &d.OccupancyRate
			rec.PricePerNightEUR = &d.PricePerNightEUR
			rec.PricePerNightETH = &d.PricePerNightETH
		}
		recs = append(recs, rec)
	}

	msg, ok := recMessages[recType]
	if !ok {
		msg = "Recommandations disponibles"
	}
	return &models.RecommendationResponse{
		Recommendations: recs,
		Count:           len(recs),
		Type:            recType,
		Message:         msg,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
