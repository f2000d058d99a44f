package service

import (
	"context"
	"fmt"
	"log"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/cache"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/repository"
)

type RatingService struct {
	ratings *repository.RatingRepository
}

func NewRatingService(r *repository.RatingRepository) *RatingService {
	return &RatingService{ratings: r}
}

// AddOrUpdate guarda el rating en Mongo e invalida las recomendaciones
// cacheadas del tenant. El modelo en memoria no cambia hasta el próximo
// reentrenamiento: los ratings nuevos entran al snapshot vía el trainer.
func (s *RatingService) AddOrUpdate(ctx context.Context, tenantID, propertyID int, rating float64) error {
	if rating < 1 || rating > 5 {
		return fmt.Errorf("rating %.1f fuera de rango [1, 5]", rating)
	}

	if err := s.ratings.UpsertRating(ctx, tenantID, propertyID, rating); err != nil {
		return err
	}

	// invalidar el cache del tenant (todas las combinaciones de top_n)
	prefix := fmt.Sprintf("rec:tenant:%d:", tenantID)
	if err := cache.DeleteByPrefix(ctx, prefix); err != nil {
		log.Printf("[rating] error invalidando cache %s: %v", prefix, err)
	}
	return nil
}

func (s *RatingService) GetByTenant(ctx context.Context, tenantID, limit, offset int) ([]models.RatingDoc, error) {
	return s.ratings.GetByTenant(ctx, tenantID, limit, offset)
}
