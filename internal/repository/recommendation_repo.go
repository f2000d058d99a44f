package repository

import (
	"context"
	"time"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/db"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type RecommendationRepository struct {
	col *mongo.Collection
}

func NewRecommendationRepository() *RecommendationRepository {
	return &RecommendationRepository{
		col: db.DB().Collection("recommendations"),
	}
}

func (r *RecommendationRepository) Insert(ctx context.Context, rec *models.Recommendation) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, rec)
	return err
}

// opcional para futuro: listar historial por inquilino
func (r *RecommendationRepository) FindByTenant(ctx context.Context, tenantID int, limit int64) ([]models.Recommendation, error) {
	cur, err := r.col.Find(ctx, map[string]any{"tenantId": tenantID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Recommendation
	for cur.Next(ctx) {
		var rec models.Recommendation
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, cur.Err()
}
