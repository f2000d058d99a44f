package service

import (
	"context"
	"testing"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/recommender"
)

func serviceFixture(t *testing.T) *RecommendService {
	t.Helper()

	ratings := []models.RatingDoc{
		{TenantID: 1, PropertyID: 10, Rating: 5},
		{TenantID: 1, PropertyID: 11, Rating: 4},
		{TenantID: 2, PropertyID: 10, Rating: 5},
		{TenantID: 2, PropertyID: 12, Rating: 5},
		{TenantID: 3, PropertyID: 11, Rating: 3},
		{TenantID: 3, PropertyID: 12, Rating: 4},
	}
	properties := []models.PropertyDoc{
		{PropertyID: 10, Surface: 80, Rooms: 3, AmenitiesCount: 7, AvgRating: 4.5, OccupancyRate: 0.8, PricePerNightEUR: 300, PricePerNightETH: 0.0857},
		{PropertyID: 11, Surface: 45, Rooms: 1, AmenitiesCount: 4, AvgRating: 4.0, OccupancyRate: 0.6, PricePerNightEUR: 150, PricePerNightETH: 0.0429},
		// la 12 no tiene metadatos a propósito
	}
	snap := recommender.Train(ratings, properties, recommender.TrainOptions{})
	return NewRecommendService(recommender.NewEngine(snap), nil)
}

func TestRecommendClampsTopN(t *testing.T) {
	svc := serviceFixture(t)
	ctx := context.Background()

	resp, err := svc.Recommend(ctx, RecRequest{TopN: 1000})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if resp.Count > MaxTopN {
		t.Fatalf("top_n no se limitó: count=%d", resp.Count)
	}

	resp, err = svc.Recommend(ctx, RecRequest{TopN: 0})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if resp.Count > DefaultTopN {
		t.Fatalf("sin top_n se esperaba el default %d, count=%d", DefaultTopN, resp.Count)
	}
}

func TestRecommendPopularResponse(t *testing.T) {
	svc := serviceFixture(t)

	resp, err := svc.Recommend(context.Background(), RecRequest{TopN: 3})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if resp.Type != recommender.TypePopular {
		t.Fatalf("sin tenant ni property se esperaba popular, llegó %q", resp.Type)
	}
	if resp.Message != recMessages[recommender.TypePopular] {
		t.Fatalf("mensaje inesperado: %q", resp.Message)
	}
	if resp.Count != len(resp.Recommendations) {
		t.Fatalf("count=%d no coincide con %d items", resp.Count, len(resp.Recommendations))
	}
}

func TestRecommendModePriority(t *testing.T) {
	svc := serviceFixture(t)
	tenantID, propertyID := 1, 10

	resp, err := svc.Recommend(context.Background(), RecRequest{
		TenantID:   &tenantID,
		PropertyID: &propertyID,
		TopN:       3,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if resp.Type != recommender.TypeUserBased {
		t.Fatalf("tenant_id manda sobre property_id, llegó %q", resp.Type)
	}
}

func TestRecommendEnrichment(t *testing.T) {
	svc := serviceFixture(t)
	propertyID := 10

	resp, err := svc.Recommend(context.Background(), RecRequest{PropertyID: &propertyID, TopN: 5})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	for _, rec := range resp.Recommendations {
		switch rec.PropertyID {
		case 11:
			if rec.Surface == nil || *rec.Surface != 45 {
				t.Fatalf("propiedad 11 sin metadatos enriquecidos: %+v", rec)
			}
		case 12:
			// sin metadatos: los campos de detalle van en null, nunca error
			if rec.Surface != nil || rec.PricePerNightETH != nil {
				t.Fatalf("propiedad 12 no debería tener metadatos: %+v", rec)
			}
		}
		if rec.Score < 0 || rec.Score > 100 {
			t.Fatalf("score fuera de rango: %v", rec.Score)
		}
	}
}

func TestRecommendScoresRounded(t *testing.T) {
	svc := serviceFixture(t)
	tenantID := 1

	resp, err := svc.Recommend(context.Background(), RecRequest{TenantID: &tenantID, TopN: 5})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, rec := range resp.Recommendations {
		if rec.Score != round3(rec.Score) {
			t.Fatalf("score %v no está redondeado a 3 decimales", rec.Score)
		}
	}
}

func TestRecommendModelUnavailable(t *testing.T) {
	svc := NewRecommendService(recommender.NewEngine(nil), nil)

	_, err := svc.Recommend(context.Background(), RecRequest{TopN: 5})
	if err != recommender.ErrModelUnavailable {
		t.Fatalf("se esperaba ErrModelUnavailable, llegó %v", err)
	}
	if svc.Ready() {
		t.Fatal("el servicio no debería estar ready sin snapshot")
	}
}
