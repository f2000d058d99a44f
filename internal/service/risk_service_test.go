package service

import (
	"testing"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/dataset"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/recommender"
	"github.com/mohamediliasskaddar/RENTOPIA/internal/regression"
)

func trainedRiskService(t *testing.T) *RiskService {
	t.Helper()

	docs := dataset.GenerateTenantRisk(dataset.GenOptions{NumTenants: 300})
	features := make([][]float64, len(docs))
	targets := make([]float64, len(docs))
	for i, d := range docs {
		features[i] = []float64{d.Income, d.DebtRatio, float64(d.TotalBookings), float64(d.Cancellations), float64(d.LateCancellations), d.AvgRating}
		targets[i] = float64(d.RiskScore)
	}
	model, err := regression.Fit(features, targets, RiskFeatureNames)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	return &RiskService{model: model}
}

func TestRiskPredictBounds(t *testing.T) {
	svc := trainedRiskService(t)

	cases := []models.RiskRequest{
		{Income: 9000, DebtRatio: 0.2, TotalBookings: 10, Cancellations: 0, LateCancellations: 0, AvgRating: 4.8},
		{Income: 4000, DebtRatio: 0.7, TotalBookings: 15, Cancellations: 7, LateCancellations: 6, AvgRating: 2.5},
		{Income: 20000, DebtRatio: 0.0, TotalBookings: 1, Cancellations: 0, LateCancellations: 0, AvgRating: 5},
	}
	for _, req := range cases {
		resp, err := svc.Predict(req)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		if resp.RiskScore < 0 || resp.RiskScore > 100 {
			t.Fatalf("risk_score fuera de [0,100]: %d", resp.RiskScore)
		}
		if resp.RiskLevel != RiskLevel(resp.RiskScore) {
			t.Fatalf("risk_level %q no coincide con el score %d", resp.RiskLevel, resp.RiskScore)
		}
	}
}

func TestRiskOrdering(t *testing.T) {
	svc := trainedRiskService(t)

	good, err := svc.Predict(models.RiskRequest{Income: 12000, DebtRatio: 0.1, TotalBookings: 10, AvgRating: 4.9})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	bad, err := svc.Predict(models.RiskRequest{Income: 3000, DebtRatio: 0.7, TotalBookings: 12, Cancellations: 6, LateCancellations: 5, AvgRating: 2.5})
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if good.RiskScore >= bad.RiskScore {
		t.Fatalf("un perfil impecable (%d) no puede ser más riesgoso que uno lleno de cancelaciones (%d)",
			good.RiskScore, bad.RiskScore)
	}
}

func TestRiskLevels(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "LOW"},
		{29, "LOW"},
		{30, "MEDIUM"},
		{69, "MEDIUM"},
		{70, "HIGH"},
		{100, "HIGH"},
	}
	for _, c := range cases {
		if got := RiskLevel(c.score); got != c.want {
			t.Errorf("RiskLevel(%d) = %q, se esperaba %q", c.score, got, c.want)
		}
	}
}

func TestRiskModelUnavailable(t *testing.T) {
	svc := &RiskService{}
	if svc.Ready() {
		t.Fatal("el servicio no debería estar ready sin modelo")
	}
	if _, err := svc.Predict(models.RiskRequest{}); err != recommender.ErrModelUnavailable {
		t.Fatalf("se esperaba ErrModelUnavailable, llegó %v", err)
	}
}
