package regression

import (
	"math"
	"path/filepath"
	"testing"
)

func TestFitRecoversLinearFunction(t *testing.T) {
	// y = 2a - 3b + 7, sin ruido: el OLS debe recuperarlo exacto
	var features [][]float64
	var targets []float64
	for a := 0.0; a < 5; a++ {
		for b := 0.0; b < 5; b++ {
			features = append(features, []float64{a, b})
			targets = append(targets, 2*a-3*b+7)
		}
	}

	m, err := Fit(features, targets, []string{"a", "b"})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(m.Weights[0]-2) > 1e-6 || math.Abs(m.Weights[1]+3) > 1e-6 {
		t.Errorf("pesos = %v, quería [2, -3]", m.Weights)
	}
	if math.Abs(m.Bias-7) > 1e-6 {
		t.Errorf("bias = %v, quería 7", m.Bias)
	}

	if got := m.Predict([]float64{10, 1}); math.Abs(got-24) > 1e-6 {
		t.Errorf("Predict = %v, quería 24", got)
	}
}

func TestEvaluatePerfectFit(t *testing.T) {
	features := [][]float64{{1}, {2}, {3}, {4}}
	targets := []float64{2, 4, 6, 8}

	m, err := Fit(features, targets, []string{"x"})
	if err != nil {
		t.Fatal(err)
	}
	mae, r2 := m.Evaluate(features, targets)
	if mae > 1e-9 {
		t.Errorf("MAE = %v", mae)
	}
	if math.Abs(r2-1) > 1e-9 {
		t.Errorf("R² = %v", r2)
	}
}

func TestFitRejectsBadInput(t *testing.T) {
	if _, err := Fit(nil, nil, []string{"x"}); err == nil {
		t.Error("dataset vacío debe dar error")
	}
	if _, err := Fit([][]float64{{1, 2}}, []float64{1}, []string{"x"}); err == nil {
		t.Error("dimensiones inconsistentes deben dar error")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m, err := Fit([][]float64{{1}, {2}, {3}}, []float64{3, 5, 7}, []string{"x"})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "price_model.bson")
	if err := m.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := loaded.Predict([]float64{4}), m.Predict([]float64{4}); math.Abs(got-want) > 1e-9 {
		t.Errorf("predicción cambió tras recargar: %v vs %v", got, want)
	}
}

func TestSplitProportionsAndDeterminism(t *testing.T) {
	var features [][]float64
	var targets []float64
	for i := 0; i < 100; i++ {
		features = append(features, []float64{float64(i)})
		targets = append(targets, float64(i))
	}

	trainX, trainY, testX, testY := Split(features, targets, 42)
	if len(trainX) != 80 || len(testX) != 20 {
		t.Errorf("split = %d/%d, quería 80/20", len(trainX), len(testX))
	}
	if len(trainY) != 80 || len(testY) != 20 {
		t.Errorf("targets desalineados: %d/%d", len(trainY), len(testY))
	}

	_, _, testX2, _ := Split(features, targets, 42)
	for i := range testX {
		if testX[i][0] != testX2[i][0] {
			t.Fatal("split no es determinista con la misma semilla")
		}
	}
}
