package recommender

import (
	"math"
	"testing"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
)

func TestCosineIdenticalVectors(t *testing.T) {
	// 3 propiedades con el mismo vector [5,5] sobre 2 tenants
	var ratings []models.RatingDoc
	for _, prop := range []int{1, 2, 3} {
		for _, tenant := range []int{1, 2} {
			ratings = append(ratings, models.RatingDoc{TenantID: tenant, PropertyID: prop, Rating: 5})
		}
	}

	s := Cosine(BuildMatrix(ratings))

	for _, a := range []int{1, 2, 3} {
		for _, b := range []int{1, 2, 3} {
			if got := s.At(a, b); math.Abs(got-1.0) > 1e-6 {
				t.Errorf("sim(%d,%d) = %v, quería ≈1.0", a, b, got)
			}
		}
	}
}

func TestCosineSymmetryAndRange(t *testing.T) {
	ratings := []models.RatingDoc{
		{TenantID: 1, PropertyID: 1, Rating: 5},
		{TenantID: 1, PropertyID: 2, Rating: 1},
		{TenantID: 2, PropertyID: 1, Rating: 2},
		{TenantID: 2, PropertyID: 3, Rating: 4},
		{TenantID: 3, PropertyID: 2, Rating: 3},
		{TenantID: 3, PropertyID: 3, Rating: 5},
	}
	s := Cosine(BuildMatrix(ratings))

	for _, a := range s.PropertyIDs {
		for _, b := range s.PropertyIDs {
			ab, ba := s.At(a, b), s.At(b, a)
			if ab != ba {
				t.Errorf("sim(%d,%d)=%v != sim(%d,%d)=%v", a, b, ab, b, a, ba)
			}
			if ab < -1-1e-9 || ab > 1+1e-9 {
				t.Errorf("sim(%d,%d)=%v fuera de [-1,1]", a, b, ab)
			}
		}
		if diag := s.At(a, a); math.Abs(diag-1.0) > 1e-9 {
			t.Errorf("sim(%d,%d)=%v, la diagonal es 1 por construcción", a, a, diag)
		}
	}
}

func TestCosineZeroNormStabilizedToZero(t *testing.T) {
	// la propiedad 99 existe en la matriz pero nadie la notó con valor > 0:
	// la armamos con un tenant extra que solo aparece en otras propiedades
	ratings := []models.RatingDoc{
		{TenantID: 1, PropertyID: 1, Rating: 5},
		{TenantID: 2, PropertyID: 1, Rating: 3},
		// rating 0 explícito: vector con norma 0
		{TenantID: 1, PropertyID: 99, Rating: 0},
	}
	s := Cosine(BuildMatrix(ratings))

	if got := s.At(1, 99); got != 0 {
		t.Errorf("sim con vector de norma 0 = %v, debe estabilizarse a 0", got)
	}
	if got := s.At(99, 99); math.IsNaN(got) {
		t.Errorf("sim(99,99) es NaN, debe ser un valor definido")
	}
}

func TestPearsonNoNaN(t *testing.T) {
	ratings := []models.RatingDoc{
		// columna constante: varianza 0, corrcoef degenera y debe dar 0
		{TenantID: 1, PropertyID: 1, Rating: 3},
		{TenantID: 2, PropertyID: 1, Rating: 3},
		{TenantID: 1, PropertyID: 2, Rating: 1},
		{TenantID: 2, PropertyID: 2, Rating: 5},
	}
	s := Pearson(BuildMatrix(ratings))

	for _, v := range s.Data {
		if math.IsNaN(v) {
			t.Fatalf("pearson produjo NaN: %v", s.Data)
		}
	}
	if got := s.At(1, 2); got != 0 {
		t.Errorf("pearson con columna constante = %v, quería 0", got)
	}
	if s.Metric != MetricPearson {
		t.Errorf("métrica = %q", s.Metric)
	}
}
