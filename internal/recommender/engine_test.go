package recommender

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
)

// fixture con historial real: se entrena desde ratings crudos
func trainedEngine(ratings []models.RatingDoc, props []models.PropertyDoc) *Engine {
	return NewEngine(Train(ratings, props, TrainOptions{}))
}

// fixture con similitudes armadas a mano, para controlar los scores exactos
func handmadeEngine(ratings []models.RatingDoc, ids []int, sim []float64) *Engine {
	s := &Similarity{PropertyIDs: ids, Data: sim, Metric: MetricCosine}
	s.reindex()
	return NewEngine(&Snapshot{
		Matrix:           BuildMatrix(ratings),
		Similarity:       s,
		Ratings:          ratings,
		SimilarityMetric: MetricCosine,
	})
}

func TestSimilarPropertiesExcludesSelfAndSorts(t *testing.T) {
	ratings := []models.RatingDoc{
		{TenantID: 1, PropertyID: 1, Rating: 5},
		{TenantID: 1, PropertyID: 2, Rating: 5},
		{TenantID: 2, PropertyID: 2, Rating: 4},
		{TenantID: 2, PropertyID: 3, Rating: 4},
		{TenantID: 3, PropertyID: 1, Rating: 3},
		{TenantID: 3, PropertyID: 3, Rating: 2},
	}
	e := trainedEngine(ratings, nil)

	items, err := e.SimilarProperties(1, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range items {
		if it.PropertyID == 1 {
			t.Errorf("la propiedad consultada apareció en sus propios similares")
		}
	}
	for i := 1; i < len(items); i++ {
		if items[i].Score > items[i-1].Score {
			t.Errorf("resultado no está ordenado descendente: %v", items)
		}
	}
}

func TestSimilarPropertiesTopNCap(t *testing.T) {
	ratings := []models.RatingDoc{
		{TenantID: 1, PropertyID: 1, Rating: 5},
		{TenantID: 1, PropertyID: 2, Rating: 5},
		{TenantID: 1, PropertyID: 3, Rating: 5},
		{TenantID: 1, PropertyID: 4, Rating: 5},
	}
	e := trainedEngine(ratings, nil)

	items, err := e.SimilarProperties(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Errorf("len = %d, quería 2", len(items))
	}
}

func TestSimilarUnknownPropertyFallsBackToPopular(t *testing.T) {
	e := trainedEngine(popularityFixture(), nil)

	similar, err := e.SimilarProperties(99999, 3)
	if err != nil {
		t.Fatal(err)
	}
	popular, err := e.PopularProperties(3)
	if err != nil {
		t.Fatal(err)
	}
	// cold-start: equivalencia exacta con el ranking de popularidad
	if !reflect.DeepEqual(similar, popular) {
		t.Errorf("similar(unknown) = %v, popular = %v", similar, popular)
	}
}

func TestPersonalizedNoHistoryFallsBackToPopular(t *testing.T) {
	e := trainedEngine(popularityFixture(), nil)

	personalized, err := e.RecommendForTenant(424242, 3)
	if err != nil {
		t.Fatal(err)
	}
	popular, _ := e.PopularProperties(3)
	if !reflect.DeepEqual(personalized, popular) {
		t.Errorf("tenant sin historial = %v, popular = %v", personalized, popular)
	}
}

func TestPersonalizedEmptyLikedSetFallsBackToPopular(t *testing.T) {
	ratings := append(popularityFixture(),
		// el tenant 7 solo tiene notas malas, liked set vacío
		models.RatingDoc{TenantID: 7, PropertyID: 1, Rating: 2},
		models.RatingDoc{TenantID: 7, PropertyID: 2, Rating: 3},
	)
	e := trainedEngine(ratings, nil)

	personalized, err := e.RecommendForTenant(7, 3)
	if err != nil {
		t.Fatal(err)
	}
	popular, _ := e.PopularProperties(3)
	if !reflect.DeepEqual(personalized, popular) {
		t.Errorf("liked set vacío = %v, popular = %v", personalized, popular)
	}
}

func TestPersonalizedAccumulatesContributions(t *testing.T) {
	// A=1, B=2, C=3, D=4. El tenant nota A=5, B=5, C=1.
	// A y B son 60% similares a D, C es 0% similar a D.
	ids := []int{1, 2, 3, 4}
	sim := []float64{
		1.0, 0.5, 0.2, 0.6,
		0.5, 1.0, 0.2, 0.6,
		0.2, 0.2, 1.0, 0.0,
		0.6, 0.6, 0.0, 1.0,
	}
	ratings := []models.RatingDoc{
		{TenantID: 42, PropertyID: 1, Rating: 5},
		{TenantID: 42, PropertyID: 2, Rating: 5},
		{TenantID: 42, PropertyID: 3, Rating: 1},
	}
	e := handmadeEngine(ratings, ids, sim)

	items, err := e.RecommendForTenant(42, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].PropertyID != 4 {
		t.Fatalf("recomendó %d, quería D=4", items[0].PropertyID)
	}
	// contribuciones sumadas: 0.6 + 0.6
	if math.Abs(items[0].Score-1.2) > 1e-9 {
		t.Errorf("score = %v, quería 1.2", items[0].Score)
	}
}

func TestPersonalizedNeverReturnsRated(t *testing.T) {
	ids := []int{1, 2, 3, 4}
	sim := []float64{
		1.0, 0.9, 0.9, 0.1,
		0.9, 1.0, 0.9, 0.1,
		0.9, 0.9, 1.0, 0.1,
		0.1, 0.1, 0.1, 1.0,
	}
	ratings := []models.RatingDoc{
		{TenantID: 42, PropertyID: 1, Rating: 5},
		{TenantID: 42, PropertyID: 2, Rating: 4},
		// nota baja, pero ya notada: también se excluye
		{TenantID: 42, PropertyID: 3, Rating: 1},
	}
	e := handmadeEngine(ratings, ids, sim)

	items, err := e.RecommendForTenant(42, 10)
	if err != nil {
		t.Fatal(err)
	}
	for _, it := range items {
		if it.PropertyID == 1 || it.PropertyID == 2 || it.PropertyID == 3 {
			t.Errorf("recomendó la propiedad %d que el tenant ya notó", it.PropertyID)
		}
	}
	// quedan menos candidatos que topN: se devuelven menos, sin rellenar
	if len(items) != 1 {
		t.Errorf("len = %d, quería 1 (sin padding con populares)", len(items))
	}
}

func TestRecommendModeSelection(t *testing.T) {
	e := trainedEngine(popularityFixture(), nil)
	tenant, property := 100, 1

	tests := []struct {
		name       string
		tenantID   *int
		propertyID *int
		wantType   string
	}{
		{"tenant manda sobre property", &tenant, &property, TypeUserBased},
		{"solo property", nil, &property, TypeItemBased},
		{"sin nada, populares", nil, nil, TypePopular},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, recType, err := e.Recommend(tc.tenantID, tc.propertyID, 3)
			if err != nil {
				t.Fatal(err)
			}
			if recType != tc.wantType {
				t.Errorf("tipo = %q, quería %q", recType, tc.wantType)
			}
		})
	}
}

func TestEngineUnavailable(t *testing.T) {
	e := NewEngine(nil)

	if e.Ready() {
		t.Error("motor sin snapshot no puede estar ready")
	}
	if _, err := e.SimilarProperties(1, 5); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("err = %v", err)
	}
	if _, err := e.RecommendForTenant(1, 5); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("err = %v", err)
	}
	if _, err := e.PopularProperties(5); !errors.Is(err, ErrModelUnavailable) {
		t.Errorf("err = %v", err)
	}
}

func TestDetailsMissingMetadataIsNil(t *testing.T) {
	props := []models.PropertyDoc{{PropertyID: 1, Surface: 85, Rooms: 3}}
	e := trainedEngine(popularityFixture(), props)

	details := e.Details([]int{1, 999})
	if details[0] == nil || details[0].Surface != 85 {
		t.Errorf("details[0] = %+v", details[0])
	}
	if details[1] != nil {
		t.Errorf("propiedad sin metadata debe ser nil, got %+v", details[1])
	}
}
