package recommender

import (
	"reflect"
	"testing"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
)

func TestBuildMatrixDimensionsAndOrder(t *testing.T) {
	ratings := []models.RatingDoc{
		{TenantID: 30, PropertyID: 7, Rating: 5},
		{TenantID: 10, PropertyID: 200, Rating: 3},
		{TenantID: 30, PropertyID: 200, Rating: 1},
	}

	m := BuildMatrix(ratings)

	// ids no contiguos, ejes ordenados ascendente
	if !reflect.DeepEqual(m.TenantIDs, []int{10, 30}) {
		t.Fatalf("TenantIDs = %v", m.TenantIDs)
	}
	if !reflect.DeepEqual(m.PropertyIDs, []int{7, 200}) {
		t.Fatalf("PropertyIDs = %v", m.PropertyIDs)
	}

	if got := m.At(30, 7); got != 5 {
		t.Errorf("At(30,7) = %v, quería 5", got)
	}
	if got := m.At(10, 200); got != 3 {
		t.Errorf("At(10,200) = %v, quería 3", got)
	}
	// par sin rating rellena a 0
	if got := m.At(10, 7); got != 0 {
		t.Errorf("At(10,7) = %v, quería 0", got)
	}
}

func TestBuildMatrixDuplicateLastWins(t *testing.T) {
	ratings := []models.RatingDoc{
		{TenantID: 1, PropertyID: 1, Rating: 2},
		{TenantID: 1, PropertyID: 1, Rating: 5},
	}

	m := BuildMatrix(ratings)
	if got := m.At(1, 1); got != 5 {
		t.Errorf("con duplicados gana la última observación, At = %v", got)
	}
}

func TestBuildMatrixEmpty(t *testing.T) {
	m := BuildMatrix(nil)
	if m.Rows() != 0 || m.Cols() != 0 {
		t.Fatalf("matriz vacía esperada, got %dx%d", m.Rows(), m.Cols())
	}
	// los componentes downstream no deben reventar con 0 filas/columnas
	s := Cosine(m)
	if len(s.Data) != 0 {
		t.Errorf("similitud de matriz vacía debe ser vacía")
	}
}

func TestMatrixPropertyColumn(t *testing.T) {
	ratings := []models.RatingDoc{
		{TenantID: 1, PropertyID: 10, Rating: 4},
		{TenantID: 2, PropertyID: 10, Rating: 2},
		{TenantID: 2, PropertyID: 20, Rating: 5},
	}
	m := BuildMatrix(ratings)

	if got := m.PropertyColumn(0); !reflect.DeepEqual(got, []float64{4, 2}) {
		t.Errorf("columna de la propiedad 10 = %v", got)
	}
	if got := m.PropertyColumn(1); !reflect.DeepEqual(got, []float64{0, 5}) {
		t.Errorf("columna de la propiedad 20 = %v", got)
	}
}
