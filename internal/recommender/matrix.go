package recommender

import (
	"sort"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
)

// Matrix es la matriz tenant×property de ratings, densa y con índices
// explícitos id→fila/columna. Las celdas sin rating valen 0.
type Matrix struct {
	TenantIDs   []int     `bson:"tenantIds"`
	PropertyIDs []int     `bson:"propertyIds"`
	Data        []float64 `bson:"data"` // row-major, len = tenants*properties

	tenantIdx   map[int]int
	propertyIdx map[int]int
}

// BuildMatrix pivotea los ratings crudos en la matriz tenant×property.
// Ejes = ids distintos ordenados ascendente. Si hay varios ratings para el
// mismo par (tenant, property) gana la última observación del slice de
// entrada (política documentada, el pivot no es ambiguo).
func BuildMatrix(ratings []models.RatingDoc) *Matrix {
	tenantSet := make(map[int]struct{})
	propSet := make(map[int]struct{})
	for _, r := range ratings {
		tenantSet[r.TenantID] = struct{}{}
		propSet[r.PropertyID] = struct{}{}
	}

	m := &Matrix{
		TenantIDs:   sortedKeys(tenantSet),
		PropertyIDs: sortedKeys(propSet),
	}
	m.reindex()
	m.Data = make([]float64, len(m.TenantIDs)*len(m.PropertyIDs))

	for _, r := range ratings {
		row := m.tenantIdx[r.TenantID]
		col := m.propertyIdx[r.PropertyID]
		m.Data[row*len(m.PropertyIDs)+col] = r.Rating
	}
	return m
}

// reindex reconstruye los mapas id→índice. Hay que llamarlo después de
// deserializar un snapshot (los mapas no viajan en BSON).
func (m *Matrix) reindex() {
	m.tenantIdx = make(map[int]int, len(m.TenantIDs))
	for i, id := range m.TenantIDs {
		m.tenantIdx[id] = i
	}
	m.propertyIdx = make(map[int]int, len(m.PropertyIDs))
	for j, id := range m.PropertyIDs {
		m.propertyIdx[id] = j
	}
}

func (m *Matrix) Rows() int { return len(m.TenantIDs) }
func (m *Matrix) Cols() int { return len(m.PropertyIDs) }

// At devuelve el rating en (tenantID, propertyID), 0 si no existe el par.
func (m *Matrix) At(tenantID, propertyID int) float64 {
	row, ok := m.tenantIdx[tenantID]
	if !ok {
		return 0
	}
	col, ok := m.propertyIdx[propertyID]
	if !ok {
		return 0
	}
	return m.Data[row*len(m.PropertyIDs)+col]
}

// PropertyColumn devuelve el vector de ratings de una propiedad a través de
// todos los tenants (una fila de la matriz transpuesta).
func (m *Matrix) PropertyColumn(j int) []float64 {
	col := make([]float64, len(m.TenantIDs))
	for i := range m.TenantIDs {
		col[i] = m.Data[i*len(m.PropertyIDs)+j]
	}
	return col
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
