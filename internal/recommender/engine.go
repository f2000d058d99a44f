package recommender

import (
	"errors"
	"log"
	"sort"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
)

// ErrModelUnavailable se devuelve cuando el snapshot no se pudo cargar al
// arrancar. El boundary HTTP lo traduce a 503; es el único fallo que el
// motor propaga (los cold-start degradan a populares, nunca son error).
var ErrModelUnavailable = errors.New("modelo de recomendación no disponible")

const (
	TypeUserBased = "user-based"
	TypeItemBased = "item-based"
	TypePopular   = "popular"
)

// Engine responde las tres consultas de recomendación sobre un snapshot
// cargado. Todo es lectura en memoria: el snapshot es inmutable después de
// construir el Engine, así que no hace falta ningún lock para servir
// requests concurrentes.
type Engine struct {
	snap     *Snapshot
	propByID map[int]*models.PropertyDoc
	byTenant map[int][]models.RatingDoc
}

// NewEngine construye el motor sobre un snapshot ya cargado. snap == nil
// deja el motor en estado "no disponible" (todas las consultas devuelven
// ErrModelUnavailable) en vez de tumbar el proceso.
func NewEngine(snap *Snapshot) *Engine {
	e := &Engine{snap: snap}
	if snap == nil {
		return e
	}

	e.propByID = make(map[int]*models.PropertyDoc, len(snap.Properties))
	for i := range snap.Properties {
		e.propByID[snap.Properties[i].PropertyID] = &snap.Properties[i]
	}

	e.byTenant = make(map[int][]models.RatingDoc)
	for _, r := range snap.Ratings {
		e.byTenant[r.TenantID] = append(e.byTenant[r.TenantID], r)
	}
	return e
}

// LoadEngine carga el snapshot desde disco. Si el archivo no existe el motor
// queda no disponible y el API responde 503, no se cae el proceso.
func LoadEngine(path string) *Engine {
	snap, err := LoadSnapshot(path)
	if err != nil {
		log.Printf("[recommender] no se pudo cargar %s: %v (corre el trainer)", path, err)
		return NewEngine(nil)
	}
	log.Printf("[recommender] snapshot cargado: %d tenants, %d propiedades, %d ratings (métrica=%s)",
		snap.Matrix.Rows(), snap.Matrix.Cols(), len(snap.Ratings), snap.SimilarityMetric)
	return NewEngine(snap)
}

func (e *Engine) Ready() bool { return e.snap != nil }

// Metric devuelve la métrica de similitud activa en el snapshot.
func (e *Engine) Metric() string {
	if e.snap == nil {
		return ""
	}
	return e.snap.SimilarityMetric
}

// Stats para health checks.
func (e *Engine) Stats() (properties, ratings int) {
	if e.snap == nil {
		return 0, 0
	}
	return len(e.snap.Properties), len(e.snap.Ratings)
}

// SimilarProperties devuelve las topN propiedades más similares a una dada,
// excluyéndola a sí misma. Si la propiedad no está en el modelo no es un
// error: cold-start, se delega entero al ranking de popularidad.
func (e *Engine) SimilarProperties(propertyID, topN int) ([]models.RecItem, error) {
	if e.snap == nil {
		return nil, ErrModelUnavailable
	}

	row, ok := e.snap.Similarity.Row(propertyID)
	if !ok {
		return Popular(e.snap.Ratings, topN), nil
	}

	items := make([]models.RecItem, 0, len(row))
	for j, score := range row {
		candidate := e.snap.Similarity.PropertyIDs[j]
		if candidate == propertyID {
			continue // nunca recomendarse a sí misma
		}
		items = append(items, models.RecItem{PropertyID: candidate, Score: score})
	}

	sortDescStable(items)
	if len(items) > topN {
		items = items[:topN]
	}
	return items, nil
}

// RecommendForTenant recomienda propiedades para un tenant:
//  1. tomar sus propiedades bien notadas (rating >= 4)
//  2. acumular las filas de similitud de cada una (una propiedad parecida a
//     dos favoritas suma ambas contribuciones)
//  3. excluir todo lo que ya haya notado, con cualquier nota
//
// Sin historial o sin favoritas → populares. Si quedan menos de topN
// candidatos se devuelven menos, nunca se rellena con populares.
func (e *Engine) RecommendForTenant(tenantID, topN int) ([]models.RecItem, error) {
	if e.snap == nil {
		return nil, ErrModelUnavailable
	}

	history := e.byTenant[tenantID]
	if len(history) == 0 {
		return Popular(e.snap.Ratings, topN), nil
	}

	rated := make(map[int]bool, len(history))
	var liked []int
	for _, r := range history {
		rated[r.PropertyID] = true
		if r.Rating >= 4 {
			liked = append(liked, r.PropertyID)
		}
	}
	if len(liked) == 0 {
		return Popular(e.snap.Ratings, topN), nil
	}

	scores := make(map[int]float64)
	for _, propID := range liked {
		row, ok := e.snap.Similarity.Row(propID)
		if !ok {
			continue
		}
		for j, sim := range row {
			candidate := e.snap.Similarity.PropertyIDs[j]
			if rated[candidate] {
				continue
			}
			scores[candidate] += sim
		}
	}

	// materializar en el orden de la matriz para que el sort estable
	// desempate siempre igual
	items := make([]models.RecItem, 0, len(scores))
	for _, propID := range e.snap.Similarity.PropertyIDs {
		if score, ok := scores[propID]; ok {
			items = append(items, models.RecItem{PropertyID: propID, Score: score})
		}
	}

	sortDescStable(items)
	if len(items) > topN {
		items = items[:topN]
	}
	return items, nil
}

// PopularProperties es el passthrough directo al ranking de popularidad.
func (e *Engine) PopularProperties(topN int) ([]models.RecItem, error) {
	if e.snap == nil {
		return nil, ErrModelUnavailable
	}
	return Popular(e.snap.Ratings, topN), nil
}

// Recommend aplica la política de selección de modo: tenant_id manda sobre
// property_id, y sin ninguno de los dos se devuelven las populares.
func (e *Engine) Recommend(tenantID, propertyID *int, topN int) ([]models.RecItem, string, error) {
	switch {
	case tenantID != nil:
		items, err := e.RecommendForTenant(*tenantID, topN)
		return items, TypeUserBased, err
	case propertyID != nil:
		items, err := e.SimilarProperties(*propertyID, topN)
		return items, TypeItemBased, err
	default:
		items, err := e.PopularProperties(topN)
		return items, TypePopular, err
	}
}

// Details busca los metadatos de cada propiedad; nil cuando no está en la
// tabla (la respuesta sale con campos null, nunca falla por metadata).
func (e *Engine) Details(propertyIDs []int) []*models.PropertyDoc {
	out := make([]*models.PropertyDoc, len(propertyIDs))
	for i, id := range propertyIDs {
		out[i] = e.propByID[id]
	}
	return out
}

func sortDescStable(items []models.RecItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Score > items[j].Score
	})
}
