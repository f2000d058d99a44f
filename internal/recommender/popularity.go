package recommender

import (
	"sort"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"
)

// Popular rankea propiedades sin mirar a ningún tenant ni propiedad en
// particular: score = cantidad de ratings × nota promedio. Una propiedad con
// muchas notas mediocres puede ganarle a una con pocas notas excelentes
// (sesgo deliberado hacia demanda probada). Es el fallback universal del
// motor para todos los casos de cold-start.
func Popular(ratings []models.RatingDoc, topN int) []models.RecItem {
	counts := make(map[int]int)
	sums := make(map[int]float64)
	for _, r := range ratings {
		counts[r.PropertyID]++
		sums[r.PropertyID] += r.Rating
	}

	items := make([]models.RecItem, 0, len(counts))
	for propID, count := range counts {
		mean := sums[propID] / float64(count)
		items = append(items, models.RecItem{
			PropertyID: propID,
			Score:      float64(count) * mean,
		})
	}

	// empates por propertyId ascendente para que el ranking sea determinista
	sort.Slice(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		return items[i].PropertyID < items[j].PropertyID
	})

	if len(items) > topN {
		items = items[:topN]
	}
	return items
}
