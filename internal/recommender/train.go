package recommender

import (
	"log"
	"time"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type TrainOptions struct {
	// Optimize evalúa varias métricas de similitud antes de elegir.
	// La elegida es siempre coseno (estándar para collaborative filtering);
	// la evaluación solo queda registrada en los logs y en el flag del
	// snapshot. En el serving hay exactamente una métrica activa.
	Optimize bool
}

// Train construye el snapshot completo: pivotea los ratings en la matriz
// tenant×property y calcula la similitud item-item. Un set vacío de ratings
// produce una matriz 0×0 válida; los componentes de serving la toleran.
func Train(ratings []models.RatingDoc, properties []models.PropertyDoc, opts TrainOptions) *Snapshot {
	log.Printf("[train] creando matriz tenant×property con %d ratings...", len(ratings))
	matrix := BuildMatrix(ratings)
	log.Printf("[train] dimensiones: %d tenants × %d propiedades", matrix.Rows(), matrix.Cols())

	var sim *Similarity
	if opts.Optimize {
		log.Printf("[train] evaluando métricas de similitud:")
		for _, metric := range []string{MetricCosine, MetricPearson} {
			var candidate *Similarity
			switch metric {
			case MetricCosine:
				candidate = Cosine(matrix)
			case MetricPearson:
				candidate = Pearson(matrix)
			}
			logMetricStats(metric, candidate)
			if metric == MetricCosine {
				sim = candidate
			}
		}
		log.Printf("[train] métrica elegida: %s", MetricCosine)
	} else {
		sim = Cosine(matrix)
	}

	return &Snapshot{
		Matrix:           matrix,
		Similarity:       sim,
		Ratings:          ratings,
		Properties:       properties,
		SimilarityMetric: sim.Metric,
		Optimized:        opts.Optimize,
		TrainedAt:        time.Now(),
	}
}

func logMetricStats(metric string, s *Similarity) {
	if len(s.Data) == 0 {
		log.Printf("[train]   %s: matriz vacía", metric)
		return
	}
	log.Printf("[train]   %s: range [%.3f, %.3f], mean %.3f",
		metric, floats.Min(s.Data), floats.Max(s.Data), stat.Mean(s.Data, nil))
}
