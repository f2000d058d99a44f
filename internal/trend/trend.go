// Package trend implementa el batch de tendencias de mercado: simula series
// de precios por propiedad, extrae features, clusteriza con k-means y agrega
// predicciones por quartier. El resultado se sirve read-only desde su
// snapshot, igual que el resto de modelos.
package trend

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"gonum.org/v1/gonum/stat"
)

const (
	LabelRising    = "RISING"
	LabelStable    = "STABLE"
	LabelDeclining = "DECLINING"
)

type Options struct {
	NNeighborhoods int
	NClusters      int
	// Optimize elige el número de clusters por silhouette en [2..5]
	Optimize bool
	Seed     int64
}

func (o *Options) defaults() {
	if o.NNeighborhoods <= 0 {
		o.NNeighborhoods = 10
	}
	if o.NClusters <= 0 {
		o.NClusters = 3
	}
	if o.Seed == 0 {
		o.Seed = 42
	}
}

type ClusterInfo struct {
	Cluster       int     `bson:"cluster"`
	TrendLabel    string  `bson:"trendLabel"`
	AvgSlope      float64 `bson:"avgSlope"`
	AvgVolatility float64 `bson:"avgVolatility"`
	AvgPrice      float64 `bson:"avgPrice"`
	Count         int     `bson:"count"`
}

type Model struct {
	Clusters       []ClusterInfo              `bson:"clusters"`
	Neighborhoods  []models.NeighborhoodTrend `bson:"neighborhoods"`
	NClusters      int                        `bson:"nClusters"`
	NNeighborhoods int                        `bson:"nNeighborhoods"`
	Optimized      bool                       `bson:"optimized"`
	TrainedAt      time.Time                  `bson:"trainedAt"`
}

// features de tendencia de una propiedad, extraídas de su serie simulada
type propertyFeatures struct {
	propertyID    int
	neighborhood  int
	meanPrice     float64
	stdPrice      float64
	priceRange    float64
	slope         float64
	volatility    float64
	trendStrength float64
	cluster       int
}

// Train corre el batch completo. Es un paso offline: termina de construir el
// modelo entero antes de que nadie lo sirva.
func Train(properties []models.PropertyDoc, opts Options) *Model {
	opts.defaults()
	rng := rand.New(rand.NewSource(opts.Seed))

	log.Printf("[trend] simulando 12 meses de precios para %d propiedades...", len(properties))
	feats := make([]propertyFeatures, 0, len(properties))
	for _, p := range properties {
		series := simulateSeries(p, rng)
		feats = append(feats, extractFeatures(p, series, opts.NNeighborhoods))
	}

	points := standardize(featureMatrix(feats))

	k := opts.NClusters
	if opts.Optimize && len(points) > 5 {
		k = bestK(points, rng)
		log.Printf("[trend] mejor número de clusters: %d", k)
	}

	var assign []int
	if len(points) >= k && k > 0 {
		assign, _ = kMeans(points, k, 10, rng)
	} else {
		assign = make([]int, len(points))
	}
	for i := range feats {
		feats[i].cluster = assign[i]
	}

	clusters := labelClusters(feats, k)
	for _, c := range clusters {
		log.Printf("[trend] cluster %d: %s (%d propiedades, pendiente media %.6f)",
			c.Cluster, c.TrendLabel, c.Count, c.AvgSlope)
	}

	return &Model{
		Clusters:       clusters,
		Neighborhoods:  aggregateNeighborhoods(feats, clusters, opts.NNeighborhoods),
		NClusters:      k,
		NNeighborhoods: opts.NNeighborhoods,
		Optimized:      opts.Optimize,
		TrainedAt:      time.Now(),
	}
}

// simulateSeries genera 12 meses de precios a partir del precio base de la
// propiedad: 40% rising (+2%/mes), 40% stable (±1%), 20% declining (-1%/mes),
// con ruido gaussiano del 5%.
func simulateSeries(p models.PropertyDoc, rng *rand.Rand) []float64 {
	var monthly func(month int) float64
	switch r := rng.Float64(); {
	case r < 0.4:
		monthly = func(month int) float64 { return 1 + float64(month)*0.02 }
	case r < 0.8:
		monthly = func(int) float64 { return 1 + (rng.Float64()*2-1)*0.01 }
	default:
		monthly = func(month int) float64 { return 1 - float64(month)*0.01 }
	}

	prices := make([]float64, 12)
	for month := range prices {
		noise := rng.NormFloat64() * 0.05
		price := p.PricePerNightETH * monthly(month) * (1 + noise)
		prices[month] = math.Max(price, 0.01)
	}
	return prices
}

func extractFeatures(p models.PropertyDoc, prices []float64, nNeighborhoods int) propertyFeatures {
	mean := stat.Mean(prices, nil)

	xs := make([]float64, len(prices))
	for i := range xs {
		xs[i] = float64(i)
	}
	_, slope := stat.LinearRegression(xs, prices, nil, false)

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
	}

	min, max := prices[0], prices[0]
	for _, v := range prices[1:] {
		min = math.Min(min, v)
		max = math.Max(max, v)
	}

	return propertyFeatures{
		propertyID:    p.PropertyID,
		neighborhood:  p.PropertyID % nNeighborhoods,
		meanPrice:     mean,
		stdPrice:      stat.StdDev(prices, nil),
		priceRange:    max - min,
		slope:         slope,
		volatility:    stat.StdDev(returns, nil),
		trendStrength: math.Abs(slope) / mean,
	}
}

func featureMatrix(feats []propertyFeatures) [][]float64 {
	points := make([][]float64, len(feats))
	for i, f := range feats {
		points[i] = []float64{f.meanPrice, f.stdPrice, f.priceRange, f.slope, f.volatility, f.trendStrength}
	}
	return points
}

// standardize lleva cada columna a z-scores (varianza 0 queda en 0).
func standardize(points [][]float64) [][]float64 {
	if len(points) == 0 {
		return points
	}
	dim := len(points[0])
	col := make([]float64, len(points))

	out := make([][]float64, len(points))
	for i := range out {
		out[i] = make([]float64, dim)
	}
	for j := 0; j < dim; j++ {
		for i := range points {
			col[i] = points[i][j]
		}
		mean := stat.Mean(col, nil)
		std := stat.StdDev(col, nil)
		for i := range points {
			if std > 0 {
				out[i][j] = (points[i][j] - mean) / std
			}
		}
	}
	return out
}

func bestK(points [][]float64, rng *rand.Rand) int {
	bestK, bestScore := 3, math.Inf(-1)
	for _, k := range []int{2, 3, 4, 5} {
		if k >= len(points) {
			break
		}
		assign, _ := kMeans(points, k, 10, rng)
		score := silhouette(points, assign, k)
		log.Printf("[trend]   k=%d: silhouette %.4f", k, score)
		if score > bestScore {
			bestK, bestScore = k, score
		}
	}
	return bestK
}

// labelClusters interpreta cada cluster por su pendiente media.
func labelClusters(feats []propertyFeatures, k int) []ClusterInfo {
	out := make([]ClusterInfo, k)
	for c := range out {
		out[c].Cluster = c
	}
	for _, f := range feats {
		ci := &out[f.cluster]
		ci.AvgSlope += f.slope
		ci.AvgVolatility += f.volatility
		ci.AvgPrice += f.meanPrice
		ci.Count++
	}
	for c := range out {
		ci := &out[c]
		if ci.Count > 0 {
			n := float64(ci.Count)
			ci.AvgSlope /= n
			ci.AvgVolatility /= n
			ci.AvgPrice /= n
		}
		switch {
		case ci.AvgSlope > 0.001:
			ci.TrendLabel = LabelRising
		case ci.AvgSlope < -0.001:
			ci.TrendLabel = LabelDeclining
		default:
			ci.TrendLabel = LabelStable
		}
	}
	return out
}

func aggregateNeighborhoods(feats []propertyFeatures, clusters []ClusterInfo, n int) []models.NeighborhoodTrend {
	var out []models.NeighborhoodTrend

	for id := 0; id < n; id++ {
		var (
			sumPrice, sumSlope, sumVol float64
			count                      int
			clusterVotes               = map[int]int{}
		)
		for _, f := range feats {
			if f.neighborhood != id {
				continue
			}
			sumPrice += f.meanPrice
			sumSlope += f.slope
			sumVol += f.volatility
			clusterVotes[f.cluster]++
			count++
		}
		if count == 0 {
			continue
		}

		avgPrice := sumPrice / float64(count)
		avgSlope := sumSlope / float64(count)
		avgVol := sumVol / float64(count)

		// cluster dominante por moda; empates al cluster de menor id
		dominant, best := 0, -1
		for c, votes := range clusterVotes {
			if votes > best || (votes == best && c < dominant) {
				dominant, best = c, votes
			}
		}

		confidence := "LOW"
		if avgVol < 0.05 {
			confidence = "HIGH"
		} else if avgVol < 0.1 {
			confidence = "MEDIUM"
		}

		out = append(out, models.NeighborhoodTrend{
			NeighborhoodID:   id,
			CurrentAvgPrice:  round4(avgPrice),
			TrendLabel:       clusters[dominant].TrendLabel,
			Slope:            avgSlope,
			Volatility:       avgVol,
			PredictedPrice3m: round4(avgPrice * (1 + avgSlope*3)),
			PredictedPrice6m: round4(avgPrice * (1 + avgSlope*6)),
			Confidence:       confidence,
		})
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// ---------------------- serving ----------------------

// NeighborhoodTrend busca un quartier; false si no existe.
func (m *Model) NeighborhoodTrend(id int) (models.NeighborhoodTrend, bool) {
	for _, t := range m.Neighborhoods {
		if t.NeighborhoodID == id {
			return t, true
		}
	}
	return models.NeighborhoodTrend{}, false
}

func (m *Model) AllTrends() []models.NeighborhoodTrend {
	return m.Neighborhoods
}

func (m *Model) Heatmap() models.HeatmapData {
	h := models.HeatmapData{
		Neighborhoods:     []string{},
		CurrentPrices:     []float64{},
		PredictedPrices3m: []float64{},
		TrendLabels:       []string{},
	}
	for _, t := range m.Neighborhoods {
		h.Neighborhoods = append(h.Neighborhoods, fmt.Sprintf("Quartier %d", t.NeighborhoodID))
		h.CurrentPrices = append(h.CurrentPrices, t.CurrentAvgPrice)
		h.PredictedPrices3m = append(h.PredictedPrices3m, t.PredictedPrice3m)
		h.TrendLabels = append(h.TrendLabels, t.TrendLabel)
	}
	return h
}

func (m *Model) Save(path string) error {
	raw, err := bson.Marshal(m)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Model
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("deserializando modelo de trend: %w", err)
	}
	return &m, nil
}
