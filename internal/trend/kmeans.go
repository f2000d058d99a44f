package trend

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// kMeans corre Lloyd con nInit inicializaciones aleatorias y se queda con la
// asignación de menor inercia.
func kMeans(points [][]float64, k, nInit int, rng *rand.Rand) ([]int, float64) {
	bestInertia := math.Inf(1)
	var best []int

	for init := 0; init < nInit; init++ {
		assign, inertia := lloyd(points, k, rng)
		if inertia < bestInertia {
			bestInertia = inertia
			best = assign
		}
	}
	return best, bestInertia
}

func lloyd(points [][]float64, k int, rng *rand.Rand) ([]int, float64) {
	n := len(points)
	dim := len(points[0])

	// centroides iniciales: k puntos distintos al azar
	centroids := make([][]float64, k)
	for i, idx := range rng.Perm(n)[:k] {
		centroids[i] = append([]float64(nil), points[idx]...)
	}

	assign := make([]int, n)
	for iter := 0; iter < 100; iter++ {
		changed := false
		for i, p := range points {
			c := nearest(p, centroids)
			if c != assign[i] {
				assign[i] = c
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}

		// recomputar centroides
		counts := make([]int, k)
		next := make([][]float64, k)
		for c := range next {
			next[c] = make([]float64, dim)
		}
		for i, p := range points {
			floats.Add(next[assign[i]], p)
			counts[assign[i]]++
		}
		for c := range next {
			if counts[c] == 0 {
				// cluster vacío: re-sembrar con un punto al azar
				next[c] = append([]float64(nil), points[rng.Intn(n)]...)
				continue
			}
			floats.Scale(1/float64(counts[c]), next[c])
		}
		centroids = next
	}

	var inertia float64
	for i, p := range points {
		d := floats.Distance(p, centroids[assign[i]], 2)
		inertia += d * d
	}
	return assign, inertia
}

func nearest(p []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		if d := floats.Distance(p, centroid, 2); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// silhouette promedio: (b-a)/max(a,b) por punto, donde a es la distancia
// media intra-cluster y b la distancia media al cluster vecino más cercano.
func silhouette(points [][]float64, assign []int, k int) float64 {
	n := len(points)
	if n == 0 || k < 2 {
		return 0
	}

	var total float64
	counted := 0
	for i := range points {
		sums := make([]float64, k)
		counts := make([]int, k)
		for j := range points {
			if i == j {
				continue
			}
			sums[assign[j]] += floats.Distance(points[i], points[j], 2)
			counts[assign[j]]++
		}

		own := assign[i]
		if counts[own] == 0 {
			continue // punto solo en su cluster
		}
		a := sums[own] / float64(counts[own])

		b := math.Inf(1)
		for c := 0; c < k; c++ {
			if c == own || counts[c] == 0 {
				continue
			}
			if mean := sums[c] / float64(counts[c]); mean < b {
				b = mean
			}
		}
		if math.IsInf(b, 1) {
			continue
		}

		if m := math.Max(a, b); m > 0 {
			total += (b - a) / m
		}
		counted++
	}

	if counted == 0 {
		return 0
	}
	return total / float64(counted)
}
