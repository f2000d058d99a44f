package recommender

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	MetricCosine  = "cosine"
	MetricPearson = "pearson"
)

// Similarity es la matriz property×property, simétrica, con diagonal 1.
// Los scores viven en [-1, 1].
type Similarity struct {
	PropertyIDs []int     `bson:"propertyIds"`
	Data        []float64 `bson:"data"` // n*n, row-major
	Metric      string    `bson:"metric"`

	idx map[int]int
}

// Cosine calcula la similitud coseno entre todas las propiedades, cada una
// representada por su columna de ratings (cero-rellenada) en la matriz.
// Una propiedad sin ningún rating tiene norma 0: su similitud con todo se
// estabiliza a 0, nunca NaN.
func Cosine(m *Matrix) *Similarity {
	return fromGram(m, m.Data)
}

// Pearson centra cada columna por su media antes del producto (equivalente
// a corrcoef). Solo se usa en la evaluación offline de métricas; el snapshot
// servido siempre lleva coseno.
func Pearson(m *Matrix) *Similarity {
	rows, cols := m.Rows(), m.Cols()
	centered := make([]float64, len(m.Data))
	for j := 0; j < cols; j++ {
		col := m.PropertyColumn(j)
		mean := stat.Mean(col, nil)
		for i := 0; i < rows; i++ {
			centered[i*cols+j] = m.Data[i*cols+j] - mean
		}
	}
	s := fromGram(m, centered)
	s.Metric = MetricPearson
	return s
}

// fromGram arma la matriz de similitud normalizando la matriz de Gram
// G = AᵀA: sim(i,j) = G_ij / (√G_ii · √G_jj).
func fromGram(m *Matrix, data []float64) *Similarity {
	n := m.Cols()
	s := &Similarity{
		PropertyIDs: append([]int(nil), m.PropertyIDs...),
		Data:        make([]float64, n*n),
		Metric:      MetricCosine,
	}
	s.reindex()

	if n == 0 || m.Rows() == 0 {
		return s
	}

	a := mat.NewDense(m.Rows(), n, data)
	var gram mat.Dense
	gram.Mul(a.T(), a)

	norms := make([]float64, n)
	for j := 0; j < n; j++ {
		norms[j] = math.Sqrt(gram.At(j, j))
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			var sim float64
			if norms[i] > 0 && norms[j] > 0 {
				sim = gram.At(i, j) / (norms[i] * norms[j])
			}
			s.Data[i*n+j] = sim
			s.Data[j*n+i] = sim
		}
	}
	return s
}

func (s *Similarity) reindex() {
	s.idx = make(map[int]int, len(s.PropertyIDs))
	for i, id := range s.PropertyIDs {
		s.idx[id] = i
	}
}

// Contains reporta si la propiedad está en el modelo de similitud.
func (s *Similarity) Contains(propertyID int) bool {
	_, ok := s.idx[propertyID]
	return ok
}

// At devuelve sim(a, b); 0 si alguno de los dos no está en el modelo.
func (s *Similarity) At(a, b int) float64 {
	i, ok := s.idx[a]
	if !ok {
		return 0
	}
	j, ok := s.idx[b]
	if !ok {
		return 0
	}
	return s.Data[i*len(s.PropertyIDs)+j]
}

// Row devuelve la fila completa de una propiedad en el orden de PropertyIDs.
// El segundo valor es false si la propiedad no está en el modelo.
func (s *Similarity) Row(propertyID int) ([]float64, bool) {
	i, ok := s.idx[propertyID]
	if !ok {
		return nil, false
	}
	n := len(s.PropertyIDs)
	return s.Data[i*n : (i+1)*n], true
}
