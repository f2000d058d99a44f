// Package regression implementa el regresor lineal (mínimos cuadrados
// ordinarios) que respalda los modelos de precio y de riesgo. Ambos son
// wrappers de una sola llamada: cargar el snapshot, predict(features)→float.
package regression

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"go.mongodb.org/mongo-driver/bson"
)

type Model struct {
	FeatureNames []string  `bson:"featureNames"`
	Weights      []float64 `bson:"weights"` // un peso por feature
	Bias         float64   `bson:"bias"`

	// métricas sobre el 20% de test, solo informativas
	MAE float64 `bson:"mae"`
	R2  float64 `bson:"r2"`
}

// Fit resuelve w = (XᵀX)⁻¹Xᵀy sobre la matriz de features con columna de
// bias agregada.
func Fit(features [][]float64, targets []float64, names []string) (*Model, error) {
	if len(features) == 0 || len(features) != len(targets) {
		return nil, fmt.Errorf("dataset inválido: %d filas, %d targets", len(features), len(targets))
	}
	n := len(names)

	// columna extra de 1s para el intercepto
	x := mat.NewDense(len(features), n+1, nil)
	for i, row := range features {
		if len(row) != n {
			return nil, fmt.Errorf("fila %d tiene %d features, quería %d", i, len(row), n)
		}
		x.SetRow(i, append(append([]float64(nil), row...), 1))
	}
	y := mat.NewVecDense(len(targets), targets)

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("XᵀX no invertible: %w", err)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	var w mat.VecDense
	w.MulVec(&xtxInv, &xty)

	m := &Model{
		FeatureNames: append([]string(nil), names...),
		Weights:      make([]float64, n),
		Bias:         w.AtVec(n),
	}
	for i := 0; i < n; i++ {
		m.Weights[i] = w.AtVec(i)
	}
	return m, nil
}

func (m *Model) Predict(features []float64) float64 {
	score := m.Bias
	for i, w := range m.Weights {
		if i < len(features) {
			score += w * features[i]
		}
	}
	return score
}

// Evaluate calcula MAE y R² sobre un set de test y los guarda en el modelo.
func (m *Model) Evaluate(features [][]float64, targets []float64) (mae, r2 float64) {
	if len(features) == 0 {
		return 0, 0
	}

	preds := make([]float64, len(features))
	var absErr float64
	for i, row := range features {
		preds[i] = m.Predict(row)
		absErr += math.Abs(preds[i] - targets[i])
	}
	mae = absErr / float64(len(targets))

	mean := stat.Mean(targets, nil)
	var ssRes, ssTot float64
	for i, y := range targets {
		ssRes += (y - preds[i]) * (y - preds[i])
		ssTot += (y - mean) * (y - mean)
	}
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}

	m.MAE = mae
	m.R2 = r2
	return mae, r2
}

// Save/Load: mismo formato de snapshot BSON que el resto de modelos.

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
		return nil, fmt.Errorf("deserializando modelo %s: %w", path, err)
	}
	return &m, nil
}

// Split separa filas en train/test (80/20) con orden barajado determinista.
func Split(features [][]float64, targets []float64, seed int64) (trainX [][]float64, trainY []float64, testX [][]float64, testY []float64) {
	idx := shuffledIndices(len(features), seed)
	cut := len(idx) - len(idx)/5
	for k, i := range idx {
		if k < cut {
			trainX = append(trainX, features[i])
			trainY = append(trainY, targets[i])
		} else {
			testX = append(testX, features[i])
			testY = append(testY, targets[i])
		}
	}
	return
}
