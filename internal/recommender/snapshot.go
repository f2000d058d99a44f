package recommender

import (
	"fmt"
	"os"
	"time"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Snapshot es el único artefacto en disco del motor: matriz de interacciones,
// matriz de similitud, ratings crudos, tabla de propiedades y la métrica con
// la que se entrenó. Se escribe completo en el batch de entrenamiento y se
// carga una sola vez al arrancar el API; después es inmutable.
type Snapshot struct {
	Matrix           *Matrix              `bson:"matrix"`
	Similarity       *Similarity          `bson:"similarity"`
	Ratings          []models.RatingDoc   `bson:"ratings"`
	Properties       []models.PropertyDoc `bson:"properties"`
	SimilarityMetric string               `bson:"similarityMetric"`
	Optimized        bool                 `bson:"optimized"`
	TrainedAt        time.Time            `bson:"trainedAt"`
}

// Save serializa el snapshot a BSON y lo escribe atómico (tmp + rename),
// así un API que esté cargando nunca ve un modelo a medio escribir.
func (s *Snapshot) Save(path string) error {
	raw, err := bson.Marshal(s)
	if err != nil {
		return fmt.Errorf("serializando snapshot: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// LoadSnapshot lee y deserializa el snapshot, reconstruyendo los índices
// id→fila/columna que no viajan en BSON.
func LoadSnapshot(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Snapshot
	if err := bson.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("deserializando snapshot: %w", err)
	}
	if s.Matrix == nil || s.Similarity == nil {
		return nil, fmt.Errorf("snapshot incompleto en %s: falta matriz o similitud", path)
	}

	s.Matrix.reindex()
	s.Similarity.reindex()
	return &s, nil
}
