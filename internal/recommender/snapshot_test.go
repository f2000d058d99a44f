package recommender

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mohamediliasskaddar/RENTOPIA/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ratings := popularityFixture()
	props := []models.PropertyDoc{
		{PropertyID: 1, Surface: 85, Rooms: 3, AmenitiesCount: 8, AvgRating: 4.4, OccupancyRate: 0.72, PricePerNightEUR: 420, PricePerNightETH: 0.12},
	}
	snap := Train(ratings, props, TrainOptions{Optimize: true})

	path := filepath.Join(t.TempDir(), "recommendation_model.bson")
	if err := snap.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadSnapshot(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.SimilarityMetric != MetricCosine {
		t.Errorf("métrica = %q", loaded.SimilarityMetric)
	}
	if !loaded.Optimized {
		t.Error("flag optimized se perdió en el round-trip")
	}

	// los índices reconstruidos tienen que dar las mismas respuestas
	before := NewEngine(snap)
	after := NewEngine(loaded)

	wantPop, _ := before.PopularProperties(3)
	gotPop, _ := after.PopularProperties(3)
	if !reflect.DeepEqual(wantPop, gotPop) {
		t.Errorf("popular cambió tras recargar: %v vs %v", gotPop, wantPop)
	}

	wantSim, _ := before.SimilarProperties(1, 3)
	gotSim, _ := after.SimilarProperties(1, 3)
	if !reflect.DeepEqual(wantSim, gotSim) {
		t.Errorf("similar cambió tras recargar: %v vs %v", gotSim, wantSim)
	}

	if loaded.Matrix.At(100, 1) != snap.Matrix.At(100, 1) {
		t.Error("la matriz perdió celdas en el round-trip")
	}
}

func TestLoadSnapshotMissingFile(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "no-existe.bson"))
	if err == nil {
		t.Fatal("esperaba error con archivo inexistente")
	}
	if !os.IsNotExist(err) {
		t.Errorf("err = %v, quería not-exist", err)
	}
}

func TestLoadSnapshotIncompleteDocument(t *testing.T) {
	// BSON válido pero sin matriz ni similitud: cargar eso no puede
	// devolver un snapshot que luego reviente al motor
	path := filepath.Join(t.TempDir(), "vacio.bson")
	raw, err := bson.Marshal(bson.M{"similarityMetric": MetricCosine})
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadSnapshot(path); err == nil {
		t.Fatal("esperaba error con snapshot sin matriz")
	}

	eng := LoadEngine(path)
	if eng.Ready() {
		t.Error("el motor debe quedar no disponible con un snapshot incompleto")
	}
}

func TestSaveIsAtomic(t *testing.T) {
	snap := Train(popularityFixture(), nil, TrainOptions{})
	dir := t.TempDir()
	path := filepath.Join(dir, "model.bson")

	if err := snap.Save(path); err != nil {
		t.Fatal(err)
	}
	// el tmp intermedio no debe quedar tirado
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("quedó el archivo temporal: %v", err)
	}
}
