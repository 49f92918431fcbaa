package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"PanganPulse/internal/domain/models"
)

func writeBundle(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write bundle: %v", err)
	}
}

func TestFSStoreLoad(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "CISOKA__BERAS__ws3.json", `{
		"pasar": "CISOKA", "komoditas": "BERAS", "window_size": 3,
		"scaler": {"min": 10000, "max": 20000},
		"model": {"weights": [0.1, 0.3, 0.6], "bias": 0.01},
		"mae": 120.5, "rmse": 150.25
	}`)

	store := NewFSStore(dir)
	art, err := store.Load(context.Background(), "CISOKA", "BERAS", 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if art.WindowSize != 3 {
		t.Fatalf("unexpected window size %d", art.WindowSize)
	}
	if art.MAE == nil || *art.MAE != 120.5 {
		t.Fatalf("unexpected mae %v", art.MAE)
	}
	if art.RMSE == nil || *art.RMSE != 150.25 {
		t.Fatalf("unexpected rmse %v", art.RMSE)
	}
}

func TestFSStoreMissingArtifact(t *testing.T) {
	store := NewFSStore(t.TempDir())
	_, err := store.Load(context.Background(), "CISOKA", "GARAM", 30)
	if !errors.Is(err, ErrArtifactNotFound) {
		t.Fatalf("expected ErrArtifactNotFound, got %v", err)
	}
}

func TestFSStoreKeySanitization(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "SEPATAN__TEPUNG_SEGITIGA_BIRU_KW_MEDIUM__ws2.json", `{
		"window_size": 2,
		"scaler": {"min": 0, "max": 1},
		"model": {"weights": [0.5, 0.5], "bias": 0}
	}`)

	store := NewFSStore(dir)
	if _, err := store.Load(context.Background(), "Sepatan", "TEPUNG SEGITIGA BIRU (KW MEDIUM)", 2); err != nil {
		t.Fatalf("load with sanitized key: %v", err)
	}
}

func TestFSStoreWeightMismatch(t *testing.T) {
	dir := t.TempDir()
	writeBundle(t, dir, "CISOKA__BERAS__ws3.json", `{
		"window_size": 3,
		"scaler": {"min": 0, "max": 1},
		"model": {"weights": [0.5, 0.5], "bias": 0}
	}`)

	store := NewFSStore(dir)
	if _, err := store.Load(context.Background(), "CISOKA", "BERAS", 3); err == nil {
		t.Fatalf("expected weight mismatch error")
	}
}

type countingStore struct {
	calls int64
}

func (s *countingStore) Load(_ context.Context, market, commodity string, windowSize int) (*models.ForecastArtifact, error) {
	atomic.AddInt64(&s.calls, 1)
	return &models.ForecastArtifact{Market: market, Commodity: commodity, WindowSize: windowSize}, nil
}

func TestLoaderLoadsOncePerKey(t *testing.T) {
	store := &countingStore{}
	loader := NewLoader(store)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := loader.Load(context.Background(), "CISOKA", "BERAS", 30); err != nil {
				t.Errorf("load: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt64(&store.calls); got != 1 {
		t.Fatalf("expected 1 underlying load, got %d", got)
	}

	if _, err := loader.Load(context.Background(), "SEPATAN", "BERAS", 30); err != nil {
		t.Fatalf("load second key: %v", err)
	}
	if got := atomic.LoadInt64(&store.calls); got != 2 {
		t.Fatalf("expected 2 underlying loads, got %d", got)
	}
}

func TestMinMaxScalerRoundTrip(t *testing.T) {
	s := &MinMaxScaler{Min: 10000, Max: 20000}
	if got := s.Transform(15000); got != 0.5 {
		t.Fatalf("Transform = %v", got)
	}
	if got := s.Inverse(0.5); got != 15000 {
		t.Fatalf("Inverse = %v", got)
	}

	// degenerate fit must not divide by zero
	flat := &MinMaxScaler{Min: 5, Max: 5}
	if got := flat.Inverse(flat.Transform(5)); got != 5 {
		t.Fatalf("degenerate round trip = %v", got)
	}
}

func TestLinearModelPredict(t *testing.T) {
	m := &LinearModel{Weights: []float64{0.25, 0.25, 0.5}, Bias: 0.1}
	got := m.Predict([]float64{1, 1, 1})
	if got != 1.1 {
		t.Fatalf("Predict = %v", got)
	}
}
