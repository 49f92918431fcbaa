package artifact

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"PanganPulse/internal/domain/models"
	"PanganPulse/internal/domain/service"
)

// ErrArtifactNotFound means no trained model exists for the requested key.
// Callers treat this as "forecasting unavailable", never as a fault.
var ErrArtifactNotFound = errors.New("artifact: not found")

// bundle is the on-disk JSON format exported by the training pipeline.
type bundle struct {
	Market     string   `json:"pasar"`
	Commodity  string   `json:"komoditas"`
	WindowSize int      `json:"window_size"`
	Scaler     struct {
		Min float64 `json:"min"`
		Max float64 `json:"max"`
	} `json:"scaler"`
	Model struct {
		Weights []float64 `json:"weights"`
		Bias    float64   `json:"bias"`
	} `json:"model"`
	MAE  *float64 `json:"mae,omitempty"`
	RMSE *float64 `json:"rmse,omitempty"`
}

// FSStore loads forecast artifacts from JSON bundles on the filesystem,
// one file per (market, commodity, windowSize) key.
type FSStore struct {
	dir string
}

// NewFSStore creates a filesystem artifact store rooted at dir.
func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

var keySanitizer = regexp.MustCompile(`[^A-Z0-9]+`)

// fileKey builds the artifact file name for a key, e.g.
// "CISOKA__BERAS_MEDIUM__ws30.json".
func fileKey(market, commodity string, windowSize int) string {
	clean := func(s string) string {
		s = strings.ToUpper(strings.TrimSpace(s))
		s = keySanitizer.ReplaceAllString(s, "_")
		return strings.Trim(s, "_")
	}
	return fmt.Sprintf("%s__%s__ws%d.json", clean(market), clean(commodity), windowSize)
}

// Load resolves a key to an artifact. Returns ErrArtifactNotFound when no
// bundle file exists for the key.
func (s *FSStore) Load(_ context.Context, market, commodity string, windowSize int) (*models.ForecastArtifact, error) {
	path := filepath.Join(s.dir, fileKey(market, commodity, windowSize))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrArtifactNotFound
		}
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}

	var b bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse artifact %s: %w", path, err)
	}

	if b.WindowSize <= 0 {
		b.WindowSize = windowSize
	}
	if len(b.Model.Weights) != b.WindowSize {
		return nil, fmt.Errorf("artifact %s: %d weights for window size %d", path, len(b.Model.Weights), b.WindowSize)
	}

	return &models.ForecastArtifact{
		Market:     market,
		Commodity:  commodity,
		WindowSize: b.WindowSize,
		Model:      &LinearModel{Weights: b.Model.Weights, Bias: b.Model.Bias},
		Scaler:     &MinMaxScaler{Min: b.Scaler.Min, Max: b.Scaler.Max},
		MAE:        b.MAE,
		RMSE:       b.RMSE,
	}, nil
}

var _ service.ArtifactStore = (*FSStore)(nil)
