package service

import (
	"context"

	"PanganPulse/internal/domain/models"
)

// ArtifactStore resolves a (market, commodity, windowSize) key to a trained
// forecast artifact. Implementations return ErrArtifactNotFound (wrapped or
// direct) when no artifact matches; that is "forecasting unavailable", not
// a fault.
type ArtifactStore interface {
	Load(ctx context.Context, market, commodity string, windowSize int) (*models.ForecastArtifact, error)
}

// Forecaster produces a multi-step price forecast from a historical series
// and a trained artifact.
type Forecaster interface {
	Forecast(artifact *models.ForecastArtifact, history models.PriceSeries, horizonDays int) (models.Forecast, error)
}
