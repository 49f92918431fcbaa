package forecast

import (
	"errors"
	"fmt"

	"PanganPulse/internal/domain/models"
	"PanganPulse/internal/domain/service"
)

// ErrInsufficientHistory means the series is shorter than the model's input
// window, so no forecast can be seeded.
var ErrInsufficientHistory = errors.New("forecast: insufficient history")

// Recursive predicts one day at a time and feeds each prediction back into
// the input window, so a multi-day horizon needs only a single-step model.
type Recursive struct{}

// NewRecursive creates the recursive forecaster.
func NewRecursive() *Recursive {
	return &Recursive{}
}

// Forecast produces exactly horizonDays consecutive daily predictions
// starting the day after the last historical date. The seed window is the
// trailing windowSize prices in chronological order, scaled into model space;
// each step's scaled prediction replaces the oldest window value.
func (r *Recursive) Forecast(artifact *models.ForecastArtifact, history models.PriceSeries, horizonDays int) (models.Forecast, error) {
	if artifact == nil {
		return nil, errors.New("forecast: nil artifact")
	}
	if horizonDays <= 0 {
		return nil, fmt.Errorf("forecast: invalid horizon %d", horizonDays)
	}
	if len(history) < artifact.WindowSize {
		return nil, fmt.Errorf("%w: have %d observations, need %d", ErrInsufficientHistory, len(history), artifact.WindowSize)
	}

	window := make([]float64, artifact.WindowSize)
	for i, rec := range history[len(history)-artifact.WindowSize:] {
		window[i] = artifact.Scaler.Transform(rec.Price)
	}

	out := make(models.Forecast, 0, horizonDays)
	date := history.LastDate()
	for i := 0; i < horizonDays; i++ {
		scaled := artifact.Model.Predict(window)
		date = date.AddDate(0, 0, 1)
		out = append(out, models.ForecastPoint{
			Date:           date,
			PredictedPrice: artifact.Scaler.Inverse(scaled),
		})
		copy(window, window[1:])
		window[len(window)-1] = scaled
	}
	return out, nil
}

var _ service.Forecaster = (*Recursive)(nil)
