package forecast

import (
	"errors"
	"math"
	"testing"
	"time"

	"PanganPulse/internal/artifact"
	"PanganPulse/internal/domain/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func series(prices ...float64) models.PriceSeries {
	s := make(models.PriceSeries, len(prices))
	for i, p := range prices {
		s[i] = models.PriceRecord{Date: day(i + 1), Commodity: "BERAS", Market: "CISOKA", Price: p}
	}
	return s
}

// identity-ish artifact: weights select the newest window value, so each
// prediction repeats the last price and the chain stays flat.
func lastValueArtifact(windowSize int) *models.ForecastArtifact {
	weights := make([]float64, windowSize)
	weights[windowSize-1] = 1
	return &models.ForecastArtifact{
		Market:     "CISOKA",
		Commodity:  "BERAS",
		WindowSize: windowSize,
		Model:      &artifact.LinearModel{Weights: weights},
		Scaler:     &artifact.MinMaxScaler{Min: 10000, Max: 20000},
	}
}

func TestForecastLengthAndDates(t *testing.T) {
	art := lastValueArtifact(3)
	hist := series(14000, 14100, 14200, 14300, 14400)

	got, err := NewRecursive().Forecast(art, hist, 7)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	if len(got) != 7 {
		t.Fatalf("expected 7 points, got %d", len(got))
	}
	want := hist.LastDate().AddDate(0, 0, 1)
	for i, p := range got {
		if !p.Date.Equal(want) {
			t.Fatalf("point %d: date %v, want %v", i, p.Date, want)
		}
		want = want.AddDate(0, 0, 1)
	}
}

func TestForecastRecursiveFeedback(t *testing.T) {
	art := lastValueArtifact(3)
	hist := series(14000, 14100, 14200)

	got, err := NewRecursive().Forecast(art, hist, 5)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	// last-value model: every step repeats the final historical price
	for i, p := range got {
		if math.Abs(p.PredictedPrice-14200) > 1e-9 {
			t.Fatalf("point %d: price %v, want 14200", i, p.PredictedPrice)
		}
	}
}

func TestForecastSlidesWindowChronologically(t *testing.T) {
	// weights select the OLDEST window value: first two predictions replay
	// the seed window head, proving chronological ordering and the slide.
	art := &models.ForecastArtifact{
		WindowSize: 2,
		Model:      &artifact.LinearModel{Weights: []float64{1, 0}},
		Scaler:     &artifact.MinMaxScaler{Min: 0, Max: 1},
	}
	hist := series(0.2, 0.8)

	got, err := NewRecursive().Forecast(art, hist, 3)
	if err != nil {
		t.Fatalf("forecast: %v", err)
	}
	wantPrices := []float64{0.2, 0.8, 0.2}
	for i, w := range wantPrices {
		if math.Abs(got[i].PredictedPrice-w) > 1e-9 {
			t.Fatalf("point %d: price %v, want %v", i, got[i].PredictedPrice, w)
		}
	}
}

func TestForecastInsufficientHistory(t *testing.T) {
	art := lastValueArtifact(30)
	_, err := NewRecursive().Forecast(art, series(14000, 14100), 7)
	if !errors.Is(err, ErrInsufficientHistory) {
		t.Fatalf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestForecastInvalidHorizon(t *testing.T) {
	art := lastValueArtifact(2)
	if _, err := NewRecursive().Forecast(art, series(14000, 14100), 0); err == nil {
		t.Fatalf("expected error for zero horizon")
	}
}
