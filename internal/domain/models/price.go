package models

import "time"

// PriceRecord is one daily price observation for a commodity at a market.
// Commodity and market hold canonical (upper-trimmed, mapped) names.
type PriceRecord struct {
	Date      time.Time `json:"tanggal"`
	Commodity string    `json:"komoditas"`
	Market    string    `json:"pasar"`
	Price     float64   `json:"harga"`
}

// PriceSeries is the history of one (market, commodity) pair, ascending by date.
// Duplicate dates are kept in input row order; the last one wins downstream.
type PriceSeries []PriceRecord

// LastPrice returns the most recent price, or 0 for an empty series.
func (s PriceSeries) LastPrice() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Price
}

// LastDate returns the most recent date, or the zero time for an empty series.
func (s PriceSeries) LastDate() time.Time {
	if len(s) == 0 {
		return time.Time{}
	}
	return s[len(s)-1].Date
}

// TrailingMean returns the mean of the trailing n prices (fewer if the
// series is shorter), or 0 for an empty series.
func (s PriceSeries) TrailingMean(n int) float64 {
	if len(s) == 0 || n <= 0 {
		return 0
	}
	start := len(s) - n
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, r := range s[start:] {
		sum += r.Price
	}
	return sum / float64(len(s)-start)
}

// ForecastPoint is one predicted daily price.
type ForecastPoint struct {
	Date           time.Time `json:"tanggal"`
	PredictedPrice float64   `json:"prediksi"`
}

// Forecast is an ordered sequence of predictions on strictly consecutive
// calendar days, starting the day after the last historical date.
type Forecast []ForecastPoint

// Prices returns the predicted values in order.
func (f Forecast) Prices() []float64 {
	out := make([]float64, len(f))
	for i, p := range f {
		out[i] = p.PredictedPrice
	}
	return out
}
