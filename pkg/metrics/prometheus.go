package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	forecastsTotal *prometheus.CounterVec
	recordsStored  *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	lastPrice      *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		forecastsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "panganpulse_forecasts_total",
				Help: "Total number of forecasts produced",
			},
			[]string{"market", "commodity"},
		),
		recordsStored: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "panganpulse_price_records_stored_total",
				Help: "Total number of price records stored",
			},
			[]string{"market"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "panganpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "panganpulse_last_price",
				Help: "Last observed price for a market/commodity pair",
			},
			[]string{"market", "commodity"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "panganpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordForecast records a produced forecast.
func (r *Recorder) RecordForecast(market, commodity string) {
	r.forecastsTotal.WithLabelValues(market, commodity).Inc()
}

// RecordStored records stored price records for a market.
func (r *Recorder) RecordStored(market string, n int) {
	r.recordsStored.WithLabelValues(market).Add(float64(n))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last observed price for a series.
func (r *Recorder) RecordLastPrice(market, commodity string, price float64) {
	r.lastPrice.WithLabelValues(market, commodity).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
