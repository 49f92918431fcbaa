package repository

import (
	"context"

	"PanganPulse/internal/domain/models"
)

// PriceStore persists and serves canonical daily price records.
type PriceStore interface {
	Store(ctx context.Context, rec models.PriceRecord) error
	StoreBatch(ctx context.Context, recs []models.PriceRecord) error
	History(ctx context.Context, market, commodity string, limit int) (models.PriceSeries, error)
	Markets(ctx context.Context) ([]string, error)
	Commodities(ctx context.Context, market string) ([]string, error)
	Health(ctx context.Context) error
	Close() error
}

// Metrics abstracts operational metrics recording.
type Metrics interface {
	RecordForecast(market, commodity string)
	RecordStored(market string, n int)
	RecordError(kind string)
	RecordLastPrice(market, commodity string, price float64)
	RecordLatency(op string, seconds float64)
}

// PriceBroadcaster pushes newly ingested records to live subscribers.
type PriceBroadcaster interface {
	Broadcast(rec models.PriceRecord)
}
