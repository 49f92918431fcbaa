package repository

import (
	"context"
	"sort"
	"sync"

	"PanganPulse/internal/dataset"
	"PanganPulse/internal/domain/models"
	"PanganPulse/internal/domain/repository"
)

// MemoryPriceStore is an in-process PriceStore for the CSV-backed mode.
// It is seeded from a normalized snapshot and accepts live inserts.
type MemoryPriceStore struct {
	mu      sync.RWMutex
	records []models.PriceRecord
}

// NewMemoryPriceStore creates memory storage seeded with records.
func NewMemoryPriceStore(seed []models.PriceRecord) *MemoryPriceStore {
	s := &MemoryPriceStore{records: make([]models.PriceRecord, len(seed))}
	copy(s.records, seed)
	s.sortLocked()
	return s
}

// NewMemoryPriceStoreFromCSV loads, normalizes and seeds from a CSV export.
func NewMemoryPriceStoreFromCSV(path string) (*MemoryPriceStore, error) {
	recs, err := dataset.LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return NewMemoryPriceStore(recs), nil
}

// sortLocked keeps records in canonical (date, commodity, market) order.
// Callers must hold mu.
func (s *MemoryPriceStore) sortLocked() {
	sort.SliceStable(s.records, func(i, j int) bool {
		a, b := s.records[i], s.records[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.Commodity != b.Commodity {
			return a.Commodity < b.Commodity
		}
		return a.Market < b.Market
	})
}

func (s *MemoryPriceStore) Store(_ context.Context, rec models.PriceRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	s.sortLocked()
	return nil
}

func (s *MemoryPriceStore) StoreBatch(_ context.Context, recs []models.PriceRecord) error {
	if len(recs) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, recs...)
	s.sortLocked()
	return nil
}

func (s *MemoryPriceStore) History(_ context.Context, market, commodity string, limit int) (models.PriceSeries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var series models.PriceSeries
	for _, r := range s.records {
		if r.Market == market && r.Commodity == commodity {
			series = append(series, r)
		}
	}
	if limit > 0 && len(series) > limit {
		series = series[len(series)-limit:]
	}
	return series, nil
}

func (s *MemoryPriceStore) Markets(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.records {
		if _, ok := seen[r.Market]; ok {
			continue
		}
		seen[r.Market] = struct{}{}
		out = append(out, r.Market)
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryPriceStore) Commodities(_ context.Context, market string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var out []string
	for _, r := range s.records {
		if market != "" && r.Market != market {
			continue
		}
		if _, ok := seen[r.Commodity]; ok {
			continue
		}
		seen[r.Commodity] = struct{}{}
		out = append(out, r.Commodity)
	}
	sort.Strings(out)
	return out, nil
}

func (s *MemoryPriceStore) Health(_ context.Context) error {
	return nil
}

func (s *MemoryPriceStore) Close() error {
	return nil
}

var _ repository.PriceStore = (*MemoryPriceStore)(nil)
