package repository

import (
	"context"
	"reflect"
	"testing"
	"time"

	"PanganPulse/internal/domain/models"
)

func rec(day int, market, commodity string, price float64) models.PriceRecord {
	return models.PriceRecord{
		Date:      time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
		Market:    market,
		Commodity: commodity,
		Price:     price,
	}
}

func TestMemoryStoreHistoryAscendingWithLimit(t *testing.T) {
	store := NewMemoryPriceStore([]models.PriceRecord{
		rec(3, "CISOKA", "BERAS MEDIUM", 14200),
		rec(1, "CISOKA", "BERAS MEDIUM", 14000),
		rec(2, "CISOKA", "BERAS MEDIUM", 14100),
		rec(2, "SEPATAN", "BERAS MEDIUM", 13900),
	})

	got, err := store.History(context.Background(), "CISOKA", "BERAS MEDIUM", 2)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].Price != 14100 || got[1].Price != 14200 {
		t.Fatalf("expected trailing ascending records, got %+v", got)
	}
}

func TestMemoryStoreStoreKeepsOrder(t *testing.T) {
	store := NewMemoryPriceStore(nil)
	ctx := context.Background()

	if err := store.Store(ctx, rec(2, "CISOKA", "GULA PASIR", 17500)); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := store.Store(ctx, rec(1, "CISOKA", "GULA PASIR", 17000)); err != nil {
		t.Fatalf("store: %v", err)
	}

	got, err := store.History(ctx, "CISOKA", "GULA PASIR", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if got[0].Price != 17000 || got[1].Price != 17500 {
		t.Fatalf("expected chronological order, got %+v", got)
	}
}

func TestMemoryStoreMarketsAndCommodities(t *testing.T) {
	store := NewMemoryPriceStore([]models.PriceRecord{
		rec(1, "SEPATAN", "GULA PASIR", 17000),
		rec(1, "CISOKA", "BERAS MEDIUM", 14000),
		rec(2, "CISOKA", "GULA PASIR", 17100),
		rec(2, "CISOKA", "BERAS MEDIUM", 14100),
	})
	ctx := context.Background()

	markets, err := store.Markets(ctx)
	if err != nil {
		t.Fatalf("markets: %v", err)
	}
	if !reflect.DeepEqual(markets, []string{"CISOKA", "SEPATAN"}) {
		t.Fatalf("unexpected markets %v", markets)
	}

	comms, err := store.Commodities(ctx, "CISOKA")
	if err != nil {
		t.Fatalf("commodities: %v", err)
	}
	if !reflect.DeepEqual(comms, []string{"BERAS MEDIUM", "GULA PASIR"}) {
		t.Fatalf("unexpected commodities %v", comms)
	}

	all, err := store.Commodities(ctx, "")
	if err != nil {
		t.Fatalf("commodities all: %v", err)
	}
	if !reflect.DeepEqual(all, []string{"BERAS MEDIUM", "GULA PASIR"}) {
		t.Fatalf("unexpected commodities %v", all)
	}
}
