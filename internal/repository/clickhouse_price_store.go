package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"PanganPulse/internal/domain/models"
	"PanganPulse/internal/domain/repository"
)

// Schema returns the idempotent DDL for the daily price table. Duplicate
// (date, market, commodity) rows collapse to the most recently ingested one.
func Schema(table string) []string {
	return []string{fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	date Date,
	market String,
	commodity String,
	price Float64,
	ingested_at DateTime DEFAULT now()
) ENGINE = ReplacingMergeTree(ingested_at)
ORDER BY (market, commodity, date)`, table)}
}

// ClickHousePriceStore implements PriceStore on ClickHouse.
type ClickHousePriceStore struct {
	db    *sql.DB
	table string
}

// NewClickHousePriceStore creates ClickHouse-backed price storage.
func NewClickHousePriceStore(db *sql.DB, table string) repository.PriceStore {
	return &ClickHousePriceStore{db: db, table: table}
}

func (s *ClickHousePriceStore) Store(ctx context.Context, rec models.PriceRecord) error {
	q := fmt.Sprintf("INSERT INTO %s (date, market, commodity, price) VALUES (?, ?, ?, ?)", s.table)
	_, err := s.db.ExecContext(ctx, q, rec.Date, rec.Market, rec.Commodity, rec.Price)
	return err
}

func (s *ClickHousePriceStore) StoreBatch(ctx context.Context, recs []models.PriceRecord) error {
	if len(recs) == 0 {
		return nil
	}
	const chunkSize = 2000
	for start := 0; start < len(recs); start += chunkSize {
		end := start + chunkSize
		if end > len(recs) {
			end = len(recs)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*4)
		for _, r := range recs[start:end] {
			if r.Date.IsZero() {
				continue
			}
			values = append(values, "(?, ?, ?, ?)")
			args = append(args, r.Date, r.Market, r.Commodity, r.Price)
		}
		if len(values) == 0 {
			continue
		}
		q := fmt.Sprintf("INSERT INTO %s (date, market, commodity, price) VALUES %s", s.table, strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return nil
}

// History returns the trailing limit observations in ascending date order.
func (s *ClickHousePriceStore) History(ctx context.Context, market, commodity string, limit int) (models.PriceSeries, error) {
	q := fmt.Sprintf(`SELECT date, market, commodity, price FROM %s FINAL
WHERE market = ? AND commodity = ?
ORDER BY date DESC LIMIT ?`, s.table)
	rows, err := s.db.QueryContext(ctx, q, market, commodity, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series models.PriceSeries
	for rows.Next() {
		var r models.PriceRecord
		var d time.Time
		if err := rows.Scan(&d, &r.Market, &r.Commodity, &r.Price); err != nil {
			return nil, err
		}
		r.Date = d.UTC()
		series = append(series, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// query is newest-first for the LIMIT, callers want chronological
	for i, j := 0, len(series)-1; i < j; i, j = i+1, j-1 {
		series[i], series[j] = series[j], series[i]
	}
	return series, nil
}

func (s *ClickHousePriceStore) Markets(ctx context.Context) ([]string, error) {
	q := fmt.Sprintf("SELECT DISTINCT market FROM %s ORDER BY market", s.table)
	return s.queryStrings(ctx, q)
}

func (s *ClickHousePriceStore) Commodities(ctx context.Context, market string) ([]string, error) {
	if market == "" {
		q := fmt.Sprintf("SELECT DISTINCT commodity FROM %s ORDER BY commodity", s.table)
		return s.queryStrings(ctx, q)
	}
	q := fmt.Sprintf("SELECT DISTINCT commodity FROM %s WHERE market = ? ORDER BY commodity", s.table)
	return s.queryStrings(ctx, q, market)
}

func (s *ClickHousePriceStore) queryStrings(ctx context.Context, q string, args ...interface{}) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *ClickHousePriceStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHousePriceStore) Close() error {
	return nil // pool managed by pkg client
}
