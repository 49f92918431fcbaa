package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"PanganPulse/internal/advisory"
	"PanganPulse/internal/artifact"
	"PanganPulse/internal/dataset"
	"PanganPulse/internal/forecast"
	"PanganPulse/internal/domain/models"
	domrepo "PanganPulse/internal/domain/repository"
	"PanganPulse/internal/domain/service"
	"PanganPulse/pkg/cache"
	"PanganPulse/pkg/logger"
)

// ForecastOptions carries the tunables of the forecasting pipeline.
type ForecastOptions struct {
	WindowSize      int
	AnalysisHorizon int
	CacheTTL        time.Duration
}

// ForecastService composes the forecasting pipeline: price history, trained
// artifact, recursive forecast, assessment and advisory text. Forecast
// outputs are deterministic per input, so responses are cached per
// (market, commodity, days) key.
type ForecastService struct {
	store      domrepo.PriceStore
	artifacts  service.ArtifactStore
	forecaster service.Forecaster
	cache      cache.Service
	metrics    domrepo.Metrics
	log        *logger.Logger
	opts       ForecastOptions
}

func NewForecastService(
	store domrepo.PriceStore,
	artifacts service.ArtifactStore,
	forecaster service.Forecaster,
	cacheSvc cache.Service,
	metrics domrepo.Metrics,
	log *logger.Logger,
	opts ForecastOptions,
) *ForecastService {
	if opts.WindowSize <= 0 {
		opts.WindowSize = 30
	}
	if opts.AnalysisHorizon <= 0 {
		opts.AnalysisHorizon = 7
	}
	return &ForecastService{
		store:      store,
		artifacts:  artifacts,
		forecaster: forecaster,
		cache:      cacheSvc,
		metrics:    metrics,
		log:        log,
		opts:       opts,
	}
}

func (s *ForecastService) Markets(ctx context.Context) ([]string, error) {
	return s.store.Markets(ctx)
}

// Commodities lists the distinct commodities of a market with their
// dashboard categories.
func (s *ForecastService) Commodities(ctx context.Context, market string) ([]models.CommodityInfo, error) {
	names, err := s.store.Commodities(ctx, dataset.CanonicalMarket(market))
	if err != nil {
		return nil, err
	}
	out := make([]models.CommodityInfo, len(names))
	for i, name := range names {
		out[i] = models.CommodityInfo{Name: name, Category: dataset.CategorizeCommodity(name)}
	}
	return out, nil
}

// Prices returns the trailing price history of one series, oldest first.
func (s *ForecastService) Prices(ctx context.Context, market, commodity string, limit int) (models.PriceSeries, error) {
	market = dataset.CanonicalMarket(market)
	commodity = dataset.CanonicalCommodity(commodity)
	return s.store.History(ctx, market, commodity, limit)
}

// Forecast produces days daily predictions for one series.
func (s *ForecastService) Forecast(ctx context.Context, market, commodity string, days int) (*models.ForecastResponse, error) {
	market = dataset.CanonicalMarket(market)
	commodity = dataset.CanonicalCommodity(commodity)

	key := cache.Key("forecast", market, commodity, days)
	var cached models.ForecastResponse
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	start := time.Now()
	art, fc, err := s.run(ctx, market, commodity, days)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordForecast(market, commodity)
	s.metrics.RecordLatency("forecast", time.Since(start).Seconds())

	resp := &models.ForecastResponse{
		Market:    market,
		Commodity: commodity,
		Days:      days,
		Points:    fc,
		MAE:       art.MAE,
		RMSE:      art.RMSE,
	}
	s.cacheSet(ctx, key, resp)
	return resp, nil
}

// Advisory produces the assessment figures and policy recommendation text.
func (s *ForecastService) Advisory(ctx context.Context, market, commodity string, days, horizon int) (*models.AdvisoryResponse, error) {
	market = dataset.CanonicalMarket(market)
	commodity = dataset.CanonicalCommodity(commodity)
	if horizon <= 0 {
		horizon = s.opts.AnalysisHorizon
	}

	key := cache.Key("advisory", market, commodity, days, horizon)
	var cached models.AdvisoryResponse
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	history, err := s.history(ctx, market, commodity)
	if err != nil {
		return nil, err
	}

	_, fc, err := s.run(ctx, market, commodity, days)
	if err != nil {
		// no model or not enough data: the dashboard still renders the
		// advisory panel, with the fixed "not available" line
		if errors.Is(err, artifact.ErrArtifactNotFound) || errors.Is(err, forecast.ErrInsufficientHistory) {
			return &models.AdvisoryResponse{
				Market:    market,
				Commodity: commodity,
				Lines:     advisory.Advise(nil, nil, horizon),
			}, nil
		}
		return nil, err
	}

	assessment := advisory.Assess(history, fc, horizon)
	resp := &models.AdvisoryResponse{
		Market:     market,
		Commodity:  commodity,
		Assessment: &assessment,
		Lines:      advisory.Advise(history, fc, horizon),
	}
	s.cacheSet(ctx, key, resp)
	return resp, nil
}

// Badge produces the compact trend and volatility labels.
func (s *ForecastService) Badge(ctx context.Context, market, commodity string, days int) (*models.BadgeResponse, error) {
	market = dataset.CanonicalMarket(market)
	commodity = dataset.CanonicalCommodity(commodity)

	key := cache.Key("badge", market, commodity, days)
	var cached models.BadgeResponse
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	history, err := s.history(ctx, market, commodity)
	if err != nil {
		return nil, err
	}
	_, fc, err := s.run(ctx, market, commodity, days)
	if err != nil {
		return nil, err
	}

	assessment := advisory.Assess(history, fc, s.opts.AnalysisHorizon)
	resp := &models.BadgeResponse{
		Market:    market,
		Commodity: commodity,
		Badge:     advisory.ClassifyBadge(assessment, fc),
	}
	s.cacheSet(ctx, key, resp)
	return resp, nil
}

// run loads the artifact and history for a canonical key and forecasts.
func (s *ForecastService) run(ctx context.Context, market, commodity string, days int) (*models.ForecastArtifact, models.Forecast, error) {
	art, err := s.artifacts.Load(ctx, market, commodity, s.opts.WindowSize)
	if err != nil {
		s.metrics.RecordError("artifact_load")
		return nil, nil, fmt.Errorf("load artifact %s/%s: %w", market, commodity, err)
	}

	history, err := s.history(ctx, market, commodity)
	if err != nil {
		return nil, nil, err
	}

	fc, err := s.forecaster.Forecast(art, history, days)
	if err != nil {
		s.metrics.RecordError("forecast")
		return nil, nil, fmt.Errorf("forecast %s/%s: %w", market, commodity, err)
	}
	return art, fc, nil
}

func (s *ForecastService) history(ctx context.Context, market, commodity string) (models.PriceSeries, error) {
	history, err := s.store.History(ctx, market, commodity, s.opts.WindowSize)
	if err != nil {
		s.metrics.RecordError("history")
		return nil, fmt.Errorf("load history %s/%s: %w", market, commodity, err)
	}
	return history, nil
}

func (s *ForecastService) cacheGet(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Debug("cache get failed", logger.String("key", key), logger.Error(err))
	}
	return false
}

func (s *ForecastService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.cache == nil || s.opts.CacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.opts.CacheTTL); err != nil {
		s.log.Debug("cache set failed", logger.String("key", key), logger.Error(err))
	}
}
