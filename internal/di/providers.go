package di

import (
	"context"
	"fmt"
	"time"

	"PanganPulse/internal/artifact"
	"PanganPulse/internal/domain/repository"
	"PanganPulse/internal/domain/service"
	"PanganPulse/internal/forecast"
	"PanganPulse/internal/handler/api"
	internalrepo "PanganPulse/internal/repository"
	"PanganPulse/internal/usecase"
	"PanganPulse/pkg/cache"
	pkgch "PanganPulse/pkg/clickhouse"
	"PanganPulse/pkg/config"
	xhttp "PanganPulse/pkg/http"
	pkgkafka "PanganPulse/pkg/kafka"
	"PanganPulse/pkg/logger"
	"PanganPulse/pkg/metrics"
	"PanganPulse/pkg/server"
)

const priceTable = "daily_prices"

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client with schema applied.
// Returns nil for the CSV backend.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Dataset.Backend != "clickhouse" {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.InitSchema(ctx, internalrepo.Schema(priceTable)); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return client, nil
}

// ProvidePriceStore creates price storage for the configured backend.
func ProvidePriceStore(cfg *config.Config, chClient *pkgch.Client) (repository.PriceStore, error) {
	switch cfg.Dataset.Backend {
	case "clickhouse":
		return internalrepo.NewClickHousePriceStore(chClient.DB(), priceTable), nil
	default:
		store, err := internalrepo.NewMemoryPriceStoreFromCSV(cfg.Dataset.CSVPath)
		if err != nil {
			return nil, fmt.Errorf("load csv dataset: %w", err)
		}
		return store, nil
	}
}

// ProvideCache creates the response cache: layered Redis plus memory when
// Redis is configured, memory only otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
		cache.WithRedisPrefix(cfg.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(redisCache), nil
}

// ProvideArtifactStore creates the memoizing filesystem artifact loader.
func ProvideArtifactStore(cfg *config.Config) service.ArtifactStore {
	return artifact.NewLoader(artifact.NewFSStore(cfg.Artifacts.Dir))
}

// ProvideForecaster creates the recursive forecaster.
func ProvideForecaster() service.Forecaster {
	return forecast.NewRecursive()
}

// ProvideForecastService creates the forecasting pipeline use case.
func ProvideForecastService(
	store repository.PriceStore,
	artifacts service.ArtifactStore,
	forecaster service.Forecaster,
	cacheSvc cache.Service,
	m repository.Metrics,
	log *logger.Logger,
	cfg *config.Config,
) *usecase.ForecastService {
	return usecase.NewForecastService(store, artifacts, forecaster, cacheSvc, m, log, usecase.ForecastOptions{
		WindowSize:      cfg.Artifacts.WindowSize,
		AnalysisHorizon: cfg.Forecast.AnalysisHorizon,
		CacheTTL:        cfg.Forecast.CacheTTL,
	})
}

// ProvideStreamHandler creates the websocket price stream hub.
func ProvideStreamHandler(log *logger.Logger) *api.PriceStreamHandler {
	return api.NewPriceStreamHandler(log)
}

// ProvideHTTPHandler combines REST and websocket routes.
func ProvideHTTPHandler(log *logger.Logger, svc *usecase.ForecastService, stream *api.PriceStreamHandler) xhttp.Handler {
	return api.NewRouter(api.NewPricesEchoHandler(log, svc), stream)
}

// ProvideKafkaConsumer creates a Kafka consumer, or nil when disabled.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.RetryMax, cfg.Kafka.BackoffMin, cfg.Kafka.BackoffMax),
		pkgkafka.WithConsumerFetch(cfg.Kafka.MinBytes, cfg.Kafka.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideKafkaPricesHandler registers the price ingestion handler.
func ProvideKafkaPricesHandler(
	cfg *config.Config,
	store repository.PriceStore,
	stream *api.PriceStreamHandler,
	m repository.Metrics,
	log *logger.Logger,
) *usecase.KafkaPricesHandler {
	return usecase.NewKafkaPricesHandler(cfg.Kafka.Topic, store, stream, m, log)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *logger.Logger,
	handler xhttp.Handler,
	consumer *pkgkafka.Consumer,
	kh *usecase.KafkaPricesHandler,
	store repository.PriceStore,
	cacheSvc cache.Service,
	chClient *pkgch.Client,
) *server.App {
	return server.New(cfg, log, handler, consumer, kh, store, cacheSvc, chClient)
}
