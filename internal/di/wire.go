//go:build wireinject
// +build wireinject

package di

import (
	"PanganPulse/pkg/config"
	"PanganPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideCache,

		// Repositories
		ProvidePriceStore,
		ProvideArtifactStore,

		// Use cases
		ProvideForecaster,
		ProvideForecastService,
		ProvideKafkaConsumer,
		ProvideKafkaPricesHandler,

		// HTTP surface
		ProvideStreamHandler,
		ProvideHTTPHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
