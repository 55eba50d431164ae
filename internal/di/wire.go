//go:build wireinject
// +build wireinject

package di

import (
	"Screener/pkg/config"
	"Screener/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient services
		ProvideLogger,
		ProvideMetrics,

		// Configuration resolution
		ProvideConfigStore,
		ProvideLoader,
		ProvideResolver,
		ProvideCompiler,

		// Providers and optional infrastructure
		ProvideAdapters,
		ProvideCacheService,
		ProvideKafkaProducer,
		ProvideResultPublisher,

		// Use case and HTTP surface
		ProvideScreener,
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
