package di

import (
	"fmt"

	"Screener/internal/domain/models"
	"Screener/internal/domain/repository"
	"Screener/internal/handler/api"
	internalrepo "Screener/internal/repository"
	"Screener/internal/service/compiler"
	"Screener/internal/service/configfile"
	"Screener/internal/service/configstore"
	"Screener/internal/service/resolver"
	"Screener/internal/usecase"
	"Screener/pkg/cache"
	"Screener/pkg/config"
	xhttp "Screener/pkg/http"
	pkgkafka "Screener/pkg/kafka"
	applogger "Screener/pkg/logger"
	"Screener/pkg/metrics"
	"Screener/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideConfigStore creates the store preloaded with built-in configurations.
func ProvideConfigStore() (*configstore.Store, error) {
	store, err := configstore.NewBuiltin()
	if err != nil {
		return nil, fmt.Errorf("config store: %w", err)
	}
	return store, nil
}

// ProvideLoader creates the external configuration file loader.
func ProvideLoader() *configfile.Loader {
	return configfile.New()
}

// ProvideResolver creates the configuration resolver.
func ProvideResolver(store *configstore.Store, loader *configfile.Loader) *resolver.Resolver {
	return resolver.New(store, loader)
}

// ProvideCompiler creates the filter compiler.
func ProvideCompiler() *compiler.Compiler {
	return compiler.New()
}

// ProvideAdapters registers provider adapters. TradingView providers have
// no local adapter; running their configs requires an external executor.
func ProvideAdapters() map[models.Provider]repository.ProviderAdapter {
	finviz := internalrepo.NewFinvizStaticAdapter()
	return map[models.Provider]repository.ProviderAdapter{
		finviz.Name(): finviz,
	}
}

// ProvideCacheService creates the cache backend selected by config.
// Returns nil when caching is disabled.
func ProvideCacheService(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryCache(), nil
	case "redis":
		return newRedisCache(cfg)
	case "layered":
		rc, err := newRedisCache(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewLayeredCache(rc), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

func newRedisCache(cfg *config.Config) (*cache.RedisCache, error) {
	rc, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return rc, nil
}

// ProvideKafkaProducer creates a Kafka producer. Returns nil when
// publishing is disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideResultPublisher creates the Kafka result publisher, or nil when
// no producer is configured.
func ProvideResultPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaResultPublisher(producer, cfg.Kafka.Topic)
}

// ProvideScreener creates the screening use case with optional cache and
// publisher wiring.
func ProvideScreener(
	res *resolver.Resolver,
	comp *compiler.Compiler,
	store *configstore.Store,
	adapters map[models.Provider]repository.ProviderAdapter,
	m repository.Metrics,
	logger *applogger.Logger,
	cacheSvc cache.Service,
	publisher repository.Publisher,
	cfg *config.Config,
) *usecase.Screener {
	var opts []usecase.Option
	if cacheSvc != nil {
		opts = append(opts, usecase.WithResultCache(internalrepo.NewCacheResultStore(cacheSvc), cfg.Cache.TTL))
	}
	if publisher != nil {
		opts = append(opts, usecase.WithPublisher(publisher))
	}
	return usecase.NewScreener(res, comp, store, adapters, m, logger, opts...)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(logger *applogger.Logger, screener *usecase.Screener) xhttp.Handler {
	return api.NewScreenerEchoHandler(logger, screener)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	publisher repository.Publisher,
) *server.App {
	return server.New(cfg, logger, handler, publisher)
}
