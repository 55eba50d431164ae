package repository

import (
	"context"
	"time"

	"Screener/internal/domain/models"
)

// ProviderAdapter executes a compiled query against a remote screening
// service and returns raw rows in provider order. Adapters own transport,
// auth and rate limiting; the core never retries them.
type ProviderAdapter interface {
	Name() models.Provider
	Scan(ctx context.Context, query *models.ProviderQuery) ([]models.Row, error)
}

// Publisher delivers completed screening results to an external sink.
type Publisher interface {
	PublishResult(ctx context.Context, res *models.ScreeningResult) error
	Close() error
}

// ResultCache memoizes screening results for a short TTL.
type ResultCache interface {
	Get(ctx context.Context, key string) (*models.ScreeningResult, bool)
	Set(ctx context.Context, key string, res *models.ScreeningResult, ttl time.Duration)
}

// Metrics records screening telemetry.
type Metrics interface {
	RecordScreening(provider, config string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordResultRows(provider, config string, n int)
}
