package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"Screener/internal/domain/models"
	drepo "Screener/internal/domain/repository"
	"Screener/internal/service/compiler"
	"Screener/internal/service/configstore"
	"Screener/internal/service/resolver"
	"Screener/internal/service/schema"
	xlogger "Screener/pkg/logger"
)

// ScreenRequest describes one screening invocation.
type ScreenRequest struct {
	Provider      models.Provider
	Config        string
	ExternalPath  string
	Params        string
	DisplayFields []string
	SortBy        string
	SortOrder     string
	Limit         int
}

// Screener coordinates resolution, compilation, provider execution and
// row projection. All intermediate state is per-invocation, so a single
// instance is safe for concurrent callers.
type Screener struct {
	resolver  *resolver.Resolver
	compiler  *compiler.Compiler
	store     *configstore.Store
	adapters  map[models.Provider]drepo.ProviderAdapter
	cache     drepo.ResultCache
	cacheTTL  time.Duration
	publisher drepo.Publisher
	metrics   drepo.Metrics
	logger    *xlogger.Logger
}

// Option configures optional collaborators.
type Option func(*Screener)

// WithResultCache memoizes successful results for ttl.
func WithResultCache(c drepo.ResultCache, ttl time.Duration) Option {
	return func(s *Screener) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

// WithPublisher forwards completed results to an external sink. Delivery
// failures are logged, never surfaced to the caller.
func WithPublisher(p drepo.Publisher) Option {
	return func(s *Screener) { s.publisher = p }
}

func NewScreener(
	res *resolver.Resolver,
	comp *compiler.Compiler,
	store *configstore.Store,
	adapters map[models.Provider]drepo.ProviderAdapter,
	metrics drepo.Metrics,
	logger *xlogger.Logger,
	opts ...Option,
) *Screener {
	s := &Screener{
		resolver: res,
		compiler: comp,
		store:    store,
		adapters: adapters,
		metrics:  metrics,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve exposes resolution without execution, for config inspection.
func (s *Screener) Resolve(req ScreenRequest) (models.ResolvedConfig, error) {
	return s.resolver.Resolve(resolver.Request{
		Provider:      req.Provider,
		Name:          req.Config,
		ExternalPath:  req.ExternalPath,
		Overrides:     req.Params,
		DisplayFields: req.DisplayFields,
	})
}

// ListConfigs returns the built-in configuration names for a provider.
func (s *Screener) ListConfigs(provider models.Provider) []string {
	return s.store.List(provider)
}

// ConfigInfo returns a built-in configuration for inspection.
func (s *Screener) ConfigInfo(provider models.Provider, name string) (models.ScreeningConfig, error) {
	return s.store.Get(provider, name)
}

// Run executes one screening invocation end to end. Every structural
// error surfaces before the provider call; the provider call is the only
// blocking operation and is bounded by the caller's context.
func (s *Screener) Run(ctx context.Context, req ScreenRequest) (*models.ScreeningResult, error) {
	start := time.Now()

	resolved, err := s.Resolve(req)
	if err != nil {
		s.metrics.RecordError("resolve")
		return nil, err
	}

	sch, ok := schema.ForProvider(resolved.Provider)
	if !ok {
		s.metrics.RecordError("schema")
		return nil, fmt.Errorf("no schema for provider %q", resolved.Provider)
	}

	predicates, err := s.compiler.Compile(resolved.Filters, sch)
	if err != nil {
		s.metrics.RecordError("compile")
		return nil, err
	}

	fields := resolved.DisplayFields
	if len(fields) == 0 {
		fields = sch.DefaultFields
	}

	query := &models.ProviderQuery{
		Provider:       resolved.Provider,
		ConfigName:     resolved.Name,
		Predicates:     predicates,
		ProviderConfig: resolved.ProviderConfig,
		Columns:        fields,
		SortBy:         req.SortBy,
		SortOrder:      req.SortOrder,
	}

	key := cacheKey(query)
	if s.cache != nil {
		if res, ok := s.cache.Get(ctx, key); ok {
			s.logger.Debug("screening cache hit",
				xlogger.String("provider", string(req.Provider)),
				xlogger.String("config", resolved.Name))
			return truncate(res, req.Limit), nil
		}
	}

	adapter, ok := s.adapters[resolved.Provider]
	if !ok {
		s.metrics.RecordError("adapter")
		return nil, fmt.Errorf("no adapter registered for provider %q", resolved.Provider)
	}

	rows, err := adapter.Scan(ctx, query)
	if err != nil {
		s.metrics.RecordError("scan")
		return nil, fmt.Errorf("provider scan: %w", err)
	}

	result := project(resolved, fields, rows)

	s.metrics.RecordScreening(string(resolved.Provider), resolved.Name)
	s.metrics.RecordResultRows(string(resolved.Provider), resolved.Name, len(result.Rows))
	s.metrics.RecordLatency("screening", time.Since(start).Seconds())
	s.logger.Info("screening completed",
		xlogger.String("provider", string(resolved.Provider)),
		xlogger.String("config", resolved.Name),
		xlogger.Int("symbols", len(result.Symbols)))

	if s.cache != nil {
		s.cache.Set(ctx, key, result, s.cacheTTL)
	}
	if s.publisher != nil {
		if err := s.publisher.PublishResult(ctx, result); err != nil {
			s.logger.Warn("result publish failed", xlogger.Error(err))
		}
	}

	return truncate(result, req.Limit), nil
}

// truncate trims the returned rows to limit. The full result stays in the
// cache and in published messages; only the response shrinks.
func truncate(res *models.ScreeningResult, limit int) *models.ScreeningResult {
	if limit <= 0 || limit >= len(res.Rows) {
		return res
	}
	out := *res
	out.Rows = res.Rows[:limit]
	if limit < len(res.Symbols) {
		out.Symbols = res.Symbols[:limit]
	}
	return &out
}

// project maps raw provider rows onto the requested display fields,
// preserving provider order. A field a row lacks comes back nil rather
// than failing the request; partial availability is expected across
// providers.
func project(resolved models.ResolvedConfig, fields []string, rows []models.Row) *models.ScreeningResult {
	symbols := make([]string, 0, len(rows))
	projected := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		out := make(models.Row, len(fields))
		for _, f := range fields {
			if v, ok := row[f]; ok {
				out[f] = v
			} else {
				out[f] = nil
			}
		}
		projected = append(projected, out)
		if sym, ok := row["symbol"].(string); ok {
			symbols = append(symbols, sym)
		}
	}

	return &models.ScreeningResult{
		Symbols: symbols,
		Rows:    projected,
		Fields:  append([]string(nil), fields...),
		Metadata: map[string]interface{}{
			"filters_applied": len(resolved.Filters),
			"total_results":   len(projected),
		},
		Provider:   resolved.Provider,
		ConfigName: resolved.Name,
		Timestamp:  time.Now().UTC(),
	}
}

// cacheKey digests the full provider query so any change in predicates,
// settings, columns or sort produces a distinct key.
func cacheKey(q *models.ProviderQuery) string {
	b, err := json.Marshal(q)
	if err != nil {
		return fmt.Sprintf("screening:%s:%s", q.Provider, q.ConfigName)
	}
	sum := sha256.Sum256(b)
	return "screening:" + hex.EncodeToString(sum[:16])
}
