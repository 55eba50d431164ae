package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"Screener/internal/domain/models"
	drepo "Screener/internal/domain/repository"
	"Screener/internal/service/compiler"
	"Screener/internal/service/configfile"
	"Screener/internal/service/configstore"
	"Screener/internal/service/resolver"
	xlogger "Screener/pkg/logger"
)

type fakeAdapter struct {
	provider models.Provider
	rows     []models.Row
	err      error
	calls    int
	lastQry  *models.ProviderQuery
}

func (a *fakeAdapter) Name() models.Provider { return a.provider }

func (a *fakeAdapter) Scan(_ context.Context, q *models.ProviderQuery) ([]models.Row, error) {
	a.calls++
	a.lastQry = q
	return a.rows, a.err
}

type fakeMetrics struct{}

func (fakeMetrics) RecordScreening(provider, config string)         {}
func (fakeMetrics) RecordError(kind string)                         {}
func (fakeMetrics) RecordLatency(op string, seconds float64)        {}
func (fakeMetrics) RecordResultRows(provider, config string, n int) {}

type memResultCache struct {
	mu      sync.Mutex
	entries map[string]*models.ScreeningResult
}

func newMemResultCache() *memResultCache {
	return &memResultCache{entries: make(map[string]*models.ScreeningResult)}
}

func (c *memResultCache) Get(_ context.Context, key string) (*models.ScreeningResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	res, ok := c.entries[key]
	return res, ok
}

func (c *memResultCache) Set(_ context.Context, key string, res *models.ScreeningResult, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = res
}

type fakePublisher struct {
	published int
	err       error
}

func (p *fakePublisher) PublishResult(context.Context, *models.ScreeningResult) error {
	p.published++
	return p.err
}

func (p *fakePublisher) Close() error { return nil }

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestScreener(t *testing.T, adapter drepo.ProviderAdapter, opts ...Option) *Screener {
	t.Helper()
	store, err := configstore.NewBuiltin()
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	adapters := map[models.Provider]drepo.ProviderAdapter{adapter.Name(): adapter}
	return NewScreener(
		resolver.New(store, configfile.New()),
		compiler.New(),
		store,
		adapters,
		fakeMetrics{},
		testLogger(t),
		opts...,
	)
}

func TestRunProjectsRows(t *testing.T) {
	adapter := &fakeAdapter{
		provider: models.ProviderFinviz,
		rows: []models.Row{
			{"symbol": "AAPL", "price": 185.5, "volume": 1e6, "sector": "Technology"},
			{"symbol": "MSFT", "price": 390.0},
		},
	}
	s := newTestScreener(t, adapter)

	res, err := s.Run(context.Background(), ScreenRequest{
		Provider:      models.ProviderFinviz,
		Config:        "rsi2",
		DisplayFields: []string{"symbol", "price", "sector"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(res.Rows))
	}
	// Provider row order is preserved.
	if res.Rows[0]["symbol"] != "AAPL" || res.Rows[1]["symbol"] != "MSFT" {
		t.Fatalf("order not preserved: %v", res.Rows)
	}
	// Missing fields project as nil, extra fields are dropped.
	if res.Rows[1]["sector"] != nil {
		t.Fatalf("missing field not nil: %v", res.Rows[1]["sector"])
	}
	if _, ok := res.Rows[0]["volume"]; ok {
		t.Fatalf("unrequested field leaked into projection")
	}
	if len(res.Symbols) != 2 || res.Symbols[0] != "AAPL" {
		t.Fatalf("symbols = %v", res.Symbols)
	}
	if res.Metadata["total_results"] != 2 {
		t.Fatalf("metadata = %v", res.Metadata)
	}
}

func TestRunDefaultFields(t *testing.T) {
	adapter := &fakeAdapter{
		provider: models.ProviderFinviz,
		rows:     []models.Row{{"symbol": "AAPL"}},
	}
	s := newTestScreener(t, adapter)

	res, err := s.Run(context.Background(), ScreenRequest{
		Provider: models.ProviderFinviz,
		Config:   "rsi2_large_cap",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Fields) == 0 {
		t.Fatalf("expected schema default fields")
	}
	if res.Fields[0] != "symbol" {
		t.Fatalf("fields = %v", res.Fields)
	}
}

func TestRunQueryCarriesSortPassthrough(t *testing.T) {
	adapter := &fakeAdapter{provider: models.ProviderFinviz}
	s := newTestScreener(t, adapter)

	_, err := s.Run(context.Background(), ScreenRequest{
		Provider:  models.ProviderFinviz,
		Config:    "rsi2",
		SortBy:    "volume",
		SortOrder: "desc",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adapter.lastQry.SortBy != "volume" || adapter.lastQry.SortOrder != "desc" {
		t.Fatalf("sort not passed through: %+v", adapter.lastQry)
	}
}

func TestRunResolutionErrorSkipsProvider(t *testing.T) {
	adapter := &fakeAdapter{provider: models.ProviderFinviz}
	s := newTestScreener(t, adapter)

	_, err := s.Run(context.Background(), ScreenRequest{
		Provider: models.ProviderFinviz,
		Config:   "rsi2",
		Params:   "no_such_key:1",
	})
	var unknown *models.UnknownParameterError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownParameterError, got %v", err)
	}
	if adapter.calls != 0 {
		t.Fatalf("provider called despite resolution failure")
	}
}

func TestRunAdapterError(t *testing.T) {
	adapter := &fakeAdapter{provider: models.ProviderFinviz, err: errors.New("boom")}
	s := newTestScreener(t, adapter)

	_, err := s.Run(context.Background(), ScreenRequest{
		Provider: models.ProviderFinviz,
		Config:   "rsi2",
	})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunCachesResult(t *testing.T) {
	adapter := &fakeAdapter{
		provider: models.ProviderFinviz,
		rows:     []models.Row{{"symbol": "AAPL"}},
	}
	cache := newMemResultCache()
	s := newTestScreener(t, adapter, WithResultCache(cache, time.Minute))

	req := ScreenRequest{Provider: models.ProviderFinviz, Config: "rsi2"}
	if _, err := s.Run(context.Background(), req); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if _, err := s.Run(context.Background(), req); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if adapter.calls != 1 {
		t.Fatalf("expected 1 provider call, got %d", adapter.calls)
	}
}

func TestRunPublishesResult(t *testing.T) {
	adapter := &fakeAdapter{provider: models.ProviderFinviz}
	pub := &fakePublisher{}
	s := newTestScreener(t, adapter, WithPublisher(pub))

	if _, err := s.Run(context.Background(), ScreenRequest{
		Provider: models.ProviderFinviz,
		Config:   "rsi2",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pub.published != 1 {
		t.Fatalf("published = %d", pub.published)
	}
}

func TestRunPublishFailureIsNonFatal(t *testing.T) {
	adapter := &fakeAdapter{provider: models.ProviderFinviz}
	pub := &fakePublisher{err: errors.New("broker down")}
	s := newTestScreener(t, adapter, WithPublisher(pub))

	if _, err := s.Run(context.Background(), ScreenRequest{
		Provider: models.ProviderFinviz,
		Config:   "rsi2",
	}); err != nil {
		t.Fatalf("publish failure surfaced: %v", err)
	}
}

func TestRunLimitTruncates(t *testing.T) {
	adapter := &fakeAdapter{
		provider: models.ProviderFinviz,
		rows: []models.Row{
			{"symbol": "AAPL"}, {"symbol": "MSFT"}, {"symbol": "GOOGL"},
		},
	}
	s := newTestScreener(t, adapter)

	res, err := s.Run(context.Background(), ScreenRequest{
		Provider: models.ProviderFinviz,
		Config:   "rsi2",
		Limit:    2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Rows) != 2 || len(res.Symbols) != 2 {
		t.Fatalf("limit not applied: %d rows, %d symbols", len(res.Rows), len(res.Symbols))
	}
	// Metadata keeps the full count.
	if res.Metadata["total_results"] != 3 {
		t.Fatalf("metadata = %v", res.Metadata)
	}
}

func TestResolveWithoutRun(t *testing.T) {
	adapter := &fakeAdapter{provider: models.ProviderFinviz}
	s := newTestScreener(t, adapter)

	resolved, err := s.Resolve(ScreenRequest{Provider: models.ProviderFinviz, Config: "rsi2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.Name != "rsi2" {
		t.Fatalf("resolved name = %q", resolved.Name)
	}
	if adapter.calls != 0 {
		t.Fatalf("provider called by Resolve")
	}
}
