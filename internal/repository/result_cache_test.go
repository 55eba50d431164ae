package repository

import (
	"context"
	"testing"
	"time"

	"Screener/internal/domain/models"
	"Screener/pkg/cache"
)

func sampleResult() *models.ScreeningResult {
	return &models.ScreeningResult{
		Symbols: []string{"AAPL", "MSFT"},
		Rows: []models.Row{
			{"symbol": "AAPL", "close": 185.5, "volume": 50_000_000.0},
			{"symbol": "MSFT", "close": 390.75, "volume": 28_000_000.0},
		},
		Fields:     []string{"symbol", "close", "volume"},
		Metadata:   map[string]interface{}{"filters_applied": 2.0, "total_results": 2.0},
		Provider:   models.ProviderFinviz,
		ConfigName: "momentum_rsi",
		Timestamp:  time.Now().UTC().Truncate(time.Second),
	}
}

func TestCacheResultStoreRoundTrip(t *testing.T) {
	svc := cache.NewMemoryCache()
	store := NewCacheResultStore(svc)
	ctx := context.Background()

	want := sampleResult()
	store.Set(ctx, "abc123", want, time.Minute)

	got, ok := store.Get(ctx, "abc123")
	if !ok {
		t.Fatalf("expected cache hit after Set")
	}
	if got.Provider != want.Provider || got.ConfigName != want.ConfigName {
		t.Fatalf("identity mismatch: got %s/%s", got.Provider, got.ConfigName)
	}
	if !got.Timestamp.Equal(want.Timestamp) {
		t.Fatalf("timestamp mismatch: got %v want %v", got.Timestamp, want.Timestamp)
	}
	if len(got.Rows) != 2 || len(got.Symbols) != 2 {
		t.Fatalf("unexpected result shape: %d rows, %d symbols", len(got.Rows), len(got.Symbols))
	}
	if got.Rows[0]["symbol"] != "AAPL" || got.Rows[0]["close"] != 185.5 {
		t.Fatalf("row values did not survive round trip: %v", got.Rows[0])
	}
	if got.Metadata["total_results"] != 2.0 {
		t.Fatalf("unexpected metadata: %v", got.Metadata)
	}
}

func TestCacheResultStoreMiss(t *testing.T) {
	store := NewCacheResultStore(cache.NewMemoryCache())
	if _, ok := store.Get(context.Background(), "nope"); ok {
		t.Fatalf("expected miss on empty cache")
	}
}

func TestCacheResultStoreNamespacesKeys(t *testing.T) {
	svc := cache.NewMemoryCache()
	store := NewCacheResultStore(svc)
	ctx := context.Background()

	store.Set(ctx, "abc123", sampleResult(), time.Minute)

	// The raw key is prefixed; the bare key must not exist in the backend.
	if ok, _ := svc.Exists(ctx, "abc123"); ok {
		t.Fatalf("result stored under bare key, expected namespaced key")
	}
	if ok, _ := svc.Exists(ctx, cache.GenerateKey("results", "abc123")); !ok {
		t.Fatalf("result not found under namespaced key")
	}
}

func TestCacheResultStoreCorruptEntry(t *testing.T) {
	svc := cache.NewMemoryCache()
	store := NewCacheResultStore(svc)
	ctx := context.Background()

	if err := svc.Set(ctx, cache.GenerateKey("results", "bad"), "{not json", time.Minute); err != nil {
		t.Fatalf("seed corrupt entry: %v", err)
	}
	if _, ok := store.Get(ctx, "bad"); ok {
		t.Fatalf("corrupt cache entry must read as a miss")
	}
}

func TestFinvizStaticAdapterScan(t *testing.T) {
	adapter := NewFinvizStaticAdapter()
	if adapter.Name() != models.ProviderFinviz {
		t.Fatalf("unexpected adapter name %q", adapter.Name())
	}

	rows, err := adapter.Scan(context.Background(), &models.ProviderQuery{Provider: models.ProviderFinviz})
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(rows) == 0 {
		t.Fatalf("expected static rows")
	}
	for i, row := range rows {
		if _, ok := row["symbol"].(string); !ok {
			t.Fatalf("row %d has no symbol: %v", i, row)
		}
	}
}
