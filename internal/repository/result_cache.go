package repository

import (
	"context"
	"encoding/json"
	"time"

	"Screener/internal/domain/models"
	"Screener/internal/domain/repository"
	"Screener/pkg/cache"
)

// CacheResultStore implements ResultCache on top of pkg/cache, so the
// backing store can be memory, Redis or layered without the orchestrator
// caring. Results are stored as JSON strings.
type CacheResultStore struct {
	svc cache.Service
}

// NewCacheResultStore creates a result cache over a cache service.
func NewCacheResultStore(svc cache.Service) repository.ResultCache {
	return &CacheResultStore{svc: svc}
}

func (s *CacheResultStore) Get(ctx context.Context, key string) (*models.ScreeningResult, bool) {
	var raw string
	if err := s.svc.Get(ctx, cache.GenerateKey("results", key), &raw); err != nil {
		return nil, false
	}
	var res models.ScreeningResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, false
	}
	return &res, true
}

func (s *CacheResultStore) Set(ctx context.Context, key string, res *models.ScreeningResult, ttl time.Duration) {
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	// Best effort; a failed cache write never fails the screening.
	_ = s.svc.Set(ctx, cache.GenerateKey("results", key), string(raw), ttl)
}
