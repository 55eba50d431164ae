package repository

import (
	"context"

	"Screener/internal/domain/models"
	"Screener/internal/domain/repository"
)

// FinvizStaticAdapter is a placeholder Finviz adapter returning a fixed
// result set with no network I/O. It exists so the service runs end to
// end; a real Finviz client would replace it behind the same interface.
type FinvizStaticAdapter struct{}

func NewFinvizStaticAdapter() repository.ProviderAdapter {
	return &FinvizStaticAdapter{}
}

func (a *FinvizStaticAdapter) Name() models.Provider {
	return models.ProviderFinviz
}

func (a *FinvizStaticAdapter) Scan(_ context.Context, query *models.ProviderQuery) ([]models.Row, error) {
	_ = query // predicates are not evaluated by the static data set
	return []models.Row{
		{
			"symbol": "AAPL", "name": "Apple Inc.", "price": 185.50,
			"volume": 50_000_000.0, "change": 1.25, "market_cap": 2.9e12,
			"sector": "Technology", "exchange": "NASDAQ",
		},
		{
			"symbol": "MSFT", "name": "Microsoft Corporation", "price": 390.75,
			"volume": 28_000_000.0, "change": 0.85, "market_cap": 2.85e12,
			"sector": "Technology", "exchange": "NASDAQ",
		},
		{
			"symbol": "GOOGL", "name": "Alphabet Inc.", "price": 142.25,
			"volume": 22_000_000.0, "change": -0.45, "market_cap": 1.78e12,
			"sector": "Technology", "exchange": "NASDAQ",
		},
	}, nil
}
