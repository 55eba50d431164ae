package configstore

import "Screener/internal/domain/models"

// Built-in screening configuration definitions. Filters hold literal
// values: parameters and filters are separate namespaces, so a parameter
// override never rewrites a filter value.
var builtins = []models.ScreeningConfig{
	// --- TradingView stocks ---
	{
		Name:        "rsi2",
		Provider:    models.ProviderTradingView,
		Description: "Basic RSI2 < 5 screening with standard volume filter",
		Parameters: map[string]models.Value{
			"rsi_level":  models.IntValue(5),
			"rsi_period": models.IntValue(2),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(1_000_000),
		},
		Filters: []models.Filter{
			{Field: "RSI2", Op: models.OpLess, Value: models.Scalar(models.IntValue(5))},
			{Field: "is_blacklisted", Op: models.OpEqual, Value: models.Scalar(models.BoolValue(false))},
		},
	},
	{
		Name:        "rsi2_high_volume",
		Provider:    models.ProviderTradingView,
		Description: "RSI2 < 5 screening with high volume filter (5,000,000+)",
		Parameters: map[string]models.Value{
			"rsi_level":        models.IntValue(5),
			"rsi_period":       models.IntValue(2),
			"volume_threshold": models.IntValue(5_000_000),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(5_000_000),
		},
		Filters: []models.Filter{
			{Field: "RSI2", Op: models.OpLess, Value: models.Scalar(models.IntValue(5))},
			{Field: "volume", Op: models.OpGreater, Value: models.Scalar(models.StringValue("5M"))},
			{Field: "is_blacklisted", Op: models.OpEqual, Value: models.Scalar(models.BoolValue(false))},
		},
	},
	{
		Name:        "rsi2_relaxed",
		Provider:    models.ProviderTradingView,
		Description: "Relaxed RSI2 < 10 screening with lower volume threshold (500,000+)",
		Parameters: map[string]models.Value{
			"rsi_level":        models.IntValue(10),
			"rsi_period":       models.IntValue(2),
			"volume_threshold": models.IntValue(500_000),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(500_000),
		},
		Filters: []models.Filter{
			{Field: "RSI2", Op: models.OpLess, Value: models.Scalar(models.IntValue(10))},
			{Field: "volume", Op: models.OpGreater, Value: models.Scalar(models.StringValue("500K"))},
			{Field: "is_blacklisted", Op: models.OpEqual, Value: models.Scalar(models.BoolValue(false))},
		},
	},
	{
		Name:        "momentum_breakout",
		Provider:    models.ProviderTradingView,
		Description: "Momentum breakout screening for stocks with 5%+ daily gain, volume >1,000,000 and price >$5",
		Parameters: map[string]models.Value{
			"price_change_pct": models.FloatValue(5.0),
			"volume_threshold": models.IntValue(1_000_000),
			"min_price":        models.FloatValue(5.0),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(1_000_000),
		},
		Filters: []models.Filter{
			{Field: "change", Op: models.OpGreater, Value: models.Scalar(models.FloatValue(5.0))},
			{Field: "volume", Op: models.OpGreater, Value: models.Scalar(models.StringValue("1M"))},
			{Field: "close", Op: models.OpGreater, Value: models.Scalar(models.FloatValue(5.0))},
			{Field: "is_blacklisted", Op: models.OpEqual, Value: models.Scalar(models.BoolValue(false))},
		},
	},
	{
		Name:        "momentum_strong",
		Provider:    models.ProviderTradingView,
		Description: "Strong momentum screening with 10%+ daily gain, high volume and large market cap",
		Parameters: map[string]models.Value{
			"price_change_pct":  models.FloatValue(10.0),
			"volume_multiplier": models.FloatValue(3.0),
			"market_cap_min":    models.IntValue(500_000_000),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(2_000_000),
		},
		Filters: []models.Filter{
			{Field: "change", Op: models.OpGreater, Value: models.Scalar(models.FloatValue(10.0))},
			{Field: "volume", Op: models.OpGreater, Value: models.Scalar(models.StringValue("2M"))},
			{Field: "market_cap_basic", Op: models.OpGreater, Value: models.Scalar(models.StringValue("500M"))},
			{Field: "is_blacklisted", Op: models.OpEqual, Value: models.Scalar(models.BoolValue(false))},
		},
	},
	{
		Name:        "value_low_pe",
		Provider:    models.ProviderTradingView,
		Description: "Value screening for stocks with low P/E ratios (< 15) and decent liquidity",
		Parameters: map[string]models.Value{
			"max_pe_ratio":   models.FloatValue(15.0),
			"min_market_cap": models.IntValue(100_000_000),
			"min_volume":     models.IntValue(500_000),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(500_000),
		},
		Filters: []models.Filter{
			// Positive P/E below the cap, negative earners excluded
			{Field: "price_earnings_ttm", Op: models.OpBetween, Value: models.Pair(models.IntValue(0), models.FloatValue(15.0))},
			{Field: "market_cap_basic", Op: models.OpGreater, Value: models.Scalar(models.StringValue("100M"))},
			{Field: "volume", Op: models.OpGreater, Value: models.Scalar(models.StringValue("500K"))},
			{Field: "is_blacklisted", Op: models.OpEqual, Value: models.Scalar(models.BoolValue(false))},
		},
	},
	{
		Name:        "value_undervalued",
		Provider:    models.ProviderTradingView,
		Description: "Deep value screening for undervalued large-cap dividend stocks",
		Parameters: map[string]models.Value{
			"max_pe_ratio":       models.FloatValue(12.0),
			"min_dividend_yield": models.FloatValue(2.0),
			"min_market_cap":     models.IntValue(1_000_000_000),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(1_000_000),
		},
		Filters: []models.Filter{
			{Field: "price_earnings_ttm", Op: models.OpBetween, Value: models.Pair(models.IntValue(0), models.FloatValue(12.0))},
			{Field: "dividend_yield_recent", Op: models.OpGreater, Value: models.Scalar(models.FloatValue(2.0))},
			{Field: "market_cap_basic", Op: models.OpGreater, Value: models.Scalar(models.StringValue("1B"))},
			{Field: "volume", Op: models.OpGreater, Value: models.Scalar(models.StringValue("1M"))},
			{Field: "is_blacklisted", Op: models.OpEqual, Value: models.Scalar(models.BoolValue(false))},
		},
	},
	{
		Name:        "elephant_bars",
		Provider:    models.ProviderTradingView,
		Description: "Top stocks by market cap with volume/ATR data for elephant bar detection",
		ProviderConfig: map[string]models.Value{
			"use_symbolset":              models.BoolValue(false),
			"skip_default_volume_filter": models.BoolValue(true),
		},
		Filters: []models.Filter{},
		DisplayFields: []string{
			"symbol", "name", "price", "volume",
			"open", "high", "low", "average_volume_30d_calc", "ATR",
		},
	},

	// --- TradingView crypto ---
	{
		Name:        "crypto_basic",
		Provider:    models.ProviderTradingViewCrypto,
		Description: "Basic crypto screening with minimum volume of $50,000,000",
		Parameters: map[string]models.Value{
			"min_volume": models.IntValue(50_000_000),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(50_000_000),
		},
		Filters: []models.Filter{
			{Field: "24h_vol_cmc", Op: models.OpGreaterOrEqual, Value: models.Scalar(models.StringValue("50M"))},
		},
	},
	{
		Name:        "crypto_top_100",
		Provider:    models.ProviderTradingViewCrypto,
		Description: "Top 100 crypto by rank with minimum volume of $100,000,000",
		Parameters: map[string]models.Value{
			"min_volume": models.IntValue(100_000_000),
			"max_rank":   models.IntValue(100),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(100_000_000),
		},
		Filters: []models.Filter{
			{Field: "24h_vol_cmc", Op: models.OpGreaterOrEqual, Value: models.Scalar(models.StringValue("100M"))},
			{Field: "crypto_total_rank", Op: models.OpLessOrEqual, Value: models.Scalar(models.IntValue(100))},
		},
	},
	{
		Name:        "crypto_high_volume",
		Provider:    models.ProviderTradingViewCrypto,
		Description: "High volume crypto ($500,000,000+)",
		Parameters: map[string]models.Value{
			"min_volume": models.IntValue(500_000_000),
		},
		ProviderConfig: map[string]models.Value{
			"volume_threshold": models.IntValue(500_000_000),
		},
		Filters: []models.Filter{
			{Field: "24h_vol_cmc", Op: models.OpGreaterOrEqual, Value: models.Scalar(models.StringValue("500M"))},
		},
	},

	// --- Finviz ---
	{
		Name:        "rsi2",
		Provider:    models.ProviderFinviz,
		Description: "Finviz RSI2 < 5 screening with market cap and price filters",
		Parameters: map[string]models.Value{
			"rsi_level":  models.IntValue(5),
			"rsi_period": models.IntValue(2),
		},
		ProviderConfig: map[string]models.Value{
			"market_cap_min": models.IntValue(100_000_000),
			"price_min":      models.FloatValue(5.0),
			"sector":         models.StringValue("any"),
		},
		Filters: []models.Filter{
			{Field: "ta_rsi", Op: models.OpLess, Value: models.Scalar(models.IntValue(5))},
			{Field: "sh_price", Op: models.OpGreater, Value: models.Scalar(models.FloatValue(5.0))},
			{Field: "sh_curvol", Op: models.OpGreater, Value: models.Scalar(models.IntValue(1000))},
		},
	},
	{
		Name:        "rsi2_large_cap",
		Provider:    models.ProviderFinviz,
		Description: "Finviz RSI2 < 5 screening focused on large-cap stocks",
		Parameters: map[string]models.Value{
			"rsi_level":  models.IntValue(5),
			"rsi_period": models.IntValue(2),
			"focus":      models.StringValue("large_cap"),
		},
		ProviderConfig: map[string]models.Value{
			"market_cap_min": models.IntValue(2_000_000_000),
			"price_min":      models.FloatValue(10.0),
			"sector":         models.StringValue("any"),
		},
		Filters: []models.Filter{
			{Field: "ta_rsi", Op: models.OpLess, Value: models.Scalar(models.IntValue(5))},
			{Field: "sh_price", Op: models.OpGreater, Value: models.Scalar(models.FloatValue(10.0))},
			{Field: "cap_megalarge", Op: models.OpEqual, Value: models.Scalar(models.BoolValue(true))},
		},
	},
}
