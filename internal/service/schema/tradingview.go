package schema

import "Screener/internal/domain/models"

// Core standardized fields are present for every provider; raw API fields
// mirror what the TradingView scanner returns.
var tradingViewSchema = &Schema{
	Provider: models.ProviderTradingView,
	DefaultFields: []string{
		"symbol", "name", "price", "volume", "change",
		"market_cap", "sector", "exchange", "currency",
	},
	Fields: map[string]FieldInfo{
		// Core standardized fields
		"symbol":     {FieldText, "Stock symbol/ticker"},
		"name":       {FieldText, "Company name"},
		"price":      {FieldNumber, "Current/closing price"},
		"volume":     {FieldNumber, "Trading volume"},
		"change":     {FieldNumber, "Price change percentage"},
		"market_cap": {FieldNumber, "Market capitalization"},
		"sector":     {FieldText, "Industry sector"},
		"exchange":   {FieldText, "Stock exchange"},
		"currency":   {FieldText, "Currency code"},

		// Raw TradingView API fields
		"description":               {FieldText, "Company name/description"},
		"close":                     {FieldNumber, "Closing price"},
		"open":                      {FieldNumber, "Opening price"},
		"high":                      {FieldNumber, "Session high"},
		"low":                       {FieldNumber, "Session low"},
		"market_cap_basic":          {FieldNumber, "Market capitalization"},
		"price_earnings_ttm":        {FieldNumber, "P/E ratio (trailing twelve months)"},
		"dividend_yield_recent":     {FieldNumber, "Most recent dividend yield"},
		"recommendation_mark":       {FieldNumber, "Analyst recommendation score"},
		"average_volume_30d_calc":   {FieldNumber, "30-day average volume"},
		"ATR":                       {FieldNumber, "Average true range"},
		"RSI":                       {FieldNumber, "Relative strength index (14)"},
		"RSI2":                      {FieldNumber, "Relative strength index (2)"},
		"is_blacklisted":            {FieldBool, "Exchange blacklist flag"},
		"type":                      {FieldText, "Security type"},
		"typespecs":                 {FieldText, "Type specifications"},
		"market":                    {FieldText, "Market identifier"},
		"fundamental_currency_code": {FieldText, "Fundamental currency"},
	},
}

var tradingViewCryptoSchema = &Schema{
	Provider: models.ProviderTradingViewCrypto,
	DefaultFields: []string{
		"symbol", "name", "price", "volume", "change", "market_cap", "currency",
	},
	Fields: map[string]FieldInfo{
		// Core standardized fields
		"symbol":     {FieldText, "Coin symbol"},
		"name":       {FieldText, "Coin name"},
		"price":      {FieldNumber, "Current price"},
		"volume":     {FieldNumber, "Trading volume"},
		"change":     {FieldNumber, "Price change percentage"},
		"market_cap": {FieldNumber, "Market capitalization"},
		"currency":   {FieldText, "Quote currency"},

		// Raw TradingView coin screener fields
		"close":             {FieldNumber, "Closing price"},
		"24h_vol_cmc":       {FieldNumber, "24h volume (CoinMarketCap)"},
		"market_cap_calc":   {FieldNumber, "Calculated market capitalization"},
		"crypto_total_rank": {FieldNumber, "Overall crypto rank"},
		"base_currency":     {FieldText, "Base currency"},
		"exchange":          {FieldText, "Listing exchange"},
	},
}
