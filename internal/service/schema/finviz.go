package schema

import "Screener/internal/domain/models"

// Finviz uses its own field vocabulary (ta_*, sh_* prefixes); the core
// standardized fields map onto them in the adapter.
var finvizSchema = &Schema{
	Provider: models.ProviderFinviz,
	DefaultFields: []string{
		"symbol", "name", "price", "volume", "change", "market_cap", "sector",
	},
	Fields: map[string]FieldInfo{
		// Core standardized fields
		"symbol":     {FieldText, "Stock ticker symbol"},
		"name":       {FieldText, "Company name"},
		"price":      {FieldNumber, "Current stock price"},
		"volume":     {FieldNumber, "Trading volume"},
		"change":     {FieldNumber, "Price change percentage"},
		"market_cap": {FieldNumber, "Market capitalization"},
		"sector":     {FieldText, "Industry sector"},

		// Raw Finviz screener fields
		"ticker":        {FieldText, "Stock ticker symbol"},
		"company":       {FieldText, "Company name"},
		"industry":      {FieldText, "Specific industry"},
		"country":       {FieldText, "Country of origin"},
		"ta_rsi":        {FieldNumber, "Relative strength index"},
		"sh_price":      {FieldNumber, "Share price"},
		"sh_curvol":     {FieldNumber, "Current volume (thousands)"},
		"cap_megalarge": {FieldBool, "Mega/large market cap bucket"},
	},
}
