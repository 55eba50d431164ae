package models

// Requests for screening HTTP endpoints. Defined in domain for consistency and reuse.

type ScreenRequest struct {
	Provider   string `json:"provider" validate:"required,oneof=tv tv_crypto finviz"`
	Config     string `json:"config" validate:"required"`
	ConfigFile string `json:"config_file,omitempty"`
	Params     string `json:"params,omitempty"`
	Fields     string `json:"fields,omitempty"`
	SortBy     string `json:"sort_by" default:"close"`
	SortOrder  string `json:"sort_order" default:"asc" validate:"oneof=asc desc"`
}

type ConfigInfoRequest struct {
	Provider string `param:"provider" validate:"required,oneof=tv tv_crypto finviz"`
	Config   string `param:"config" validate:"required"`
}

type ProviderRequest struct {
	Provider string `param:"provider" validate:"required,oneof=tv tv_crypto finviz"`
}

// ProviderInfo describes one screening provider for the API.
type ProviderInfo struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	SupportsMarkets bool   `json:"supports_markets"`
	AssetTypes      string `json:"asset_types"`
}

// FieldInfo describes one provider field for the API.
type FieldInfo struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description"`
}
