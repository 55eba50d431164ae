package models

import (
	"fmt"
	"time"
)

// Provider identifies an external screening data source.
type Provider string

const (
	ProviderTradingView       Provider = "tv"
	ProviderTradingViewCrypto Provider = "tv_crypto"
	ProviderFinviz            Provider = "finviz"
)

// Providers lists all known providers in stable order.
func Providers() []Provider {
	return []Provider{ProviderTradingView, ProviderTradingViewCrypto, ProviderFinviz}
}

// ParseProvider validates a provider identifier.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(s); p {
	case ProviderTradingView, ProviderTradingViewCrypto, ProviderFinviz:
		return p, nil
	default:
		return "", fmt.Errorf("unknown provider %q", s)
	}
}

// FilterOp is the closed set of filter operations. Free-form operation
// strings are rejected at parse time so typos fail fast.
type FilterOp string

const (
	OpEqual          FilterOp = "equal"
	OpNotEqual       FilterOp = "not_equal"
	OpGreater        FilterOp = "greater"
	OpGreaterOrEqual FilterOp = "greater_or_equal"
	OpLess           FilterOp = "less"
	OpLessOrEqual    FilterOp = "less_or_equal"
	OpBetween        FilterOp = "between"
	OpIn             FilterOp = "in"
)

// ParseFilterOp validates a filter operation identifier.
func ParseFilterOp(s string) (FilterOp, error) {
	switch op := FilterOp(s); op {
	case OpEqual, OpNotEqual, OpGreater, OpGreaterOrEqual,
		OpLess, OpLessOrEqual, OpBetween, OpIn:
		return op, nil
	default:
		return "", fmt.Errorf("unknown filter operation %q", s)
	}
}

// Filter is a single field/operation/value constraint. Filters combine
// conjunctively; order is preserved for display only.
type Filter struct {
	Field string      `json:"field"`
	Op    FilterOp    `json:"operation"`
	Value FilterValue `json:"value"`
}

// ScreeningConfig is a named, provider-scoped bundle of parameters,
// provider-specific settings, filters and display fields. Instances are
// value objects; nothing mutates them after construction.
type ScreeningConfig struct {
	Name           string           `json:"name"`
	Provider       Provider         `json:"provider"`
	Description    string           `json:"description,omitempty"`
	Parameters     map[string]Value `json:"parameters,omitempty"`
	ProviderConfig map[string]Value `json:"provider_config,omitempty"`
	Filters        []Filter         `json:"filters"`
	DisplayFields  []string         `json:"display_fields,omitempty"`
}

// Clone returns a deep copy so merges never touch the original.
func (c ScreeningConfig) Clone() ScreeningConfig {
	out := c
	if c.Parameters != nil {
		out.Parameters = make(map[string]Value, len(c.Parameters))
		for k, v := range c.Parameters {
			out.Parameters[k] = v
		}
	}
	if c.ProviderConfig != nil {
		out.ProviderConfig = make(map[string]Value, len(c.ProviderConfig))
		for k, v := range c.ProviderConfig {
			out.ProviderConfig[k] = v
		}
	}
	if c.Filters != nil {
		out.Filters = make([]Filter, len(c.Filters))
		copy(out.Filters, c.Filters)
		for i, f := range c.Filters {
			if f.Value != nil {
				fv := make(FilterValue, len(f.Value))
				copy(fv, f.Value)
				out.Filters[i].Value = fv
			}
		}
	}
	if c.DisplayFields != nil {
		out.DisplayFields = append([]string(nil), c.DisplayFields...)
	}
	return out
}

// ResolvedConfig is a fully merged, validated configuration ready for
// compilation. It is constructed once per screening invocation.
type ResolvedConfig struct {
	ScreeningConfig
}

// CompiledPredicate is one provider-agnostic conjunct produced by the
// filter compiler. Values are post shorthand expansion.
type CompiledPredicate struct {
	Field  string   `json:"field"`
	Op     FilterOp `json:"operation"`
	Values []Value  `json:"values"`
}

// ProviderQuery is everything a provider adapter needs to execute a scan:
// compiled predicates, opaque provider settings, the columns to fetch and
// a sort passthrough the core never reorders by.
type ProviderQuery struct {
	Provider       Provider            `json:"provider"`
	ConfigName     string              `json:"config"`
	Predicates     []CompiledPredicate `json:"predicates"`
	ProviderConfig map[string]Value    `json:"provider_config,omitempty"`
	Columns        []string            `json:"columns"`
	SortBy         string              `json:"sort_by,omitempty"`
	SortOrder      string              `json:"sort_order,omitempty"`
}

// Row is a single result row keyed by field name. A projected row carries
// nil for fields the provider did not return.
type Row map[string]interface{}

// ScreeningResult is the normalized outcome of one screening run, rows
// projected onto the requested display fields in provider order.
type ScreeningResult struct {
	Symbols    []string               `json:"symbols"`
	Rows       []Row                  `json:"rows"`
	Fields     []string               `json:"fields"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
	Provider   Provider               `json:"provider"`
	ConfigName string                 `json:"config"`
	Timestamp  time.Time              `json:"timestamp"`
}
