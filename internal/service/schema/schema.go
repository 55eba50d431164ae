// Package schema holds the known field tables for each screening provider:
// field name -> kind, plus the default core field set projected when a
// configuration requests no display fields. Tables are process-wide
// read-only data.
package schema

import (
	"sort"

	"Screener/internal/domain/models"
)

// FieldKind is the declared type of a provider field.
type FieldKind uint8

const (
	FieldNumber FieldKind = iota
	FieldText
	FieldBool
)

func (k FieldKind) String() string {
	switch k {
	case FieldNumber:
		return "number"
	case FieldBool:
		return "bool"
	default:
		return "text"
	}
}

// FieldInfo describes one provider field.
type FieldInfo struct {
	Kind        FieldKind
	Description string
}

// Schema is one provider's field table.
type Schema struct {
	Provider      models.Provider
	Fields        map[string]FieldInfo
	DefaultFields []string
}

// Has reports whether the field is known to the provider.
func (s *Schema) Has(field string) bool {
	_, ok := s.Fields[field]
	return ok
}

// Kind returns the declared kind of a known field.
func (s *Schema) Kind(field string) (FieldKind, bool) {
	fi, ok := s.Fields[field]
	return fi.Kind, ok
}

// FieldNames returns all known field names sorted for stable output.
func (s *Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var byProvider = map[models.Provider]*Schema{
	models.ProviderTradingView:       tradingViewSchema,
	models.ProviderTradingViewCrypto: tradingViewCryptoSchema,
	models.ProviderFinviz:            finvizSchema,
}

// ForProvider returns the schema for a known provider.
func ForProvider(p models.Provider) (*Schema, bool) {
	s, ok := byProvider[p]
	return s, ok
}
