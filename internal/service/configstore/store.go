// Package configstore holds the built-in screening configurations. The
// store is populated once at process start and is read-only afterwards;
// only Get and List are exposed.
package configstore

import (
	"fmt"

	"Screener/internal/domain/models"
)

// Store is an immutable registry of built-in configurations keyed by
// provider and name.
type Store struct {
	configs map[models.Provider]map[string]models.ScreeningConfig
	names   map[models.Provider][]string
}

// New builds a store from the given definitions. Duplicate
// (provider, name) pairs are a programming error.
func New(configs ...models.ScreeningConfig) (*Store, error) {
	s := &Store{
		configs: make(map[models.Provider]map[string]models.ScreeningConfig),
		names:   make(map[models.Provider][]string),
	}
	for _, c := range configs {
		if _, err := models.ParseProvider(string(c.Provider)); err != nil {
			return nil, fmt.Errorf("config %q: %w", c.Name, err)
		}
		byName := s.configs[c.Provider]
		if byName == nil {
			byName = make(map[string]models.ScreeningConfig)
			s.configs[c.Provider] = byName
		}
		if _, dup := byName[c.Name]; dup {
			return nil, fmt.Errorf("duplicate built-in config %s/%s", c.Provider, c.Name)
		}
		byName[c.Name] = c
		s.names[c.Provider] = append(s.names[c.Provider], c.Name)
	}
	return s, nil
}

// NewBuiltin builds the store seeded with the built-in definitions.
func NewBuiltin() (*Store, error) {
	return New(builtins...)
}

// Get returns the configuration for (provider, name). The returned value
// must be treated as read-only; callers clone before merging.
func (s *Store) Get(provider models.Provider, name string) (models.ScreeningConfig, error) {
	if c, ok := s.configs[provider][name]; ok {
		return c, nil
	}
	return models.ScreeningConfig{}, &models.ConfigNotFoundError{Provider: provider, Name: name}
}

// Has reports whether (provider, name) is a built-in.
func (s *Store) Has(provider models.Provider, name string) bool {
	_, ok := s.configs[provider][name]
	return ok
}

// List returns configuration names for a provider in registration order.
func (s *Store) List(provider models.Provider) []string {
	return append([]string(nil), s.names[provider]...)
}
