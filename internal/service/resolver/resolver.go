// Package resolver merges a base screening configuration with runtime
// overrides into a single validated, provider-ready configuration.
package resolver

import (
	"sort"

	"Screener/internal/domain/models"
	"Screener/internal/service/configfile"
	"Screener/internal/service/configstore"
	"Screener/internal/service/params"
)

// Request selects the base configuration and the overrides to layer on it.
type Request struct {
	Provider models.Provider
	Name     string
	// ExternalPath, when set, is the exclusive configuration source;
	// built-ins are not consulted as a fallback.
	ExternalPath string
	// Overrides is the raw "key:value;key:value" parameter string.
	Overrides string
	// DisplayFields, when non-empty, fully replaces the base display
	// field list. Replacement is total, never additive.
	DisplayFields []string
}

type Resolver struct {
	store  *configstore.Store
	loader *configfile.Loader
}

func New(store *configstore.Store, loader *configfile.Loader) *Resolver {
	return &Resolver{store: store, loader: loader}
}

// Resolve produces the fully merged configuration. All validation happens
// here: unknown override keys, uncoercible values and ambiguous sources
// fail before anything provider-facing runs. Failures never leak a
// partially overridden configuration.
func (r *Resolver) Resolve(req Request) (models.ResolvedConfig, error) {
	base, err := r.selectBase(req)
	if err != nil {
		return models.ResolvedConfig{}, err
	}

	overrides, err := params.Parse(req.Overrides)
	if err != nil {
		return models.ResolvedConfig{}, err
	}

	merged := base.Clone()

	// Validate every key before applying any, so one unknown key cannot
	// leave other overrides half-applied.
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, ok := merged.Parameters[key]; ok {
			continue
		}
		if _, ok := merged.ProviderConfig[key]; ok {
			continue
		}
		return models.ResolvedConfig{}, &models.UnknownParameterError{Key: key}
	}

	for _, key := range keys {
		raw := overrides[key]
		if current, ok := merged.Parameters[key]; ok {
			coerced, err := params.Coerce(current, key, raw)
			if err != nil {
				return models.ResolvedConfig{}, err
			}
			merged.Parameters[key] = coerced
			continue
		}
		current := merged.ProviderConfig[key]
		coerced, err := params.Coerce(current, key, raw)
		if err != nil {
			return models.ResolvedConfig{}, err
		}
		merged.ProviderConfig[key] = coerced
	}

	if len(req.DisplayFields) > 0 {
		merged.DisplayFields = append([]string(nil), req.DisplayFields...)
	}

	// Filters pass through untouched: parameters and filters are separate
	// namespaces, overrides never rewrite filter values.
	return models.ResolvedConfig{ScreeningConfig: merged}, nil
}

func (r *Resolver) selectBase(req Request) (models.ScreeningConfig, error) {
	if req.ExternalPath == "" {
		return r.store.Get(req.Provider, req.Name)
	}

	configs, err := r.loader.Load(req.ExternalPath)
	if err != nil {
		return models.ScreeningConfig{}, err
	}
	for _, c := range configs {
		if c.Provider != req.Provider || c.Name != req.Name {
			continue
		}
		// The external file is the only source consulted, so a built-in
		// with the same identity would make the name ambiguous.
		if r.store.Has(req.Provider, req.Name) {
			return models.ScreeningConfig{}, &models.AmbiguousConfigError{Provider: req.Provider, Name: req.Name}
		}
		return c, nil
	}
	return models.ScreeningConfig{}, &models.ConfigNotFoundError{Provider: req.Provider, Name: req.Name}
}
