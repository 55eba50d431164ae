// Package configfile loads external screening configurations from YAML or
// JSON documents. The document shape mirrors the built-in definitions: a
// top-level "configurations" sequence, or a single configuration object.
package configfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Screener/internal/domain/models"

	"gopkg.in/yaml.v3"
)

type Loader struct{}

func New() *Loader { return &Loader{} }

// Load parses the file at path into configurations. The format is picked
// by extension, falling back to content sniffing for unknown extensions.
// Duplicate (name, provider) pairs within one file are a hard error.
func (l *Loader) Load(path string) ([]models.ScreeningConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	doc, err := decode(path, raw)
	if err != nil {
		return nil, err
	}

	entries, err := configEntries(path, doc)
	if err != nil {
		return nil, err
	}

	configs := make([]models.ScreeningConfig, 0, len(entries))
	seen := make(map[string]int)
	for i, entry := range entries {
		cfg, err := mapConfig(path, i, entry)
		if err != nil {
			return nil, err
		}
		key := string(cfg.Provider) + "/" + cfg.Name
		if first, dup := seen[key]; dup {
			return nil, &models.MalformedConfigError{
				Path:  path,
				Index: i,
				Reason: fmt.Sprintf("duplicate config %s/%s (first defined at entry %d)",
					cfg.Provider, cfg.Name, first),
			}
		}
		seen[key] = i
		configs = append(configs, cfg)
	}
	return configs, nil
}

func decode(path string, raw []byte) (map[string]interface{}, error) {
	if isJSON(path, raw) {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var doc map[string]interface{}
		if err := dec.Decode(&doc); err != nil {
			return nil, &models.MalformedConfigError{Path: path, Reason: "invalid JSON: " + err.Error()}
		}
		return doc, nil
	}

	var doc map[string]interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &models.MalformedConfigError{Path: path, Reason: "invalid YAML: " + err.Error()}
	}
	return doc, nil
}

func isJSON(path string, raw []byte) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return true
	case ".yaml", ".yml":
		return false
	}
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}

func configEntries(path string, doc map[string]interface{}) ([]map[string]interface{}, error) {
	raw, ok := doc["configurations"]
	if !ok {
		// Single configuration document
		return []map[string]interface{}{doc}, nil
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, &models.MalformedConfigError{Path: path, Reason: "\"configurations\" must be a sequence"}
	}
	entries := make([]map[string]interface{}, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, &models.MalformedConfigError{Path: path, Index: i, Reason: "entry is not a mapping"}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func mapConfig(path string, index int, entry map[string]interface{}) (models.ScreeningConfig, error) {
	fail := func(reason string) (models.ScreeningConfig, error) {
		return models.ScreeningConfig{}, &models.MalformedConfigError{Path: path, Index: index, Reason: reason}
	}

	name, _ := entry["name"].(string)
	if name == "" {
		return fail("missing required field \"name\"")
	}
	providerRaw, _ := entry["provider"].(string)
	if providerRaw == "" {
		return fail("missing required field \"provider\"")
	}
	provider, err := models.ParseProvider(providerRaw)
	if err != nil {
		return fail(err.Error())
	}

	cfg := models.ScreeningConfig{
		Name:     name,
		Provider: provider,
	}
	if desc, ok := entry["description"].(string); ok {
		cfg.Description = desc
	}

	if cfg.Parameters, err = mapValues(entry["parameters"], "parameters"); err != nil {
		return fail(err.Error())
	}
	if cfg.ProviderConfig, err = mapValues(entry["provider_config"], "provider_config"); err != nil {
		return fail(err.Error())
	}
	if cfg.Filters, err = mapFilters(entry["filters"]); err != nil {
		return fail(err.Error())
	}
	if cfg.DisplayFields, err = mapStrings(entry["display_fields"], "display_fields"); err != nil {
		return fail(err.Error())
	}
	return cfg, nil
}

func mapValues(raw interface{}, section string) (map[string]models.Value, error) {
	if raw == nil {
		return nil, nil
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%q must be a mapping", section)
	}
	out := make(map[string]models.Value, len(m))
	for k, v := range m {
		val, err := models.ValueFromAny(v)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %v", section, k, err)
		}
		out[k] = val
	}
	return out, nil
}

func mapFilters(raw interface{}) ([]models.Filter, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("\"filters\" must be a sequence")
	}
	filters := make([]models.Filter, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("filter %d is not a mapping", i)
		}
		field, _ := entry["field"].(string)
		if field == "" {
			return nil, fmt.Errorf("filter %d: missing field", i)
		}
		opRaw, _ := entry["operation"].(string)
		op, err := models.ParseFilterOp(opRaw)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %v", i, err)
		}
		value, err := mapFilterValue(entry["value"])
		if err != nil {
			return nil, fmt.Errorf("filter %d: %v", i, err)
		}
		filters = append(filters, models.Filter{Field: field, Op: op, Value: value})
	}
	return filters, nil
}

func mapFilterValue(raw interface{}) (models.FilterValue, error) {
	if raw == nil {
		return nil, fmt.Errorf("missing value")
	}
	if list, ok := raw.([]interface{}); ok {
		fv := make(models.FilterValue, 0, len(list))
		for _, item := range list {
			v, err := models.ValueFromAny(item)
			if err != nil {
				return nil, err
			}
			fv = append(fv, v)
		}
		return fv, nil
	}
	v, err := models.ValueFromAny(raw)
	if err != nil {
		return nil, err
	}
	return models.Scalar(v), nil
}

func mapStrings(raw interface{}, section string) ([]string, error) {
	if raw == nil {
		return nil, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%q must be a sequence", section)
	}
	out := make([]string, 0, len(list))
	for i, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%s[%d] is not a string", section, i)
		}
		out = append(out, s)
	}
	return out, nil
}
