// Package params parses the compact runtime override syntax:
// "key:value;key:value". Values carry no escaping for ';' or ':', so a
// literal separator inside a value cannot be expressed. That is an
// accepted limitation of the grammar, not something this parser papers
// over with extra syntax.
package params

import (
	"strconv"
	"strings"

	"Screener/internal/domain/models"
)

// Parse splits an override string into a key -> raw value mapping. The
// empty string yields an empty mapping. Whitespace around keys and values
// is trimmed; values stay raw strings for later type-directed coercion.
// One malformed segment fails the whole string, no partial recovery.
func Parse(s string) (map[string]string, error) {
	out := make(map[string]string)
	if strings.TrimSpace(s) == "" {
		return out, nil
	}

	for _, segment := range strings.Split(s, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		key, value, found := strings.Cut(segment, ":")
		if !found {
			return nil, &models.InvalidOverrideSyntaxError{Segment: segment, Reason: "missing ':'"}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, &models.InvalidOverrideSyntaxError{Segment: segment, Reason: "empty key"}
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// Coerce converts a raw override string to the kind of the base value it
// replaces. The kind always comes from the base configuration, never from
// the override itself.
func Coerce(base models.Value, key, raw string) (models.Value, error) {
	switch base.Kind() {
	case models.KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return models.Value{}, &models.InvalidOverrideSyntaxError{
				Segment: key + ":" + raw,
				Reason:  "value is not an integer",
			}
		}
		return models.IntValue(n), nil
	case models.KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.Value{}, &models.InvalidOverrideSyntaxError{
				Segment: key + ":" + raw,
				Reason:  "value is not a number",
			}
		}
		return models.FloatValue(f), nil
	case models.KindBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return models.Value{}, &models.InvalidOverrideSyntaxError{
				Segment: key + ":" + raw,
				Reason:  "value is not a boolean",
			}
		}
		return models.BoolValue(b), nil
	default:
		return models.StringValue(raw), nil
	}
}

// SplitFields parses a comma-separated display-field list, preserving
// order. Duplicates pass through untouched; projection simply repeats the
// field.
func SplitFields(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if f := strings.TrimSpace(p); f != "" {
			out = append(out, f)
		}
	}
	return out
}
