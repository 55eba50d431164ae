package models

import "fmt"

// Resolution and compilation errors. All are raised before any provider
// call so callers get a structural failure without network activity, and
// each carries the offending key/field/segment for verbatim display.

// ConfigNotFoundError reports an unknown (provider, name) pair.
type ConfigNotFoundError struct {
	Provider Provider
	Name     string
}

func (e *ConfigNotFoundError) Error() string {
	return fmt.Sprintf("screening config %q not found for provider %q", e.Name, e.Provider)
}

// MalformedConfigError reports a structurally invalid external
// configuration entry; Index is the entry's position in the file.
type MalformedConfigError struct {
	Path   string
	Index  int
	Reason string
}

func (e *MalformedConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("malformed config entry %d in %s: %s", e.Index, e.Path, e.Reason)
	}
	return fmt.Sprintf("malformed config entry %d: %s", e.Index, e.Reason)
}

// InvalidOverrideSyntaxError reports a bad override segment. One bad
// segment invalidates the whole override string.
type InvalidOverrideSyntaxError struct {
	Segment string
	Reason  string
}

func (e *InvalidOverrideSyntaxError) Error() string {
	return fmt.Sprintf("invalid override segment %q: %s", e.Segment, e.Reason)
}

// UnknownParameterError reports an override key that exists in neither the
// base parameters nor the provider config, preventing silent typos.
type UnknownParameterError struct {
	Key string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("unknown parameter %q", e.Key)
}

// UnknownFieldError reports a filter field absent from the provider schema.
type UnknownFieldError struct {
	Field    string
	Provider Provider
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q for provider %q", e.Field, e.Provider)
}

// InvalidRangeError reports a between filter whose bounds are not ordered.
// Bounds are never silently swapped.
type InvalidRangeError struct {
	Field string
	Low   Value
	High  Value
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range for field %q: low %s > high %s", e.Field, e.Low, e.High)
}

// InvalidFilterError reports a filter whose value is incompatible with its
// field or operation (type mismatch, wrong arity, empty in-set).
type InvalidFilterError struct {
	Field  string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	return fmt.Sprintf("invalid filter on field %q: %s", e.Field, e.Reason)
}

// AmbiguousConfigError reports a (provider, name) pair defined by both the
// built-in store and an external file. Ambiguity is a hard error, never
// silently resolved.
type AmbiguousConfigError struct {
	Provider Provider
	Name     string
}

func (e *AmbiguousConfigError) Error() string {
	return fmt.Sprintf("config %q for provider %q defined by both built-ins and external file", e.Name, e.Provider)
}
