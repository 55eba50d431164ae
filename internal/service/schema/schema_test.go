package schema

import (
	"sort"
	"testing"

	"Screener/internal/domain/models"
)

func TestForProvider(t *testing.T) {
	for _, p := range models.Providers() {
		sch, ok := ForProvider(p)
		if !ok {
			t.Fatalf("no schema for %q", p)
		}
		if sch.Provider != p {
			t.Fatalf("schema provider = %q, want %q", sch.Provider, p)
		}
		if len(sch.DefaultFields) == 0 {
			t.Fatalf("%q: no default fields", p)
		}
	}
	if _, ok := ForProvider("yahoo"); ok {
		t.Fatalf("unexpected schema for unknown provider")
	}
}

func TestDefaultFieldsAreDeclared(t *testing.T) {
	for _, p := range models.Providers() {
		sch, _ := ForProvider(p)
		for _, f := range sch.DefaultFields {
			if !sch.Has(f) {
				t.Fatalf("%q: default field %q not in schema", p, f)
			}
		}
	}
}

func TestKind(t *testing.T) {
	sch, _ := ForProvider(models.ProviderTradingView)
	kind, ok := sch.Kind("volume")
	if !ok || kind != FieldNumber {
		t.Fatalf("volume kind = %v, ok = %v", kind, ok)
	}
	kind, ok = sch.Kind("sector")
	if !ok || kind != FieldText {
		t.Fatalf("sector kind = %v, ok = %v", kind, ok)
	}
	kind, ok = sch.Kind("is_blacklisted")
	if !ok || kind != FieldBool {
		t.Fatalf("is_blacklisted kind = %v, ok = %v", kind, ok)
	}
	if _, ok := sch.Kind("no_such_field"); ok {
		t.Fatalf("unexpected kind for unknown field")
	}
}

func TestFieldNamesSorted(t *testing.T) {
	sch, _ := ForProvider(models.ProviderFinviz)
	names := sch.FieldNames()
	if len(names) != len(sch.Fields) {
		t.Fatalf("got %d names, want %d", len(names), len(sch.Fields))
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("names not sorted: %v", names)
	}
}
