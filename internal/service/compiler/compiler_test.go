package compiler

import (
	"errors"
	"testing"

	"Screener/internal/domain/models"
	"Screener/internal/service/configstore"
	"Screener/internal/service/schema"
)

func tvSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sch, ok := schema.ForProvider(models.ProviderTradingView)
	if !ok {
		t.Fatalf("no schema for tv")
	}
	return sch
}

func TestCompilePreservesOrder(t *testing.T) {
	filters := []models.Filter{
		{Field: "RSI2", Op: models.OpLess, Value: models.Scalar(models.IntValue(5))},
		{Field: "volume", Op: models.OpGreater, Value: models.Scalar(models.IntValue(1_000_000))},
		{Field: "sector", Op: models.OpEqual, Value: models.Scalar(models.StringValue("Technology"))},
	}
	got, err := New().Compile(filters, tvSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 predicates, got %d", len(got))
	}
	if got[0].Field != "RSI2" || got[1].Field != "volume" || got[2].Field != "sector" {
		t.Fatalf("order not preserved: %v", got)
	}
}

func TestCompileUnknownField(t *testing.T) {
	filters := []models.Filter{
		{Field: "no_such_field", Op: models.OpGreater, Value: models.Scalar(models.IntValue(1))},
	}
	_, err := New().Compile(filters, tvSchema(t))
	var fieldErr *models.UnknownFieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("expected UnknownFieldError, got %v", err)
	}
	if fieldErr.Field != "no_such_field" {
		t.Fatalf("field = %q", fieldErr.Field)
	}
}

func TestCompileExpandsShorthand(t *testing.T) {
	filters := []models.Filter{
		{Field: "volume", Op: models.OpGreater, Value: models.Scalar(models.StringValue("5M"))},
	}
	got, err := New().Compile(filters, tvSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := got[0].Values[0]
	if v.Kind() != models.KindInt || v.Int64() != 5_000_000 {
		t.Fatalf("got %v (%s)", v, v.Kind())
	}
}

func TestCompileBetween(t *testing.T) {
	filters := []models.Filter{
		{Field: "close", Op: models.OpBetween, Value: models.Pair(models.IntValue(5), models.IntValue(50))},
	}
	got, err := New().Compile(filters, tvSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got[0].Values) != 2 {
		t.Fatalf("expected two bounds, got %v", got[0].Values)
	}
}

func TestCompileBetweenInvertedBounds(t *testing.T) {
	filters := []models.Filter{
		{Field: "close", Op: models.OpBetween, Value: models.Pair(models.IntValue(10), models.IntValue(5))},
	}
	_, err := New().Compile(filters, tvSchema(t))
	var rangeErr *models.InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected InvalidRangeError, got %v", err)
	}
}

func TestCompileBetweenWrongArity(t *testing.T) {
	filters := []models.Filter{
		{Field: "close", Op: models.OpBetween, Value: models.Scalar(models.IntValue(10))},
	}
	_, err := New().Compile(filters, tvSchema(t))
	var filterErr *models.InvalidFilterError
	if !errors.As(err, &filterErr) {
		t.Fatalf("expected InvalidFilterError, got %v", err)
	}
}

func TestCompileEmptyInSet(t *testing.T) {
	filters := []models.Filter{
		{Field: "sector", Op: models.OpIn, Value: models.FilterValue{}},
	}
	_, err := New().Compile(filters, tvSchema(t))
	var filterErr *models.InvalidFilterError
	if !errors.As(err, &filterErr) {
		t.Fatalf("expected InvalidFilterError, got %v", err)
	}
}

func TestCompileInSet(t *testing.T) {
	filters := []models.Filter{
		{Field: "sector", Op: models.OpIn, Value: models.FilterValue{
			models.StringValue("Technology"),
			models.StringValue("Healthcare"),
		}},
	}
	got, err := New().Compile(filters, tvSchema(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got[0].Values) != 2 {
		t.Fatalf("got %v", got[0].Values)
	}
}

func TestCompileTypeMismatch(t *testing.T) {
	filters := []models.Filter{
		{Field: "volume", Op: models.OpGreater, Value: models.Scalar(models.StringValue("lots"))},
	}
	_, err := New().Compile(filters, tvSchema(t))
	var filterErr *models.InvalidFilterError
	if !errors.As(err, &filterErr) {
		t.Fatalf("expected InvalidFilterError, got %v", err)
	}
}

func TestCompileBoolField(t *testing.T) {
	filters := []models.Filter{
		{Field: "is_blacklisted", Op: models.OpEqual, Value: models.Scalar(models.BoolValue(false))},
	}
	if _, err := New().Compile(filters, tvSchema(t)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExpandShorthand(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"500K", 500_000},
		{"5M", 5_000_000},
		{"1B", 1_000_000_000},
		{"5m", 5_000_000},
		{"2b", 2_000_000_000},
	}
	for _, c := range cases {
		got, err := ExpandShorthand(models.StringValue(c.in))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.in, err)
		}
		if got.Kind() != models.KindInt || got.Int64() != c.want {
			t.Fatalf("%s: got %v (%s)", c.in, got, got.Kind())
		}
	}
}

func TestExpandShorthandFractional(t *testing.T) {
	got, err := ExpandShorthand(models.StringValue("1.5K"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != models.KindInt || got.Int64() != 1500 {
		t.Fatalf("got %v (%s)", got, got.Kind())
	}
}

func TestExpandShorthandIdempotent(t *testing.T) {
	once, err := ExpandShorthand(models.StringValue("5M"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	twice, err := ExpandShorthand(once)
	if err != nil {
		t.Fatalf("unexpected error on second expansion: %v", err)
	}
	if !once.Equal(twice) {
		t.Fatalf("expansion not idempotent: %v vs %v", once, twice)
	}
}

func TestBuiltinConfigsCompile(t *testing.T) {
	store, err := configstore.NewBuiltin()
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	c := New()
	for _, p := range models.Providers() {
		sch, ok := schema.ForProvider(p)
		if !ok {
			t.Fatalf("no schema for %q", p)
		}
		for _, name := range store.List(p) {
			cfg, err := store.Get(p, name)
			if err != nil {
				t.Fatalf("%s/%s: %v", p, name, err)
			}
			if _, err := c.Compile(cfg.Filters, sch); err != nil {
				t.Fatalf("%s/%s does not compile: %v", p, name, err)
			}
		}
	}
}

func TestExpandShorthandRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "M", "5X", "fiveM", "5MM"} {
		if _, err := ExpandShorthand(models.StringValue(s)); err == nil {
			t.Fatalf("%q: expected error", s)
		}
	}
}
