package params

import (
	"errors"
	"testing"

	"Screener/internal/domain/models"
)

func TestParseBasic(t *testing.T) {
	got, err := Parse("rsi_level:10;volume_threshold:5000000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(got))
	}
	if got["rsi_level"] != "10" {
		t.Fatalf("rsi_level = %q", got["rsi_level"])
	}
	if got["volume_threshold"] != "5000000" {
		t.Fatalf("volume_threshold = %q", got["volume_threshold"])
	}
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}

func TestParseTrimsWhitespace(t *testing.T) {
	got, err := Parse(" rsi_level : 10 ; min_price : 2.5 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["rsi_level"] != "10" || got["min_price"] != "2.5" {
		t.Fatalf("whitespace not trimmed: %v", got)
	}
}

func TestParseSkipsEmptySegments(t *testing.T) {
	got, err := Parse("rsi_level:10;;min_price:2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 overrides, got %d", len(got))
	}
}

func TestParseMissingColon(t *testing.T) {
	_, err := Parse("rsi_level")
	var syntaxErr *models.InvalidOverrideSyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected InvalidOverrideSyntaxError, got %v", err)
	}
	if syntaxErr.Segment != "rsi_level" {
		t.Fatalf("segment = %q", syntaxErr.Segment)
	}
}

func TestParseEmptyKey(t *testing.T) {
	_, err := Parse(":10")
	var syntaxErr *models.InvalidOverrideSyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected InvalidOverrideSyntaxError, got %v", err)
	}
}

func TestParseValueWithColon(t *testing.T) {
	// Cut splits on the first colon, the rest stays in the value.
	got, err := Parse("note:a:b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["note"] != "a:b" {
		t.Fatalf("note = %q", got["note"])
	}
}

func TestCoerceInt(t *testing.T) {
	got, err := Coerce(models.IntValue(5), "rsi_level", "10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != models.KindInt || got.Int64() != 10 {
		t.Fatalf("got %v (%s)", got, got.Kind())
	}
}

func TestCoerceIntRejectsFloat(t *testing.T) {
	_, err := Coerce(models.IntValue(5), "rsi_level", "10.5")
	var syntaxErr *models.InvalidOverrideSyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected InvalidOverrideSyntaxError, got %v", err)
	}
}

func TestCoerceFloat(t *testing.T) {
	got, err := Coerce(models.FloatValue(1.5), "min_price", "2.75")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != models.KindFloat || got.Float64() != 2.75 {
		t.Fatalf("got %v (%s)", got, got.Kind())
	}
}

func TestCoerceBool(t *testing.T) {
	got, err := Coerce(models.BoolValue(false), "active", "true")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != models.KindBool || !got.Bool() {
		t.Fatalf("got %v (%s)", got, got.Kind())
	}
}

func TestCoerceBoolRejectsGarbage(t *testing.T) {
	_, err := Coerce(models.BoolValue(false), "active", "yes please")
	var syntaxErr *models.InvalidOverrideSyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected InvalidOverrideSyntaxError, got %v", err)
	}
}

func TestCoerceString(t *testing.T) {
	got, err := Coerce(models.StringValue("america"), "market", "crypto")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind() != models.KindString || got.Str() != "crypto" {
		t.Fatalf("got %v (%s)", got, got.Kind())
	}
}

func TestSplitFields(t *testing.T) {
	got := SplitFields("symbol, close ,volume")
	if len(got) != 3 || got[0] != "symbol" || got[1] != "close" || got[2] != "volume" {
		t.Fatalf("got %v", got)
	}
}

func TestSplitFieldsEmpty(t *testing.T) {
	if got := SplitFields(""); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestSplitFieldsKeepsDuplicates(t *testing.T) {
	got := SplitFields("close,close")
	if len(got) != 2 {
		t.Fatalf("expected duplicates preserved, got %v", got)
	}
}
