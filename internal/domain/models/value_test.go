package models

import (
	"encoding/json"
	"testing"
)

func TestValueKinds(t *testing.T) {
	cases := []struct {
		v    Value
		kind ValueKind
	}{
		{IntValue(5), KindInt},
		{FloatValue(2.5), KindFloat},
		{BoolValue(true), KindBool},
		{StringValue("x"), KindString},
	}
	for _, c := range cases {
		if c.v.Kind() != c.kind {
			t.Fatalf("%v: kind = %s, want %s", c.v, c.v.Kind(), c.kind)
		}
	}
}

func TestValueFromAny(t *testing.T) {
	v, err := ValueFromAny(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != KindInt || v.Int64() != 7 {
		t.Fatalf("got %v (%s)", v, v.Kind())
	}

	v, err = ValueFromAny(json.Number("42"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != KindInt || v.Int64() != 42 {
		t.Fatalf("json.Number int: got %v (%s)", v, v.Kind())
	}

	v, err = ValueFromAny(json.Number("1.25"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != KindFloat || v.Float64() != 1.25 {
		t.Fatalf("json.Number float: got %v (%s)", v, v.Kind())
	}

	if _, err := ValueFromAny([]int{1}); err == nil {
		t.Fatalf("expected error for slice input")
	}
}

func TestValueFloat64OnInt(t *testing.T) {
	if got := IntValue(3).Float64(); got != 3.0 {
		t.Fatalf("got %v", got)
	}
}

func TestValueEqual(t *testing.T) {
	if !IntValue(5).Equal(IntValue(5)) {
		t.Fatalf("equal ints not equal")
	}
	// Same magnitude, different kind.
	if IntValue(5).Equal(FloatValue(5)) {
		t.Fatalf("int and float compared equal")
	}
}

func TestValueString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{IntValue(5), "5"},
		{FloatValue(2.5), "2.5"},
		{BoolValue(true), "true"},
		{StringValue("5M"), "5M"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Fatalf("got %q, want %q", got, c.want)
		}
	}
}

func TestValueMarshalJSON(t *testing.T) {
	b, err := json.Marshal(map[string]Value{"a": IntValue(5), "b": StringValue("x")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"a":5,"b":"x"}`
	if string(b) != want {
		t.Fatalf("got %s, want %s", b, want)
	}
}

func TestFilterValueMarshalScalar(t *testing.T) {
	b, err := json.Marshal(Scalar(IntValue(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "5" {
		t.Fatalf("got %s", b)
	}
}

func TestFilterValueMarshalPair(t *testing.T) {
	b, err := json.Marshal(Pair(IntValue(5), IntValue(50)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "[5,50]" {
		t.Fatalf("got %s", b)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := ScreeningConfig{
		Name:     "x",
		Provider: ProviderTradingView,
		Parameters: map[string]Value{
			"rsi_level": IntValue(5),
		},
		Filters: []Filter{
			{Field: "RSI2", Op: OpLess, Value: Scalar(IntValue(5))},
		},
		DisplayFields: []string{"symbol"},
	}

	clone := orig.Clone()
	clone.Parameters["rsi_level"] = IntValue(99)
	clone.Filters[0].Value[0] = IntValue(99)
	clone.DisplayFields[0] = "mutated"

	if orig.Parameters["rsi_level"].Int64() != 5 {
		t.Fatalf("parameter mutated through clone")
	}
	if orig.Filters[0].Value[0].Int64() != 5 {
		t.Fatalf("filter value mutated through clone")
	}
	if orig.DisplayFields[0] != "symbol" {
		t.Fatalf("display fields mutated through clone")
	}
}

func TestParseProvider(t *testing.T) {
	for _, s := range []string{"tv", "tv_crypto", "finviz"} {
		if _, err := ParseProvider(s); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
	if _, err := ParseProvider("yahoo"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestParseFilterOp(t *testing.T) {
	for _, s := range []string{"equal", "not_equal", "greater", "greater_or_equal", "less", "less_or_equal", "between", "in"} {
		if _, err := ParseFilterOp(s); err != nil {
			t.Fatalf("%s: %v", s, err)
		}
	}
	if _, err := ParseFilterOp(">="); err == nil {
		t.Fatalf("expected error")
	}
}
