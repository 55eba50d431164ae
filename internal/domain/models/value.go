package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags the closed set of scalar kinds a configuration value can hold.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindInt
	KindFloat
	KindBool
)

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Value is an immutable tagged scalar. The kind is fixed at construction and
// drives how runtime overrides are coerced; it is never re-inferred from an
// override string alone.
type Value struct {
	kind ValueKind
	i    int64
	f    float64
	b    bool
	s    string
}

func IntValue(v int64) Value     { return Value{kind: KindInt, i: v} }
func FloatValue(v float64) Value { return Value{kind: KindFloat, f: v} }
func BoolValue(v bool) Value     { return Value{kind: KindBool, b: v} }
func StringValue(v string) Value { return Value{kind: KindString, s: v} }

// ValueFromAny converts a dynamically decoded scalar (YAML/JSON) into a Value.
func ValueFromAny(v interface{}) (Value, error) {
	switch t := v.(type) {
	case int:
		return IntValue(int64(t)), nil
	case int64:
		return IntValue(t), nil
	case uint64:
		return IntValue(int64(t)), nil
	case float64:
		return FloatValue(t), nil
	case float32:
		return FloatValue(float64(t)), nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return IntValue(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %q", t.String())
		}
		return FloatValue(f), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

func (v Value) Kind() ValueKind { return v.kind }

// Int64 returns the integer payload. Valid only for KindInt.
func (v Value) Int64() int64 { return v.i }

// Float64 returns the numeric payload for both int and float kinds.
func (v Value) Float64() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

func (v Value) Bool() bool { return v.b }

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string { return v.s }

// IsNumeric reports whether the value holds an int or float.
func (v Value) IsNumeric() bool { return v.kind == KindInt || v.kind == KindFloat }

// Raw returns the underlying native value.
func (v Value) Raw() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindBool:
		return v.b
	default:
		return v.s
	}
}

func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.Raw() == o.Raw()
}

func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

func (v *Value) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	val, err := ValueFromAny(raw)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func (v Value) MarshalYAML() (interface{}, error) {
	return v.Raw(), nil
}

// FilterValue is the filter operand: a single scalar for comparison
// operations, a low/high pair for between, or a non-empty set for in.
type FilterValue []Value

func Scalar(v Value) FilterValue    { return FilterValue{v} }
func Pair(lo, hi Value) FilterValue { return FilterValue{lo, hi} }

func (fv FilterValue) MarshalJSON() ([]byte, error) {
	if len(fv) == 1 {
		return json.Marshal(fv[0])
	}
	return json.Marshal([]Value(fv))
}

func (fv *FilterValue) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var vals []Value
		if err := json.Unmarshal(b, &vals); err != nil {
			return err
		}
		*fv = vals
		return nil
	}
	var v Value
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*fv = FilterValue{v}
	return nil
}
