package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"Screener/internal/domain/models"
)

// ExpandShorthand turns volume shorthand ("5M", "500K", "1.5b") into a
// numeric value: trailing K/M/B multiply by 1e3/1e6/1e9, case-insensitive.
// Numeric inputs pass through unchanged, so expansion is idempotent.
func ExpandShorthand(v models.Value) (models.Value, error) {
	if v.IsNumeric() {
		return v, nil
	}
	if v.Kind() != models.KindString {
		return models.Value{}, fmt.Errorf("value %s is not numeric", v)
	}

	s := strings.TrimSpace(v.Str())
	if s == "" {
		return models.Value{}, fmt.Errorf("empty value")
	}

	var mult float64
	switch strings.ToUpper(s[len(s)-1:]) {
	case "K":
		mult = 1e3
	case "M":
		mult = 1e6
	case "B":
		mult = 1e9
	default:
		return models.Value{}, fmt.Errorf("value %q is not a recognized shorthand", s)
	}

	base, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return models.Value{}, fmt.Errorf("value %q is not a recognized shorthand", s)
	}

	expanded := base * mult
	if expanded == float64(int64(expanded)) {
		return models.IntValue(int64(expanded)), nil
	}
	return models.FloatValue(expanded), nil
}
