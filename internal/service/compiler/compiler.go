// Package compiler translates resolved filters into a provider-agnostic
// predicate list, validating field names and value types against the
// target provider's schema. Output order matches input order; predicates
// combine conjunctively.
package compiler

import (
	"fmt"

	"Screener/internal/domain/models"
	"Screener/internal/service/schema"
)

type Compiler struct{}

func New() *Compiler { return &Compiler{} }

// Compile validates and compiles the filters of a resolved configuration.
// Every error is raised here, before any provider call.
func (c *Compiler) Compile(filters []models.Filter, sch *schema.Schema) ([]models.CompiledPredicate, error) {
	predicates := make([]models.CompiledPredicate, 0, len(filters))
	for _, f := range filters {
		p, err := c.compileOne(f, sch)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, p)
	}
	return predicates, nil
}

func (c *Compiler) compileOne(f models.Filter, sch *schema.Schema) (models.CompiledPredicate, error) {
	kind, ok := sch.Kind(f.Field)
	if !ok {
		return models.CompiledPredicate{}, &models.UnknownFieldError{Field: f.Field, Provider: sch.Provider}
	}

	if err := checkArity(f); err != nil {
		return models.CompiledPredicate{}, err
	}

	values := make([]models.Value, 0, len(f.Value))
	for _, v := range f.Value {
		cv, err := coerceOperand(f.Field, kind, v)
		if err != nil {
			return models.CompiledPredicate{}, err
		}
		values = append(values, cv)
	}

	if f.Op == models.OpBetween {
		if kind != schema.FieldNumber {
			return models.CompiledPredicate{}, &models.InvalidFilterError{
				Field:  f.Field,
				Reason: "between requires a numeric field",
			}
		}
		lo, hi := values[0], values[1]
		if lo.Float64() > hi.Float64() {
			return models.CompiledPredicate{}, &models.InvalidRangeError{Field: f.Field, Low: lo, High: hi}
		}
	}

	return models.CompiledPredicate{Field: f.Field, Op: f.Op, Values: values}, nil
}

func checkArity(f models.Filter) error {
	switch f.Op {
	case models.OpBetween:
		if len(f.Value) != 2 {
			return &models.InvalidFilterError{
				Field:  f.Field,
				Reason: fmt.Sprintf("between requires exactly two bounds, got %d", len(f.Value)),
			}
		}
	case models.OpIn:
		if len(f.Value) == 0 {
			return &models.InvalidFilterError{Field: f.Field, Reason: "in requires a non-empty set"}
		}
	default:
		if len(f.Value) != 1 {
			return &models.InvalidFilterError{
				Field:  f.Field,
				Reason: fmt.Sprintf("%s requires a single value, got %d", f.Op, len(f.Value)),
			}
		}
	}
	return nil
}

// coerceOperand checks the operand against the field's declared kind.
// Numeric fields reject strings except recognized K/M/B shorthand, which
// is expanded before the type check completes.
func coerceOperand(field string, kind schema.FieldKind, v models.Value) (models.Value, error) {
	switch kind {
	case schema.FieldNumber:
		expanded, err := ExpandShorthand(v)
		if err != nil {
			return models.Value{}, &models.InvalidFilterError{
				Field:  field,
				Reason: fmt.Sprintf("numeric field got %s value %s", v.Kind(), v),
			}
		}
		return expanded, nil
	case schema.FieldBool:
		if v.Kind() != models.KindBool {
			return models.Value{}, &models.InvalidFilterError{
				Field:  field,
				Reason: fmt.Sprintf("boolean field got %s value %s", v.Kind(), v),
			}
		}
		return v, nil
	default:
		if v.Kind() != models.KindString {
			return models.Value{}, &models.InvalidFilterError{
				Field:  field,
				Reason: fmt.Sprintf("text field got %s value %s", v.Kind(), v),
			}
		}
		return v, nil
	}
}
