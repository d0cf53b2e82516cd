// FILE: medit/config/validators.go
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FieldValidator checks and normalizes a single option value. A nil value
// means "unset"; validators substitute the option's default in that case.
// field is the dotted "section.option" name, used in messages when the
// validator has no explicit label.
//
// Validators return plain errors with a human-friendly message. The config
// validator wraps them into a ConfigError that carries the file path.
type FieldValidator func(value, defaultValue any, field string) (any, error)

// BoolRule configures ValidateBool.
type BoolRule struct {
	Label string
}

// IntRule configures ValidateInt. Min/Max are inclusive; nil means unbounded.
type IntRule struct {
	Label string
	Min   *int64
	Max   *int64
}

// NumberRule configures ValidateNumber. Min/Max are inclusive; nil means
// unbounded.
type NumberRule struct {
	Label string
	Min   *float64
	Max   *float64
}

// StringRule configures ValidateString. Length bounds count characters, not
// bytes; nil means unbounded. Trim strips surrounding whitespace before any
// check runs.
type StringRule struct {
	Label      string
	NonEmpty   bool
	NoNewlines bool
	Trim       bool
	MinLen     *int
	MaxLen     *int
}

// ListRule configures ValidateList. Item count bounds are inclusive; nil
// means unbounded.
type ListRule struct {
	Label    string
	MinItems *int
	MaxItems *int
}

// ObjectRule configures ValidateObject.
type ObjectRule struct {
	Label string
}

// ValidateBool returns a validator that requires a boolean.
func ValidateBool(rule BoolRule) FieldValidator {
	return func(value, defaultValue any, field string) (any, error) {
		if value == nil {
			value = defaultValue
		}
		display := displayName(rule.Label, field)

		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Errorf("%s must be a boolean.", display)
		}
		return b, nil
	}
}

// ValidateInt returns a validator that requires an integer. Booleans and
// fractional numbers are rejected.
func ValidateInt(rule IntRule) FieldValidator {
	return func(value, defaultValue any, field string) (any, error) {
		if value == nil {
			value = defaultValue
		}
		display := displayName(rule.Label, field)

		n, ok := asInt64(value)
		if !ok {
			return nil, fmt.Errorf("%s must be an integer.", display)
		}
		if rule.Min != nil && n < *rule.Min {
			return nil, fmt.Errorf("%s must be >= %d.", display, *rule.Min)
		}
		if rule.Max != nil && n > *rule.Max {
			return nil, fmt.Errorf("%s must be <= %d.", display, *rule.Max)
		}
		return n, nil
	}
}

// ValidateNumber returns a validator that accepts integers and floats and
// normalizes to float64. Booleans are rejected.
func ValidateNumber(rule NumberRule) FieldValidator {
	return func(value, defaultValue any, field string) (any, error) {
		if value == nil {
			value = defaultValue
		}
		display := displayName(rule.Label, field)

		f, ok := asFloat64(value)
		if !ok {
			return nil, fmt.Errorf("%s must be a number.", display)
		}
		if rule.Min != nil && f < *rule.Min {
			return nil, fmt.Errorf("%s must be >= %v.", display, *rule.Min)
		}
		if rule.Max != nil && f > *rule.Max {
			return nil, fmt.Errorf("%s must be <= %v.", display, *rule.Max)
		}
		return f, nil
	}
}

// ValidateString returns a validator that requires a string and enforces the
// rule's emptiness, length, and newline constraints.
func ValidateString(rule StringRule) FieldValidator {
	return func(value, defaultValue any, field string) (any, error) {
		if value == nil {
			value = defaultValue
		}
		display := displayName(rule.Label, field)

		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%s must be a string.", display)
		}
		if rule.Trim {
			s = strings.TrimSpace(s)
		}
		if rule.NonEmpty && s == "" {
			return nil, fmt.Errorf("%s must not be empty.", display)
		}
		if rule.MinLen != nil && utf8.RuneCountInString(s) < *rule.MinLen {
			return nil, fmt.Errorf("%s must be at least %d characters.", display, *rule.MinLen)
		}
		if rule.MaxLen != nil && utf8.RuneCountInString(s) > *rule.MaxLen {
			return nil, fmt.Errorf("%s must be at most %d characters.", display, *rule.MaxLen)
		}
		if rule.NoNewlines && strings.ContainsAny(s, "\n\r") {
			return nil, fmt.Errorf("%s must not contain newlines.", display)
		}
		return s, nil
	}
}

// ValidateOneOf returns a validator that requires membership in a fixed set
// of allowed values. It panics when called with no choices, since that is a
// schema authoring error.
func ValidateOneOf(label string, choices ...any) FieldValidator {
	if len(choices) == 0 {
		panic("config: ValidateOneOf requires at least one choice")
	}
	return func(value, defaultValue any, field string) (any, error) {
		if value == nil {
			value = defaultValue
		}
		display := displayName(label, field)

		for _, choice := range choices {
			if choiceEqual(value, choice) {
				return value, nil
			}
		}
		return nil, fmt.Errorf("%s must be one of: %s.", display, formatChoices(choices))
	}
}

// ValidateList returns a validator that requires a list and enforces item
// count bounds.
func ValidateList(rule ListRule) FieldValidator {
	return func(value, defaultValue any, field string) (any, error) {
		if value == nil {
			value = defaultValue
		}
		display := displayName(rule.Label, field)

		items, ok := value.([]any)
		if !ok {
			return nil, fmt.Errorf("%s must be a list.", display)
		}
		if rule.MinItems != nil && len(items) < *rule.MinItems {
			return nil, fmt.Errorf("%s must have at least %d items.", display, *rule.MinItems)
		}
		if rule.MaxItems != nil && len(items) > *rule.MaxItems {
			return nil, fmt.Errorf("%s must have at most %d items.", display, *rule.MaxItems)
		}
		return items, nil
	}
}

// ValidateObject returns a validator that requires a JSON object and returns
// a shallow copy of it.
func ValidateObject(rule ObjectRule) FieldValidator {
	return func(value, defaultValue any, field string) (any, error) {
		if value == nil {
			value = defaultValue
		}
		display := displayName(rule.Label, field)

		m, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s must be an object.", display)
		}
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out, nil
	}
}

func displayName(label, field string) string {
	if label != "" {
		return label
	}
	return field
}

// asInt64 converts integer-shaped values. JSON numbers arrive as json.Number
// (the loader parses with UseNumber), so "2" converts while "2.5" and "2.0"
// do not. Booleans never convert.
func asInt64(value any) (int64, bool) {
	switch v := value.(type) {
	case bool:
		return 0, false
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		n, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// asFloat64 converts numeric values, integer or float. Booleans never
// convert.
func asFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case bool:
		return 0, false
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// choiceEqual compares a raw value against an allowed choice, tolerating the
// json.Number representation of numeric values.
func choiceEqual(value, choice any) bool {
	if reflect.DeepEqual(value, choice) {
		return true
	}
	vf, vok := asFloat64(value)
	cf, cok := asFloat64(choice)
	return vok && cok && vf == cf
}

func formatChoices(choices []any) string {
	parts := make([]string, len(choices))
	for i, c := range choices {
		if s, ok := c.(string); ok {
			parts[i] = strconv.Quote(s)
		} else {
			parts[i] = fmt.Sprintf("%v", c)
		}
	}
	return strings.Join(parts, ", ")
}
