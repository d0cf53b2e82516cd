// FILE: medit/config/validate.go
package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ValidateConfig merges raw config data with the schema defaults and builds
// the typed config. Unknown keys become warnings; type mismatches and
// structural violations fail with a *ConfigError. path may be empty when the
// data has no file origin.
func ValidateConfig(data map[string]any, path string) (Result, error) {
	var warnings []string

	if unknown := unknownKeys(data, rootKeys()); len(unknown) > 0 {
		warnings = append(warnings, fmt.Sprintf("Unknown top-level keys: %s", strings.Join(unknown, ", ")))
	}

	resolved := make(map[string]any, len(meditSchema))
	for _, section := range meditSchema {
		sectionData := map[string]any{}
		if raw, ok := data[section.Name]; ok && raw != nil {
			m, ok := raw.(map[string]any)
			if !ok {
				return Result{}, configErrorf(path, "[%s] must be a table/object.", section.Name)
			}
			sectionData = m
		}

		if unknown := unknownKeys(sectionData, optionKeys(section)); len(unknown) > 0 {
			warnings = append(warnings, fmt.Sprintf("Unknown [%s] keys: %s", section.Name, strings.Join(unknown, ", ")))
		}

		resolvedSection := make(map[string]any, len(section.Options))
		for _, opt := range section.Options {
			field := section.Name + "." + opt.Name

			// The explicit default is passed through validation so a
			// validator decides for itself how to fill null/missing.
			raw := opt.Default
			if v, ok := sectionData[opt.Name]; ok {
				raw = v
			}

			value, err := resolveOption(opt, raw, field)
			if err != nil {
				var cfgErr *ConfigError
				if errors.As(err, &cfgErr) {
					return Result{}, cfgErr
				}
				return Result{}, &ConfigError{Path: path, Message: err.Error(), Err: err}
			}
			resolvedSection[opt.Name] = value
		}
		resolved[section.Name] = resolvedSection
	}

	cfg, err := decodeConfig(resolved)
	if err != nil {
		return Result{}, &ConfigError{
			Path:    path,
			Message: fmt.Sprintf("Failed to build config: %v", err),
			Err:     err,
		}
	}

	return Result{
		Config:      cfg,
		Diagnostics: Diagnostics{Path: path, Warnings: warnings},
	}, nil
}

// resolveOption threads the raw value through the option's validators, or
// falls back to generic default-shaped coercion when none are declared.
func resolveOption(opt Option, raw any, field string) (any, error) {
	if len(opt.Validators) == 0 {
		return coerceLikeDefault(raw, opt.Default, field)
	}

	value := raw
	for _, validate := range opt.Validators {
		var err error
		value, err = validate(value, opt.Default, field)
		if err != nil {
			return nil, err
		}
	}
	return value, nil
}

// coerceLikeDefault checks a raw value against the runtime type of the
// option's default. A default whose type matches no known case passes the
// value through unchanged.
func coerceLikeDefault(value, defaultValue any, field string) (any, error) {
	if value == nil {
		return defaultValue, nil
	}

	switch defaultValue.(type) {
	case bool:
		if b, ok := value.(bool); ok {
			return b, nil
		}
		return nil, fmt.Errorf("%s must be a boolean.", field)
	case int, int32, int64:
		if n, ok := asInt64(value); ok {
			return n, nil
		}
		return nil, fmt.Errorf("%s must be an integer.", field)
	case float32, float64:
		if f, ok := asFloat64(value); ok {
			return f, nil
		}
		return nil, fmt.Errorf("%s must be a number.", field)
	case string:
		if s, ok := value.(string); ok {
			return s, nil
		}
		return nil, fmt.Errorf("%s must be a string.", field)
	}

	switch reflect.ValueOf(defaultValue).Kind() {
	case reflect.Slice, reflect.Array:
		if items, ok := value.([]any); ok {
			return items, nil
		}
		return nil, fmt.Errorf("%s must be a list.", field)
	case reflect.Map:
		if m, ok := value.(map[string]any); ok {
			out := make(map[string]any, len(m))
			for k, v := range m {
				out[k] = v
			}
			return out, nil
		}
		return nil, fmt.Errorf("%s must be an object.", field)
	}

	return value, nil
}

// decodeConfig turns the resolved nested map into the typed config.
func decodeConfig(resolved map[string]any) (MeditConfig, error) {
	var cfg MeditConfig
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return MeditConfig{}, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := decoder.Decode(resolved); err != nil {
		return MeditConfig{}, err
	}
	return cfg, nil
}

func rootKeys() map[string]bool {
	keys := make(map[string]bool, len(meditSchema))
	for _, section := range meditSchema {
		keys[section.Name] = true
	}
	return keys
}

func optionKeys(section Section) map[string]bool {
	keys := make(map[string]bool, len(section.Options))
	for _, opt := range section.Options {
		keys[opt.Name] = true
	}
	return keys
}

// unknownKeys returns the keys of data not present in allowed, sorted.
func unknownKeys(data map[string]any, allowed map[string]bool) []string {
	var unknown []string
	for key := range data {
		if !allowed[key] {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}
