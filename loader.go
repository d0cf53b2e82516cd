// FILE: medit/config/loader.go
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadConfig reads, parses, and validates the config file at path. Only the
// .json extension is recognized. Every failure is a *ConfigError carrying
// the path for user-facing attribution.
func LoadConfig(path string) (Result, error) {
	if ext := filepath.Ext(path); strings.ToLower(ext) != ".json" {
		return Result{}, configErrorf(path, "Unsupported config file type '%s'. Use .json.", ext)
	}

	data, err := loadJSON(path)
	if err != nil {
		return Result{}, err
	}
	return ValidateConfig(data, path)
}

// loadJSON parses the file into a raw mapping. Numbers are kept as
// json.Number so validation can tell integers from floats.
func loadJSON(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &ConfigError{
				Path:    path,
				Message: fmt.Sprintf("Config file not found: %s", path),
				Err:     ErrConfigNotFound,
			}
		}
		return nil, &ConfigError{
			Path:    path,
			Message: fmt.Sprintf("Failed to read config file: %v", err),
			Err:     err,
		}
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var parsed any
	if err := decoder.Decode(&parsed); err != nil {
		return nil, &ConfigError{
			Path:    path,
			Message: fmt.Sprintf("Invalid JSON: %v", err),
			Err:     err,
		}
	}
	if decoder.More() {
		return nil, configErrorf(path, "Invalid JSON: unexpected data after top-level value.")
	}

	data, ok := parsed.(map[string]any)
	if !ok {
		return nil, configErrorf(path, "JSON config root must be an object.")
	}
	return data, nil
}
