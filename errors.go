package config

import (
	"errors"
	"fmt"
)

// ErrConfigNotFound indicates no config file exists at the checked path.
var ErrConfigNotFound = errors.New("config file not found")

// ConfigError reports a config file that exists but cannot be parsed or
// validated. The message is user-facing; Path attributes it to a file when
// one is known.
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error, if any.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// configErrorf builds a ConfigError with a formatted message.
func configErrorf(path, format string, args ...any) *ConfigError {
	return &ConfigError{Path: path, Message: fmt.Sprintf(format, args...)}
}
