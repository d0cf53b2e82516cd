package config

import (
	"errors"
	"fmt"
	"sync"
)

// Diagnostics records how config resolution went: zero or more warnings
// (unknown keys) and at most one error. A non-empty Error means the config
// fell back to the built-in defaults.
type Diagnostics struct {
	// Path is the file the diagnostics refer to, when one is known.
	Path string

	// Warnings are non-fatal, in the order they were found.
	Warnings []string

	// Error is the single fatal message, empty on success.
	Error string
}

// Result pairs a resolved config with its diagnostics.
type Result struct {
	Config      MeditConfig
	Diagnostics Diagnostics
}

// Service resolves the config once and memoizes the result. The zero value
// is not usable; construct with NewService. Most callers should use the
// package-level GetConfig/GetConfigResult instead; a dedicated Service gives
// tests an isolated cache.
type Service struct {
	mu     sync.Mutex
	cached *Result
}

// NewService creates a Service with an empty cache.
func NewService() *Service {
	return &Service{}
}

// Result returns the resolved config and diagnostics, loading them on the
// first call. Resolution never returns an error: failures degrade to the
// built-in defaults with Diagnostics.Error set.
func (s *Service) Result() Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached == nil {
		result := resolve()
		s.cached = &result
	}
	return *s.cached
}

// Config returns the resolved config, loading it on the first call.
func (s *Service) Config() MeditConfig {
	return s.Result().Config
}

// ClearCache drops the memoized result so the next call resolves again.
// Intended for test isolation, not production use.
func (s *Service) ClearCache() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}

// resolve runs the full discovery/load/validate pipeline once.
func resolve() Result {
	// A set-but-missing environment override is a hard error with no
	// fallback to the other search paths.
	if envPath, ok := EnvConfigPath(); ok && !isRegularFile(envPath) {
		return Result{
			Config: DefaultConfig(),
			Diagnostics: Diagnostics{
				Path:  envPath,
				Error: fmt.Sprintf("Config file from $%s not found: %s", EnvConfig, envPath),
			},
		}
	}

	configPath, found := DiscoverConfigPath()
	if !found {
		// No config exists yet: try to create a default one in the user
		// config dir, then load it through the normal path.
		configPath = DefaultConfigPath()
		if err := WriteDefaultConfig(configPath); err != nil {
			return Result{
				Config: DefaultConfig(),
				Diagnostics: Diagnostics{
					Path:  configPath,
					Error: fmt.Sprintf("Failed to create default config: %v", err),
				},
			}
		}
	}

	result, err := LoadConfig(configPath)
	if err != nil {
		diagPath := configPath
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) && cfgErr.Path != "" {
			diagPath = cfgErr.Path
		}
		return Result{
			Config: DefaultConfig(),
			Diagnostics: Diagnostics{
				Path:  diagPath,
				Error: err.Error(),
			},
		}
	}
	return result
}

var defaultService = NewService()

// GetConfigResult returns the process-wide cached Result.
func GetConfigResult() Result {
	return defaultService.Result()
}

// GetConfig returns the process-wide cached config. It always succeeds.
func GetConfig() MeditConfig {
	return defaultService.Config()
}

// ClearConfigCache resets the process-wide cache. Test hook.
func ClearConfigCache() {
	defaultService.ClearCache()
}
