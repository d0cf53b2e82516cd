// FILE: medit/config/discovery.go
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "medit"

// Environment variables that override config file discovery. EnvConfig is
// checked first; EnvConfigLegacy is the pre-rename fallback.
const (
	EnvConfig       = "MEDIT_CONFIG"
	EnvConfigLegacy = "MICROEDIT_CONFIG"
)

// EnvConfigPath returns the config path from the environment override, with
// ~ and $VAR expansion applied. The second return value reports whether an
// override is set; the path is returned as-is even when no file exists there
// (a set-but-missing override is a hard error, decided by the caller).
func EnvConfigPath() (string, bool) {
	raw := os.Getenv(EnvConfig)
	if raw == "" {
		raw = os.Getenv(EnvConfigLegacy)
	}
	if raw == "" {
		return "", false
	}
	return expandPath(raw), true
}

// SearchPaths returns config file paths in the order they are considered:
// project-local files in the current working directory, then the user config
// file.
func SearchPaths() []string {
	var paths []string

	// Local (project) config.
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths,
			filepath.Join(cwd, "medit.json"),
			filepath.Join(cwd, ".medit.json"),
		)
	}

	// User config.
	paths = append(paths, DefaultConfigPath())

	return paths
}

// DefaultConfigPath returns the user-level config path, where a default file
// is materialized when no config exists anywhere.
func DefaultConfigPath() string {
	return filepath.Join(userConfigDir(appName), "config.json")
}

// DiscoverConfigPath picks the config source: the environment override wins
// outright when set; otherwise the first existing regular file from
// SearchPaths. Returns false when no override is set and no file exists.
func DiscoverConfigPath() (string, bool) {
	if path, ok := EnvConfigPath(); ok {
		return path, true
	}
	for _, path := range SearchPaths() {
		if isRegularFile(path) {
			return path, true
		}
	}
	return "", false
}

// userConfigDir returns the per-user settings directory following the host
// OS convention.
func userConfigDir(appName string) string {
	switch runtime.GOOS {
	case "windows":
		if base := os.Getenv("APPDATA"); base != "" {
			return filepath.Join(base, appName)
		}
		if base := os.Getenv("LOCALAPPDATA"); base != "" {
			return filepath.Join(base, appName)
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "AppData", "Roaming", appName)
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", appName)
	default:
		if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
			return filepath.Join(base, appName)
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// expandPath expands a leading ~ to the user's home directory, then expands
// $VAR environment references.
func expandPath(raw string) string {
	if raw == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			raw = home
		}
	} else if len(raw) > 1 && raw[0] == '~' && (raw[1] == '/' || raw[1] == filepath.Separator) {
		if home, err := os.UserHomeDir(); err == nil {
			raw = filepath.Join(home, raw[2:])
		}
	}
	return os.ExpandEnv(raw)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
