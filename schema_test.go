package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDefaultConfig tests the built-in defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ",", cfg.Commands.Separator)
}

// TestDefaultConfigData tests the nested defaults tree
func TestDefaultConfigData(t *testing.T) {
	data := DefaultConfigData()
	assert.Equal(t, map[string]any{
		"commands": map[string]any{
			"separator": ",",
		},
	}, data)
}

// TestDefaultConfigText tests the exact on-disk rendering of the defaults
func TestDefaultConfigText(t *testing.T) {
	want := "{\n  \"commands\": {\n    \"separator\": \",\"\n  }\n}\n"
	assert.Equal(t, want, DefaultConfigText())
}

// TestSchemaMatchesTypedConfig guards against the schema table drifting from
// the MeditConfig struct: every declared option must survive validation into
// the typed config unchanged.
func TestSchemaMatchesTypedConfig(t *testing.T) {
	result, err := ValidateConfig(DefaultConfigData(), "")
	assert.NoError(t, err)
	assert.Equal(t, DefaultConfig(), result.Config)
}
