// FILE: medit/config/schema.go
package config

import (
	"encoding/json"
	"fmt"
)

// CommandsConfig holds settings for medit's command bar.
type CommandsConfig struct {
	// Separator splits chained commands typed on a single line.
	Separator string `json:"separator"`
}

// MeditConfig is the fully resolved editor configuration. Values are copies;
// mutating a returned MeditConfig does not affect the cached result.
type MeditConfig struct {
	Commands CommandsConfig `json:"commands"`
}

var builtinDefaults = MeditConfig{
	Commands: CommandsConfig{
		Separator: ",",
	},
}

// DefaultConfig returns the built-in default configuration.
func DefaultConfig() MeditConfig {
	return builtinDefaults
}

// Option describes a single named, defaulted, validated leaf value within a
// section. Validators run in order, each receiving the previous output; an
// option without validators gets generic coercion against its default's type.
type Option struct {
	Name       string
	Default    any
	Validators []FieldValidator
}

// Section is a named group of related options.
type Section struct {
	Name    string
	Options []Option
}

// meditSchema is the declared shape of the config file. Order matters: the
// validator walks sections and options in declaration order. Extend the
// schema by adding sections/options here together with the matching field on
// the typed structs above.
var meditSchema = []Section{
	{
		Name: "commands",
		Options: []Option{
			{
				Name:    "separator",
				Default: builtinDefaults.Commands.Separator,
				Validators: []FieldValidator{
					ValidateString(StringRule{
						Label:      "Command separator",
						NonEmpty:   true,
						NoNewlines: true,
					}),
				},
			},
		},
	},
}

// DefaultConfigData returns the schema defaults as a nested map, shaped like
// a parsed config file.
func DefaultConfigData() map[string]any {
	data := make(map[string]any, len(meditSchema))
	for _, section := range meditSchema {
		options := make(map[string]any, len(section.Options))
		for _, opt := range section.Options {
			options[opt.Name] = opt.Default
		}
		data[section.Name] = options
	}
	return data
}

// DefaultConfigText renders the default config the way it is written to disk:
// 2-space indentation, sorted keys, trailing newline.
func DefaultConfigText() string {
	out, err := json.MarshalIndent(DefaultConfigData(), "", "  ")
	if err != nil {
		// Schema defaults are plain JSON values; this indicates a broken schema.
		panic(fmt.Sprintf("config: cannot marshal default config: %v", err))
	}
	return string(out) + "\n"
}
