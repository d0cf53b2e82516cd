// medit-config resolves the medit configuration the way the editor does and
// prints the effective values, surfacing any warnings or errors along the
// way. Useful for debugging which file won discovery and why a value was
// rejected.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	config "github.com/LyubomirT/medit-pr"
)

func main() {
	printDefaults := flag.Bool("defaults", false, "print the built-in default config and exit")
	flag.Parse()

	if *printDefaults {
		fmt.Print(config.DefaultConfigText())
		return
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	result := config.GetConfigResult()
	diag := result.Diagnostics

	for _, warning := range diag.Warnings {
		log.Warn().Str("path", diag.Path).Msg(warning)
	}
	if diag.Error != "" {
		log.Error().Str("path", diag.Path).Msg(diag.Error)
	} else if diag.Path != "" {
		log.Info().Str("path", diag.Path).Msg("config loaded")
	}

	out, err := json.MarshalIndent(result.Config, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to encode resolved config")
	}
	fmt.Println(string(out))
}
