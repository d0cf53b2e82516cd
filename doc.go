// FILE: medit/config/doc.go

// Package config loads, discovers, and validates the JSON configuration
// for the medit text editor.
//
// Config is JSON only. The package never fails the host application: any
// problem with a config file is reported through Diagnostics while the
// built-in defaults are returned in its place.
//
// Discovery order (first hit wins):
//  1. $MEDIT_CONFIG (or $MICROEDIT_CONFIG), with ~ and $VAR expansion.
//     If set but missing, this is a hard diagnostic error with no fallback.
//  2. ./medit.json
//  3. ./.medit.json
//  4. <user-config-dir>/medit/config.json
//
// When no config file exists anywhere, a default one is written to the user
// config directory. If that write fails (permissions, read-only media), the
// in-memory defaults are used and the failure is surfaced as a diagnostic.
//
// Quick Start:
//
//	result := config.GetConfigResult()
//	for _, w := range result.Diagnostics.Warnings {
//	    ui.Notify(w)
//	}
//	if result.Diagnostics.Error != "" {
//	    ui.Notify(result.Diagnostics.Error)
//	}
//	sep := result.Config.Commands.Separator
//
// The resolved result is cached for the lifetime of the process. Use
// ClearConfigCache (or a fresh Service) in tests.
package config
