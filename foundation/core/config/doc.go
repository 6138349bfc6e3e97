// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML configuration with
//              environment overrides and typed, dot-notation access.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-02-10 v0.2.0: Reduced to loading, discovery and typed access

/*
Package config provides configuration loading for fixstr tools.

Files are TOML (github.com/BurntSushi/toml) or YAML (gopkg.in/yaml.v3),
chosen by extension. Values are addressed with dot notation, so
"general.log_level" reads log_level from the [general] table.

When an environment prefix is configured, a non-empty variable named
PREFIX_SECTION_KEY wins over the file:

	cfg, err := config.LoadWithOptions("fixstr.toml", config.LoadOptions{
		EnvPrefix: "FIXSTR",
		Defaults:  map[string]interface{}{"output": map[string]interface{}{"format": "text"}},
	})
	level := cfg.GetString("general.log_level", "info") // FIXSTR_GENERAL_LOG_LEVEL overrides

Discover searches a list of directories for the first existing file and
falls back to defaults when nothing is found.

Errors are foundation errors: a missing file carries NOT_FOUND, an
unreadable or malformed file CONFIG_ERROR.
*/
package config
