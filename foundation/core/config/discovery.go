// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds the first existing configuration file among candidate
//              directories, base names and extensions, and builds a purely
//              environment-backed configuration when none exists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-02-10 v0.2.0: Defaults for the fixstr CLI, optional discovery

package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	fxerror "github.com/msto63/fixstr/foundation/core/error"
	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
)

// DiscoveryOptions defines where to look for a configuration file
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}
	// Required makes a missing file an error instead of a defaults-only Config.
	Required bool
}

// DefaultDiscoveryOptions searches the working directory and the user
// config directory for fixstr.toml, fixstr.yaml or fixstr.yml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "fixstr"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"fixstr", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "FIXSTR",
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var files []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				files = append(files, filepath.Join(dir, name+ext))
			}
		}
	}
	return files
}

// FindConfigFile returns the first candidate that exists as a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}
	return "", fxerrors.NewErrorBuilder(fxerrors.ModuleConfig).
		Operation("discover").
		Message("no configuration file found").
		Code(fxerror.CodeNotFound).
		Detail("searched", candidates).
		Build()
}

// Discover loads the first configuration file found. Without a file it
// returns a Config holding only the defaults, unless options.Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(options.Defaults, options.EnvPrefix), nil
	}
	return LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
}

// LoadFromEnv builds a configuration from every variable carrying prefix:
// FIXSTR_OUTPUT_FORMAT=json becomes output.format = "json". Without a
// prefix the whole environment is read.
func LoadFromEnv(envPrefix string) *Config {
	data := make(map[string]interface{})
	prefix := ""
	if envPrefix != "" {
		prefix = strings.ToUpper(envPrefix) + "_"
	}

	for _, env := range os.Environ() {
		key, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, prefix) {
			continue
		}
		key = strings.TrimPrefix(key, prefix)
		if key == "" {
			continue
		}
		setPath(data, strings.ToLower(strings.ReplaceAll(key, "_", ".")), parseEnvValue(value))
	}

	return &Config{data: data, format: FormatAuto, envPrefix: envPrefix}
}

func parseEnvValue(value string) interface{} {
	if b, err := strconv.ParseBool(value); err == nil && (value == "true" || value == "false") {
		return b
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
