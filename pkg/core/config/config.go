// ============================================================================
// fixstr - Fixed-length immutable strings
// ============================================================================
//
// Package:     config
// Description: Typed CLI configuration bound from the foundation config layer
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	fxconfig "github.com/msto63/fixstr/foundation/core/config"
	fxerror "github.com/msto63/fixstr/foundation/core/error"
	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
	fxlog "github.com/msto63/fixstr/foundation/core/log"
)

// EnvPrefix is the prefix of environment overrides, e.g. FIXSTR_OUTPUT_FORMAT
const EnvPrefix = "FIXSTR"

// Config holds the complete CLI configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Output  OutputConfig  `toml:"output"`

	// Source is the file the values came from; empty when only defaults and env apply
	Source string `toml:"-"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	LogCaller bool   `toml:"log_caller"`
}

// OutputConfig holds result rendering settings
type OutputConfig struct {
	Format string `toml:"format"` // text or json
	Wide   bool   `toml:"wide"`
	Color  bool   `toml:"color"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "text",
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

func (c *Config) defaults() map[string]interface{} {
	return map[string]interface{}{
		"general": map[string]interface{}{
			"log_level":  c.General.LogLevel,
			"log_format": c.General.LogFormat,
			"log_caller": c.General.LogCaller,
		},
		"output": map[string]interface{}{
			"format": c.Output.Format,
			"wide":   c.Output.Wide,
			"color":  c.Output.Color,
		},
	}
}

// Load reads the configuration at path. An empty path searches the default
// locations and falls back to the defaults when no file exists. FIXSTR_*
// environment variables override file values in both cases.
func Load(path string) (*Config, error) {
	def := Default()

	var (
		src *fxconfig.Config
		err error
	)
	if path == "" {
		opts := fxconfig.DefaultDiscoveryOptions()
		opts.EnvPrefix = EnvPrefix
		opts.Defaults = def.defaults()
		src, err = fxconfig.Discover(opts)
	} else {
		src, err = fxconfig.LoadWithOptions(os.ExpandEnv(path), fxconfig.LoadOptions{
			Format:    fxconfig.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  def.defaults(),
		})
	}
	if err != nil {
		return nil, err
	}

	cfg := FromSource(src, def)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromSource binds a foundation configuration onto the typed fields, keeping
// the values of base where src has no entry.
func FromSource(src *fxconfig.Config, base *Config) *Config {
	cfg := *base
	cfg.General.LogLevel = src.GetString("general.log_level", base.General.LogLevel)
	cfg.General.LogFormat = src.GetString("general.log_format", base.General.LogFormat)
	cfg.General.LogCaller = src.GetBool("general.log_caller", base.General.LogCaller)
	cfg.Output.Format = src.GetString("output.format", base.Output.Format)
	cfg.Output.Wide = src.GetBool("output.wide", base.Output.Wide)
	cfg.Output.Color = src.GetBool("output.color", base.Output.Color)
	cfg.Source = src.FilePath()
	return &cfg
}

// Validate checks that every enumerated setting holds a known value
func (c *Config) Validate() error {
	if _, err := fxlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, "trace, debug, info, warn, error", err)
	}
	if _, err := fxlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, "json, text, console, logfmt", err)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return invalid("output.format", c.Output.Format, "text, json", nil)
	}
	return nil
}

func invalid(key, value, expected string, cause error) *fxerror.Error {
	b := fxerrors.NewErrorBuilder(fxerrors.ModuleConfig).
		Operation("validate").
		Messagef("invalid value %q for %s", value, key).
		Code(fxerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("expected", expected)
	if cause != nil {
		b = b.Cause(cause)
	}
	return b.Build()
}

// WriteTOML writes the effective configuration in the file format Load reads
func (c *Config) WriteTOML(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fxerrors.OperationFailed(fxerrors.ModuleConfig, "write_toml", err)
	}
	return nil
}
