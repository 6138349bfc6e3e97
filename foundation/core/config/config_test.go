// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, defaults, environment overrides,
//              key paths and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-02-10 v0.2.0: Rewritten for the reduced configuration surface

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	fxerror "github.com/msto63/fixstr/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, dir, "fixstr.toml", `
[general]
log_level = "debug"
retries = 3
timeout = "250ms"

[output]
format = "json"
wide = true
columns = ["index", "unit"]
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatTOML || cfg.FilePath() != path {
			t.Errorf("Format() = %v, FilePath() = %q", cfg.Format(), cfg.FilePath())
		}
		if got := cfg.GetString("general.log_level"); got != "debug" {
			t.Errorf("GetString(general.log_level) = %q, want debug", got)
		}
		if got := cfg.GetInt("general.retries"); got != 3 {
			t.Errorf("GetInt(general.retries) = %d, want 3", got)
		}
		if got := cfg.GetDuration("general.timeout"); got != 250*time.Millisecond {
			t.Errorf("GetDuration(general.timeout) = %v, want 250ms", got)
		}
		if !cfg.GetBool("output.wide") {
			t.Error("GetBool(output.wide) = false, want true")
		}
		if got := cfg.GetStringSlice("output.columns"); !reflect.DeepEqual(got, []string{"index", "unit"}) {
			t.Errorf("GetStringSlice(output.columns) = %v", got)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, dir, "fixstr.yaml", "general:\n  log_level: warn\n  ratio: 0.5\noutput:\n  format: text\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
		if got := cfg.GetString("general.log_level"); got != "warn" {
			t.Errorf("GetString(general.log_level) = %q, want warn", got)
		}
		if got := cfg.GetFloat("general.ratio"); got != 0.5 {
			t.Errorf("GetFloat(general.ratio) = %v, want 0.5", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.toml"))
		if !fxerror.HasCode(err, fxerror.CodeNotFound) {
			t.Errorf("Load(missing) error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("  ")
		if !fxerror.HasCode(err, fxerror.CodeValidationFailed) {
			t.Errorf("Load(blank) error = %v, want VALIDATION_FAILED", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		path := writeFile(t, dir, "broken.toml", "[general\nlog_level = ")
		_, err := Load(path)
		if !fxerror.HasCode(err, fxerror.CodeConfigError) {
			t.Errorf("Load(broken) error = %v, want CONFIG_ERROR", err)
		}
	})
}

func TestDefaultsAndMerge(t *testing.T) {
	defaults := map[string]interface{}{
		"general": map[string]interface{}{"log_level": "info", "log_format": "text"},
		"output":  map[string]interface{}{"format": "text"},
	}
	cfg, err := LoadFromString("[general]\nlog_level = \"error\"\n", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	merged := &Config{data: mergeDefaults(cfg.GetAll(), defaults)}

	if got := merged.GetString("general.log_level"); got != "error" {
		t.Errorf("file value lost: %q", got)
	}
	if got := merged.GetString("general.log_format"); got != "text" {
		t.Errorf("nested default lost: %q", got)
	}
	if got := merged.GetString("output.format"); got != "text" {
		t.Errorf("table default lost: %q", got)
	}
	if defaults["general"].(map[string]interface{})["log_level"] != "info" {
		t.Error("merge modified the defaults")
	}
}

func TestGetterDefaults(t *testing.T) {
	cfg := New(nil, "")

	if got := cfg.GetString("a.b", "x"); got != "x" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("a.b", 7); got != 7 {
		t.Errorf("GetInt default = %d", got)
	}
	if got := cfg.GetBool("a.b", true); !got {
		t.Error("GetBool default = false")
	}
	if got := cfg.GetDuration("a.b", time.Second); got != time.Second {
		t.Errorf("GetDuration default = %v", got)
	}
	if got := cfg.GetString("a.b"); got != "" {
		t.Errorf("GetString without default = %q", got)
	}
	if cfg.Has("a.b") {
		t.Error("Has(a.b) = true on empty config")
	}
}

func TestEnvOverride(t *testing.T) {
	cfg, err := LoadFromString("[output]\nformat = \"text\"\nwide = false\n", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	cfg.envPrefix = "FIXSTR"

	if got := cfg.EnvKey("output.format"); got != "FIXSTR_OUTPUT_FORMAT" {
		t.Errorf("EnvKey() = %q", got)
	}

	t.Setenv("FIXSTR_OUTPUT_FORMAT", "json")
	t.Setenv("FIXSTR_OUTPUT_WIDE", "true")
	t.Setenv("FIXSTR_OUTPUT_COLUMNS", "index, unit,,hash")

	if got := cfg.GetString("output.format"); got != "json" {
		t.Errorf("GetString(output.format) = %q, want json from env", got)
	}
	if !cfg.GetBool("output.wide") {
		t.Error("GetBool(output.wide) should come from env")
	}
	if got := cfg.GetStringSlice("output.columns"); !reflect.DeepEqual(got, []string{"index", "unit", "hash"}) {
		t.Errorf("GetStringSlice from env = %v", got)
	}
}

func TestSetAndKeys(t *testing.T) {
	cfg := New(nil, "")
	cfg.Set("output.format", "json")
	cfg.Set("general.log_level", "debug")
	cfg.Set("flat", 1)

	want := []string{"flat", "general.log_level", "output.format"}
	if got := cfg.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if got := cfg.GetInt("flat"); got != 1 {
		t.Errorf("GetInt(flat) = %d", got)
	}
}

func TestSplitKey(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"a", []string{"a"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{"a..b", []string{"a", "", "b"}},
		{"", []string{""}},
		{"a.", []string{"a", ""}},
	}

	for _, tt := range tests {
		if got := splitKey(tt.key); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitKey(%q) = %q; want %q", tt.key, got, tt.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{
		Paths:      []string{dir},
		Filenames:  []string{"fixstr"},
		Extensions: []string{".toml", ".yaml"},
		Defaults:   map[string]interface{}{"output": map[string]interface{}{"format": "text"}},
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatalf("Discover() without file error = %v", err)
	}
	if got := cfg.GetString("output.format"); got != "text" {
		t.Errorf("defaults-only config output.format = %q", got)
	}

	opts.Required = true
	if _, err := Discover(opts); !fxerror.HasCode(err, fxerror.CodeNotFound) {
		t.Errorf("required Discover() error = %v, want NOT_FOUND", err)
	}

	writeFile(t, dir, "fixstr.yaml", "output:\n  format: json\n")
	cfg, err = Discover(opts)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got := cfg.GetString("output.format"); got != "json" {
		t.Errorf("discovered output.format = %q, want json", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("FXTEST_GENERAL_LOG_LEVEL", "trace")
	t.Setenv("FXTEST_OUTPUT_WIDE", "true")

	cfg := LoadFromEnv("fxtest")
	if got := cfg.GetString("general.log.level"); got != "trace" {
		t.Errorf("general.log.level = %q, want trace", got)
	}
	if !cfg.GetBool("output.wide") {
		t.Error("output.wide should parse as bool")
	}
}
