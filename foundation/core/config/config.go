// File: config.go
// Title: Core Configuration Management Implementation
// Description: Loads TOML or YAML configuration into a nested map and serves
//              typed values by dot-notation key, with environment variables
//              taking precedence when an env prefix is set.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-02-10 v0.2.0: Dropped watching and request context, errors via builders

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	fxerror "github.com/msto63/fixstr/foundation/core/error"
	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
)

// Format represents the configuration file format
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
	// FormatAuto picks the format from the file extension, TOML when unknown.
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Config holds parsed configuration data. It is safe for concurrent use.
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
}

// LoadOptions defines options for loading configuration
type LoadOptions struct {
	Format    Format
	EnvPrefix string
	Defaults  map[string]interface{}
}

// Load loads configuration from a file, detecting the format by extension
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions loads configuration from a file with custom options
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	const op = "load"

	if strings.TrimSpace(filePath) == "" {
		return nil, fxerrors.NewErrorBuilder(fxerrors.ModuleConfig).
			Operation(op).
			Message("config file path cannot be empty").
			Code(fxerror.CodeValidationFailed).
			Build()
	}

	content, err := os.ReadFile(filePath)
	if os.IsNotExist(err) {
		return nil, fxerrors.NewErrorBuilder(fxerrors.ModuleConfig).
			Operation(op).
			Messagef("config file not found: %s", filePath).
			Code(fxerror.CodeNotFound).
			Detail("path", filePath).
			Build()
	}
	if err != nil {
		return nil, fxerrors.ConfigError(op, filePath, err)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, fxerrors.ConfigError(op, filePath, err).WithDetail("format", format.String())
	}

	return &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
	}, nil
}

// LoadFromString parses configuration held in memory
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, fxerrors.ConfigError("load_string", "<string>", err).WithDetail("format", format.String())
	}
	return &Config{data: data, format: format}, nil
}

// New returns a configuration holding only defaults
func New(defaults map[string]interface{}, envPrefix string) *Config {
	return &Config{
		data:      mergeDefaults(nil, defaults),
		format:    FormatAuto,
		envPrefix: envPrefix,
	}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, fxerror.Wrap(err, "TOML parse error").WithCode(fxerror.CodeInvalidFormat)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, fxerror.Wrap(err, "YAML parse error").WithCode(fxerror.CodeInvalidFormat)
		}
	default:
		return nil, fxerrors.InvalidInput(fxerrors.ModuleConfig, "parse", format.String(), "toml or yaml")
	}
	return data, nil
}

// mergeDefaults deep-merges data over defaults into a new map
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := deepCopy(defaults)
	for k, v := range data {
		dm, dok := result[k].(map[string]interface{})
		vm, vok := v.(map[string]interface{})
		if dok && vok {
			result[k] = mergeDefaults(vm, dm)
			continue
		}
		result[k] = v
	}
	return result
}

func deepCopy(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]interface{}); ok {
			v = deepCopy(m)
		}
		dst[k] = v
	}
	return dst
}

// lookup returns the raw value for key and whether it came from the environment
func (c *Config) lookup(key string) (interface{}, bool) {
	if env, ok := c.envValue(key); ok {
		return env, true
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return getPath(c.data, key), false
}

func (c *Config) envValue(key string) (string, bool) {
	if c.envPrefix == "" {
		return "", false
	}
	v, ok := os.LookupEnv(c.EnvKey(key))
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// EnvKey returns the environment variable that overrides key:
// prefix "FIXSTR" and key "general.log_level" give FIXSTR_GENERAL_LOG_LEVEL.
func (c *Config) EnvKey(key string) string {
	name := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if c.envPrefix == "" {
		return name
	}
	return strings.ToUpper(c.envPrefix) + "_" + name
}

// GetString returns a string value, or the default when key is unset
func (c *Config) GetString(key string, defaultValue ...string) string {
	value, _ := c.lookup(key)
	switch v := value.(type) {
	case nil:
		return first(defaultValue)
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// GetInt returns an integer value, or the default when key is unset or not numeric
func (c *Config) GetInt(key string, defaultValue ...int) int {
	value, _ := c.lookup(key)
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return first(defaultValue)
}

// GetBool returns a boolean value, or the default when key is unset or not boolean
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	value, _ := c.lookup(key)
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return first(defaultValue)
}

// GetFloat returns a float value, or the default when key is unset or not numeric
func (c *Config) GetFloat(key string, defaultValue ...float64) float64 {
	value, _ := c.lookup(key)
	switch v := value.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return first(defaultValue)
}

// GetDuration returns a duration value. Strings use time.ParseDuration; bare
// integers count nanoseconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	value, _ := c.lookup(key)
	switch v := value.(type) {
	case string:
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			return d
		}
	case int:
		return time.Duration(v)
	case int64:
		return time.Duration(v)
	}
	return first(defaultValue)
}

// GetStringSlice returns a list value. From the environment the list is comma separated.
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	value, fromEnv := c.lookup(key)
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprintf("%v", item)
		}
		return out
	case string:
		if fromEnv {
			return splitList(v)
		}
		return []string{v}
	}
	return first(defaultValue)
}

func first[T any](values []T) T {
	var zero T
	if len(values) > 0 {
		return values[0]
	}
	return zero
}

// Has reports whether key is set in the data or the environment
func (c *Config) Has(key string) bool {
	v, _ := c.lookup(key)
	return v != nil
}

// Set stores value under key, creating intermediate tables as needed
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = make(map[string]interface{})
	}
	setPath(c.data, key, value)
}

// GetAll returns a deep copy of the configuration data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopy(c.data)
}

// Keys returns every leaf key in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var keys []string
	collectKeys(c.data, "", &keys)
	sort.Strings(keys)
	return keys
}

func collectKeys(m map[string]interface{}, prefix string, keys *[]string) {
	for k, v := range m {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		if sub, ok := v.(map[string]interface{}); ok {
			collectKeys(sub, full, keys)
			continue
		}
		*keys = append(*keys, full)
	}
}

// FilePath returns the path the configuration was loaded from, if any
func (c *Config) FilePath() string {
	return c.filePath
}

// Format returns the format the configuration was parsed as
func (c *Config) Format() Format {
	return c.format
}

// String returns a short description for logging
func (c *Config) String() string {
	return fmt.Sprintf("Config{file=%q, format=%s, keys=%d}", c.filePath, c.format, len(c.Keys()))
}
