// ============================================================================
// fixstr - Fixed-length immutable strings
// ============================================================================
//
// Package:     logging
// Description: Factory for foundation loggers configured from CLI settings
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	fxlog "github.com/msto63/fixstr/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name appears as the logger field of every entry
	Name string

	// Level is a level name (trace, debug, info, warn, error); unknown means info
	Level string

	// Format is json, text, console or logfmt; unknown means text
	Format string

	// Output defaults to stderr so command results on stdout stay clean
	Output io.Writer

	// AdditionalOutputs receive a copy of every entry
	AdditionalOutputs []io.Writer

	// CorrelationID tags every entry; empty generates a new one
	CorrelationID string

	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a foundation logger from cfg
func NewLogger(cfg LoggerConfig) *fxlog.Logger {
	level, err := fxlog.ParseLevel(cfg.Level)
	if err != nil {
		level = fxlog.LevelInfo
	}
	format, err := fxlog.ParseFormat(cfg.Format)
	if err != nil {
		format = fxlog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		output = io.MultiWriter(append([]io.Writer{output}, cfg.AdditionalOutputs...)...)
	}

	id := cfg.CorrelationID
	if id == "" {
		id = NewCorrelationID()
	}

	return fxlog.NewWithConfig(fxlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	}).WithCorrelationID(id)
}

// NewCorrelationID returns a fresh random ID for one CLI invocation
func NewCorrelationID() string {
	return uuid.NewString()
}
