// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter output, with parsing from
//              configuration strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-02-10 v0.2.0: Parse errors use the foundation error builders

package log

import (
	"strings"

	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	// LevelAudit entries are written regardless of the configured level.
	LevelAudit
)

var levelNames = [...]struct{ long, short, color string }{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelFatal: {"fatal", "FTL", "\033[35m"},
	LevelAudit: {"audit", "AUD", "\033[34m"},
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelAudit
}

// String returns the lower-case level name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three-letter level tag used by text output
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Color returns the ANSI color sequence for console output
func (l Level) Color() string {
	if !l.valid() {
		return colorReset
	}
	return levelNames[l].color
}

const colorReset = "\033[0m"

// ShouldLog reports whether an entry at level l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a level name or its short tag, case-insensitively.
func ParseLevel(level string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	switch name {
	case "information":
		return LevelInfo, nil
	case "warning":
		return LevelWarn, nil
	case "err":
		return LevelError, nil
	}
	for _, l := range AllLevels() {
		if name == levelNames[l].long || name == strings.ToLower(levelNames[l].short) {
			return l, nil
		}
	}
	return LevelInfo, fxerrors.InvalidInput(fxerrors.ModuleLog, "parse_level", level,
		"one of trace, debug, info, warn, error, fatal, audit")
}

// AllLevels returns all levels in ascending order
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal, LevelAudit}
}

// DefaultLevel returns the level used when nothing is configured
func DefaultLevel() Level {
	return LevelInfo
}
