// File: logger.go
// Title: Core Logger Implementation
// Description: The Logger type: leveled, structured output with persistent
//              context fields, a correlation ID and severity-aware logging of
//              foundation errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-02-10 v0.2.0: Immutable loggers sharing one write lock, no async mode

package log

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	fxerror "github.com/msto63/fixstr/foundation/core/error"
)

// Logger writes structured entries. All With* methods return a copy; the
// receiver is never modified, so a Logger may be shared freely.
type Logger struct {
	level         Level
	formatter     Formatter
	output        io.Writer
	name          string
	correlationID string
	fields        Fields

	callerSkip   int
	enableCaller bool

	// writes from a logger and all of its copies are serialized
	mu *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a logger writing JSON at the default level to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig creates a logger from config. A nil Output means stderr.
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:        config.Level,
		formatter:    GetFormatter(config.Format),
		output:       output,
		name:         config.Name,
		fields:       make(Fields),
		enableCaller: config.EnableCaller,
		mu:           &sync.Mutex{},
	}
}

func (l *Logger) clone() *Logger {
	c := *l
	c.fields = l.fields.Clone()
	if c.fields == nil {
		c.fields = make(Fields)
	}
	return &c
}

// WithLevel returns a copy with a different minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithName returns a copy with a logger name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// WithCorrelationID returns a copy tagging every entry with id
func (l *Logger) WithCorrelationID(id string) *Logger {
	c := l.clone()
	c.correlationID = id
	return c
}

// WithCaller returns a copy that records the calling function, skipping
// skip additional frames for wrappers.
func (l *Logger) WithCaller(skip int) *Logger {
	c := l.clone()
	c.enableCaller = true
	c.callerSkip = skip
	return c
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	return l.level
}

// IsLevelEnabled reports whether entries at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// CorrelationID returns the correlation ID, if any
func (l *Logger) CorrelationID() string {
	return l.correlationID
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.write(LevelTrace, message, nil, 0, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.write(LevelDebug, message, nil, 0, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.write(LevelInfo, message, nil, 0, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.write(LevelWarn, message, nil, 0, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.write(LevelError, message, nil, 0, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.write(LevelFatal, message, nil, 0, fields...)
	os.Exit(1)
}

// Audit logs a message regardless of the configured level
func (l *Logger) Audit(message string, fields ...Fields) {
	l.write(LevelAudit, message, nil, 0, fields...)
}

// LogError logs err at a level chosen from its severity: low severity
// errors (bad input) at info, medium at warn, high and critical at error.
// Plain errors log at error.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	fe, ok := err.(*fxerror.Error)
	if !ok {
		l.write(LevelError, err.Error(), err, 0, fields...)
		return
	}

	ef := Fields{
		"error_code":     string(fe.Code()),
		"error_severity": fe.Severity().String(),
	}
	if op := fe.Operation(); op != "" {
		ef["error_operation"] = op
	}
	for k, v := range fe.Details() {
		ef["error_"+k] = v
	}

	level := LevelError
	switch fe.Severity() {
	case fxerror.SeverityLow:
		level = LevelInfo
	case fxerror.SeverityMedium:
		level = LevelWarn
	}
	l.write(level, fe.Message(), err, 0, append([]Fields{ef}, fields...)...)
}

// StartTimer starts a Timer that logs through l when stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// write builds and emits one entry. It must be called directly from the
// exported method so the caller frame skip stays fixed.
func (l *Logger) write(level Level, message string, err error, elapsed time.Duration, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.WithFields(l.fields).WithError(err).WithDuration(elapsed)
	for _, fs := range fields {
		entry.WithFields(fs)
	}

	if l.enableCaller {
		if fn, file, line, ok := caller(3 + l.callerSkip); ok {
			entry.WithCaller(fn, file, line)
		}
	}

	formatted, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.output.Write(formatted)
}

func caller(skip int) (function, file string, line int, ok bool) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0, false
	}
	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if i := strings.LastIndex(function, "."); i >= 0 {
			function = function[i+1:]
		}
	}
	return function, filepath.Base(file), line, true
}
