// Package log provides structured logging for the fixstr foundation and its
// command-line front end.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              pluggable formatters (JSON, text, console, logfmt), operation
//              timers and severity-aware logging of foundation errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-02-10 v0.2.0: Correlation IDs only, JSON via sonnet, sorted field output
//
// Loggers are values: every With* method returns a new Logger and leaves the
// receiver untouched, so a base logger can be shared and specialized per
// command.
//
// Usage:
//
//	import fxlog "github.com/msto63/fixstr/foundation/core/log"
//
//	logger := fxlog.NewWithConfig(fxlog.Config{
//		Level:  fxlog.LevelDebug,
//		Format: fxlog.FormatLogfmt,
//	}).WithCorrelationID(id)
//
//	timer := logger.StartTimer("find")
//	idx := s.Find(target, 0, 0)
//	timer.WithField("index", idx).Stop()
//
//	if _, err := s.Substring(4, 2); err != nil {
//		logger.LogError(err) // low severity errors log at info
//	}
package log
