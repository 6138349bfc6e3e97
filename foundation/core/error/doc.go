// File: doc.go
// Title: Package Documentation for error
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-10

// Package error provides the structured error type used throughout the fixstr
// foundation: a message with an optional cause, a Code, a Severity, free-form
// details and the stack at the point of creation.
//
// Errors are built fluently:
//
//	err := error.New("begin exceeds end").
//	    WithCode(error.CodeInvalidBounds).
//	    WithDetail("begin", 4).
//	    WithDetail("end", 2)
//
// The type implements Unwrap, so errors.Is and errors.As work across wrapped
// chains, and MarshalJSON, so the log package can embed it in JSON entries.
package error
