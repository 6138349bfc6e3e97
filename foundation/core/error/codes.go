// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the fixstr foundation to
//              classify failures of string construction, slicing, numeric
//              parsing and configuration loading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-02-10 v0.2.0: Reduced to the codes used by fixstr, added INVALID_BOUNDS

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// String value codes
	CodeInvalidBounds   Code = "INVALID_BOUNDS"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidBounds, CodeInvalidFormat, CodeValueOutOfRange,
		CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidBounds, CodeInvalidFormat, CodeValueOutOfRange:
		return "string"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeInvalidInput, CodeValidationFailed:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for command-line use.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "string", "validation":
		return 2
	case "configuration":
		return 3
	default:
		return 1
	}
}
