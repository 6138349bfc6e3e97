// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the severity
//              to choose the level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-02-10 v0.2.0: Severity mapping for the fixstr code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates caller mistakes such as bad bounds or malformed digits
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error, e.g. an unreadable configuration file
	SeverityHigh

	// SeverityCritical indicates an internal invariant violation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidBounds, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidConfig:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
