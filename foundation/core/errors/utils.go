// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent builder and standard constructors used by every
//              foundation package instead of fmt.Errorf or errors.New.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-02-10 v0.2.0: InvalidBounds and numeric parse errors for fixstr

package errors

import (
	"fmt"

	fxerror "github.com/msto63/fixstr/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  fxerror.Severity
	code      fxerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: fxerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity fxerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code fxerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *fxerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *fxerror.Error
	if eb.cause != nil {
		err = fxerror.Wrap(eb.cause, eb.message)
	} else {
		err = fxerror.New(eb.message)
	}

	if eb.operation != "" {
		err = err.WithOperation(eb.module + "." + eb.operation)
	}

	return err.
		WithCode(eb.code).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *fxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s", module, operation).
		Code(fxerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(fxerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *fxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format in %s.%s", module, operation).
		Code(fxerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(fxerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *fxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("validation failed: value out of range in %s.%s", module, operation).
		Code(fxerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(fxerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *fxerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s operation failed", module, operation).
		Cause(cause).
		Severity(fxerror.SeverityHigh).
		Build()
}

// InvalidBounds reports a slice request whose bounds violate 0 <= begin <= end <= length.
func InvalidBounds(operation string, begin, end, length int) *fxerror.Error {
	reason := "begin is greater than end"
	switch {
	case begin < 0:
		reason = "begin is negative"
	case end > length:
		reason = "end is greater than string length"
	}

	return NewErrorBuilder(ModuleFixstr).
		Operation(operation).
		Messagef("%s: invalid bounds [%d, %d) for length %d: %s", operation, begin, end, length, reason).
		Code(fxerror.CodeInvalidBounds).
		Detail("begin", begin).
		Detail("end", end).
		Detail("length", length).
		Severity(fxerror.SeverityLow).
		Build()
}

// FixstrInvalidNumber reports a non-decimal unit found while parsing.
func FixstrInvalidNumber(operation, input string, position int) *fxerror.Error {
	err := InvalidFormat(ModuleFixstr, operation, input, "optionally signed decimal digits")
	return err.WithDetail("position", position)
}

// FixstrOverflow reports a decimal value that does not fit the target width.
func FixstrOverflow(operation, input string, min, max interface{}) *fxerror.Error {
	return OutOfRange(ModuleFixstr, operation, input, min, max)
}

// ConfigError reports a configuration file that could not be read or parsed.
func ConfigError(operation, path string, cause error) *fxerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Messagef("config.%s failed for %s", operation, path).
		Cause(cause).
		Code(fxerror.CodeConfigError).
		Detail("path", path).
		Severity(fxerror.SeverityHigh).
		Build()
}
