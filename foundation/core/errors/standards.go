// File: standards.go
// Title: Error Standards for the fixstr Foundation
// Description: Module identifiers and the helpers that read module/operation
//              context back out of standardized errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-10
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-02-10 v0.2.0: Module set reduced to fixstr, config and log

package errors

import (
	fxerror "github.com/msto63/fixstr/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleFixstr = "fixstr"
	ModuleConfig = "config"
	ModuleLog    = "log"
	ModuleCLI    = "cli"
)

// getModuleErrorCode returns the default error code for a module operation
func getModuleErrorCode(module, operation string) fxerror.Code {
	switch module {
	case ModuleFixstr:
		switch operation {
		case "substring", "prefix", "suffix", "split":
			return fxerror.CodeInvalidBounds
		case "parse_int", "parse_uint":
			return fxerror.CodeInvalidFormat
		}
		return fxerror.CodeInvalidInput
	case ModuleConfig:
		return fxerror.CodeConfigError
	default:
		return fxerror.CodeUnknown
	}
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// ExtractDetails extracts all details from a foundation error
func ExtractDetails(err error) map[string]interface{} {
	if fe, ok := err.(*fxerror.Error); ok {
		return fe.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
