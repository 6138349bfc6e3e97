// File: doc.go
// Title: Package Documentation for errors
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-02-10

// Package errors holds the standard constructors every foundation package uses
// to build *error.Error values. Each error records the module and operation it
// came from in its details, so callers can route on IsModuleOperation without
// parsing messages.
//
//	if errors.IsModuleOperation(err, errors.ModuleFixstr, "substring") {
//	    // bounds were wrong
//	}
package errors
