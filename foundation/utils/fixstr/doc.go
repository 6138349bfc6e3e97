// File: doc.go
// Title: Package Documentation for fixstr
// Description: Package fixstr provides fixed-length immutable strings whose
//              length is part of the value and never changes after creation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial package documentation

// Package fixstr provides fixed-length immutable strings.
//
// Overview
//
// A String[U] is a sequence of code units of type U followed by one zero
// terminator unit. Its length is fixed when the value is built and every
// operation returns a new value instead of modifying its receiver, so values
// can be shared between goroutines without locking.
//
// Every operation that produces a String knows the size of its result before
// copying the first unit: Substring from its bounds, Concat from ConcatLength,
// FromInt from IntLength. Each result is allocated exactly once.
//
// Unit width
//
// U may be byte (Narrow), uint16, rune (Wide) or uint32. Comparison, search
// and hashing work on raw unit values; there is no Unicode segmentation, no
// locale-aware collation and no encoding validation.
//
//	s := fixstr.Of("key=value")
//	i := s.IndexUnit('=')          // 3
//	k, v, _ := s.Split(i)          // "key", "value"
//	n := fixstr.FromInt[byte](-42) // "-42"
//
// Arguments
//
// Operations accept any Like[U]: a String or a Raw unit slice. Raw input ends
// at its first zero unit, the same way a C string would.
//
// Errors
//
// Searches report a miss with NPos and never fail. Slicing with bounds
// outside 0 <= begin <= end <= Len() returns an INVALID_BOUNDS error from
// foundation/core/errors; the Must variants panic instead. ToInt and ToUint
// never fail and give unspecified results for non-digit input; ParseInt and
// ParseUint report INVALID_FORMAT and VALUE_OUT_OF_RANGE.
package fixstr
