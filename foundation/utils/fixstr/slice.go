// File: slice.go
// Title: Shape-Transforming Operations
// Description: Substring, prefix, suffix, split and reverse. Bounds are
//              checked once before any unit is copied; each result owns a
//              freshly allocated buffer sized from the bounds.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package fixstr

import fxerrors "github.com/msto63/fixstr/foundation/core/errors"

// Substring returns the units in [begin, end). It fails with an
// INVALID_BOUNDS error unless 0 <= begin <= end <= Len().
func (s String[U]) Substring(begin, end int) (String[U], error) {
	return s.substring("substring", begin, end)
}

func (s String[U]) substring(op string, begin, end int) (String[U], error) {
	n := s.Len()
	if begin < 0 || begin > end || end > n {
		return String[U]{}, fxerrors.InvalidBounds(op, begin, end, n)
	}
	buf := make([]U, end-begin+1)
	copy(buf, s.units[begin:end])
	return String[U]{units: buf}, nil
}

// Prefix returns the first end units.
func (s String[U]) Prefix(end int) (String[U], error) {
	return s.substring("prefix", 0, end)
}

// Suffix returns the units from begin to the end of s.
func (s String[U]) Suffix(begin int) (String[U], error) {
	return s.substring("suffix", begin, s.Len())
}

// Split cuts s around the unit at index and returns the parts before and
// after it; the unit itself is dropped. Index must lie inside the content.
func (s String[U]) Split(index int) (String[U], String[U], error) {
	n := s.Len()
	if index < 0 || index >= n {
		return String[U]{}, String[U]{}, fxerrors.InvalidBounds("split", index, index+1, n)
	}
	head, _ := s.substring("split", 0, index)
	tail, _ := s.substring("split", index+1, n)
	return head, tail, nil
}

// MustSubstring is like Substring but panics on invalid bounds.
func (s String[U]) MustSubstring(begin, end int) String[U] {
	r, err := s.Substring(begin, end)
	if err != nil {
		panic(err)
	}
	return r
}

// MustPrefix is like Prefix but panics on invalid bounds.
func (s String[U]) MustPrefix(end int) String[U] {
	r, err := s.Prefix(end)
	if err != nil {
		panic(err)
	}
	return r
}

// MustSuffix is like Suffix but panics on invalid bounds.
func (s String[U]) MustSuffix(begin int) String[U] {
	r, err := s.Suffix(begin)
	if err != nil {
		panic(err)
	}
	return r
}

// MustSplit is like Split but panics on an invalid index.
func (s String[U]) MustSplit(index int) (String[U], String[U]) {
	head, tail, err := s.Split(index)
	if err != nil {
		panic(err)
	}
	return head, tail
}

// Reverse returns the content of s in reverse order.
func (s String[U]) Reverse() String[U] {
	n := s.Len()
	buf := make([]U, n+1)
	for i := 0; i < n; i++ {
		buf[i] = s.units[n-1-i]
	}
	return String[U]{units: buf}
}
