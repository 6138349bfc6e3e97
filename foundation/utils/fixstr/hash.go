// File: hash.go
// Title: Counting and Hashing
// Description: Unit counting and the deterministic content hash.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package fixstr

const hashSeed uint64 = 5381

// Count returns the number of content units equal to ch.
func (s String[U]) Count(ch U) int {
	c := 0
	for i, n := 0, s.Len(); i < n; i++ {
		if s.units[i] == ch {
			c++
		}
	}
	return c
}

// Hash returns a djb2-style hash of the content, folded from the last unit
// to the first. Each unit is offset by one so zero-valued units still mix.
// The value is stable across runs and platforms.
func (s String[U]) Hash() uint64 {
	h := hashSeed
	for i := s.Len() - 1; i >= 0; i-- {
		h = h*33 + uint64(s.units[i]) + 1
	}
	return h
}
