// File: compare.go
// Title: Lexicographic Comparison
// Description: The comparison primitive shared by ordering, equality, search
//              and the prefix/suffix predicates. Comparison may start at any
//              index of either value and may be capped to a number of positions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package fixstr

import "math"

// compare orders a[ia:] against b[ib:], looking at positions cur..limit.
//
// The cursors walk through the terminator too: a value that ends first meets
// its zero unit while the other still has content, and so sorts lower. A
// cursor that has passed Size() is exhausted. Negative indexes count as
// exhausted, matching unsigned wrap-around. Units order as unsigned values,
// so a negative rune still sorts above the terminator.
func compare[U Unit](a String[U], ia int, b String[U], ib int, cur, limit int) int {
	sa, sb := a.Size(), b.Size()
	if ia < 0 {
		ia = sa
	}
	if ib < 0 {
		ib = sb
	}

	for ; ; ia, ib, cur = ia+1, ib+1, cur+1 {
		switch {
		case cur > limit || (ia >= sa && ib >= sb):
			return 0
		case ia >= sa:
			return -1
		case ib >= sb:
			return 1
		}

		ua, ub := uint32(a.unit(ia)), uint32(b.unit(ib))
		if ua > ub {
			return 1
		}
		if ua < ub {
			return -1
		}
	}
}

// Compare returns -1, 0 or 1 as a sorts before, equal to, or after b.
func Compare[U Unit](a, b Like[U]) int {
	return compare(Make(a), 0, Make(b), 0, 1, math.MaxInt)
}

// CompareN compares at most limit positions of a starting at ia against b
// starting at ib. A limit of zero or less always yields 0, which lets callers
// compare only the first K units by passing limit = K.
func CompareN[U Unit](a String[U], ia int, b String[U], ib int, limit int) int {
	return compare(a, ia, b, ib, 1, limit)
}

// Compare returns -1, 0 or 1 as s sorts before, equal to, or after other.
func (s String[U]) Compare(other Like[U]) int {
	return compare(s, 0, Make(other), 0, 1, math.MaxInt)
}

// Equal reports whether s and other hold the same content.
func (s String[U]) Equal(other Like[U]) bool {
	return s.Compare(other) == 0
}

// NotEqual reports whether s and other differ.
func (s String[U]) NotEqual(other Like[U]) bool {
	return s.Compare(other) != 0
}

// Less reports whether s sorts before other.
func (s String[U]) Less(other Like[U]) bool {
	return s.Compare(other) < 0
}

// LessEqual reports whether s sorts before or equal to other.
func (s String[U]) LessEqual(other Like[U]) bool {
	return s.Compare(other) <= 0
}

// Greater reports whether s sorts after other.
func (s String[U]) Greater(other Like[U]) bool {
	return s.Compare(other) > 0
}

// GreaterEqual reports whether s sorts after or equal to other.
func (s String[U]) GreaterEqual(other Like[U]) bool {
	return s.Compare(other) >= 0
}
