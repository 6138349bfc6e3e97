// File: search.go
// Title: Forward and Backward Search
// Description: Unit and subsequence search in both directions with a start
//              index and a count of matches to skip, plus the containment and
//              prefix/suffix predicates built on top of them.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package fixstr

// FindUnit returns the index of the (nth+1)-th occurrence of ch at or after
// from, or NPos. A from outside [0, Len()) finds nothing.
func (s String[U]) FindUnit(ch U, from, nth int) int {
	n := s.Len()
	if from < 0 || from >= n || nth < 0 {
		return NPos
	}
	for i := from; i < n; i++ {
		if s.units[i] != ch {
			continue
		}
		if nth == 0 {
			return i
		}
		nth--
	}
	return NPos
}

// Find returns the start of the (nth+1)-th occurrence of target at or after
// from, or NPos. Occurrences may overlap. An empty target matches at every
// index from..Len().
func (s String[U]) Find(target Like[U], from, nth int) int {
	t := Make(target)
	n, m := s.Len(), t.Len()
	if m > n || from < 0 || from > n-m || nth < 0 {
		return NPos
	}
	for i := from; i <= n-m; i++ {
		if compare(s, i, t, 0, 1, m) != 0 {
			continue
		}
		if nth == 0 {
			return i
		}
		nth--
	}
	return NPos
}

// RFindUnit searches backward from from down to 0 and returns the index of
// the (nth+1)-th occurrence of ch, or NPos.
func (s String[U]) RFindUnit(ch U, from, nth int) int {
	if from < 0 || from >= s.Len() || nth < 0 {
		return NPos
	}
	for i := from; i >= 0; i-- {
		if s.units[i] != ch {
			continue
		}
		if nth == 0 {
			return i
		}
		nth--
	}
	return NPos
}

// RFind searches backward for target, trying start positions from down to 0.
func (s String[U]) RFind(target Like[U], from, nth int) int {
	t := Make(target)
	n, m := s.Len(), t.Len()
	if m > n || from < 0 || from > n-m || nth < 0 {
		return NPos
	}
	for i := from; i >= 0; i-- {
		if compare(s, i, t, 0, 1, m) != 0 {
			continue
		}
		if nth == 0 {
			return i
		}
		nth--
	}
	return NPos
}

// Index returns the first occurrence of target, or NPos.
func (s String[U]) Index(target Like[U]) int {
	return s.Find(target, 0, 0)
}

// IndexUnit returns the first occurrence of ch, or NPos.
func (s String[U]) IndexUnit(ch U) int {
	return s.FindUnit(ch, 0, 0)
}

// LastIndex returns the last occurrence of target, or NPos.
func (s String[U]) LastIndex(target Like[U]) int {
	t := Make(target)
	return s.RFind(t, s.Len()-t.Len(), 0)
}

// LastIndexUnit returns the last occurrence of ch, or NPos.
func (s String[U]) LastIndexUnit(ch U) int {
	return s.RFindUnit(ch, s.Len()-1, 0)
}

// Contains reports whether target occurs anywhere in s.
func (s String[U]) Contains(target Like[U]) bool {
	return s.Find(target, 0, 0) != NPos
}

// ContainsUnit reports whether ch occurs in s.
func (s String[U]) ContainsUnit(ch U) bool {
	return s.FindUnit(ch, 0, 0) != NPos
}

// HasPrefix reports whether s begins with prefix.
func (s String[U]) HasPrefix(prefix Like[U]) bool {
	p := Make(prefix)
	if p.Len() > s.Len() {
		return false
	}
	return compare(s, 0, p, 0, 1, p.Len()) == 0
}

// HasSuffix reports whether s ends with suffix.
func (s String[U]) HasSuffix(suffix Like[U]) bool {
	x := Make(suffix)
	if x.Len() > s.Len() {
		return false
	}
	return compare(s, s.Len()-x.Len(), x, 0, 1, x.Len()) == 0
}
