// File: compare_test.go
// Title: Unit Tests for Comparison
// Description: Ordering, equality, capped comparison and the reflexivity and
//              antisymmetry properties.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package fixstr

import "testing"

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"equal", "abc", "abc", 0},
		{"both empty", "", "", 0},
		{"less by unit", "abc", "abd", -1},
		{"greater by unit", "abd", "abc", 1},
		{"prefix sorts first", "ab", "abc", -1},
		{"longer sorts last", "abc", "ab", 1},
		{"empty sorts first", "", "a", -1},
		{"first unit decides", "b", "abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := Of(tt.a), Of(tt.b)
			if got := Compare[byte](a, b); got != tt.expected {
				t.Errorf("Compare(%q, %q) = %d; want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := a.Compare(b); got != tt.expected {
				t.Errorf("%q.Compare(%q) = %d; want %d", tt.a, tt.b, got, tt.expected)
			}
			if got := b.Compare(a); got != -tt.expected {
				t.Errorf("%q.Compare(%q) = %d; want %d", tt.b, tt.a, got, -tt.expected)
			}
		})
	}
}

func TestCompareRaw(t *testing.T) {
	if got := Compare[byte](Raw[byte]{'a', 'b', 0, 'z'}, Of("ab")); got != 0 {
		t.Errorf("Compare(raw \"ab\\x00z\", \"ab\") = %d; want 0", got)
	}
	if !Of("ab").Equal(Raw[byte]{'a', 'b'}) {
		t.Error("Equal should accept a raw sequence")
	}
}

func TestCompareNegativeRunes(t *testing.T) {
	tests := []struct {
		name     string
		a, b     String[rune]
		expected int
	}{
		{"longer sorts after its prefix", New[rune]('a', -1), New[rune]('a'), 1},
		{"negative above positive", New[rune](-1), New[rune]('z'), 1},
		{"equal negatives", New[rune]('a', -2), New[rune]('a', -2), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.expected {
				t.Errorf("Compare() = %d; want %d", got, tt.expected)
			}
			if got := tt.b.Compare(tt.a); got != -tt.expected {
				t.Errorf("reversed Compare() = %d; want %d", got, -tt.expected)
			}
		})
	}
}

func TestCompareN(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		ia       int
		b        string
		ib       int
		limit    int
		expected int
	}{
		{"within cap", "abcX", 0, "abcY", 0, 3, 0},
		{"past cap", "abcX", 0, "abcY", 0, 4, -1},
		{"zero cap", "abc", 0, "xyz", 0, 0, 0},
		{"offset in first", "xxabc", 2, "abc", 0, 3, 0},
		{"offset in second", "bc", 0, "abc", 1, 2, 0},
		{"cap reaches terminator", "ab", 0, "abc", 0, 3, -1},
		{"start past end sorts first", "abc", 5, "", 0, 10, -1},
		{"both past end", "abc", 4, "x", 2, 10, 0},
		{"negative start is past end", "abc", -1, "a", 0, 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareN(Of(tt.a), tt.ia, Of(tt.b), tt.ib, tt.limit)
			if got != tt.expected {
				t.Errorf("CompareN(%q, %d, %q, %d, %d) = %d; want %d",
					tt.a, tt.ia, tt.b, tt.ib, tt.limit, got, tt.expected)
			}
		})
	}
}

func TestCompareReflexiveUnderAnyCap(t *testing.T) {
	for _, in := range []string{"", "a", "abc", "hello world"} {
		s := Of(in)
		for limit := 0; limit <= s.Size()+1; limit++ {
			if got := CompareN(s, 0, s, 0, limit); got != 0 {
				t.Errorf("CompareN(%q, %q, %d) = %d; want 0", in, in, limit, got)
			}
		}
	}
}

func TestRelationalMethods(t *testing.T) {
	a, b := Of("apple"), Of("banana")

	checks := []struct {
		name string
		got  bool
		want bool
	}{
		{"Equal", a.Equal(b), false},
		{"NotEqual", a.NotEqual(b), true},
		{"Less", a.Less(b), true},
		{"LessEqual", a.LessEqual(b), true},
		{"Greater", a.Greater(b), false},
		{"GreaterEqual", a.GreaterEqual(b), false},
		{"LessEqual self", a.LessEqual(a), true},
		{"GreaterEqual self", a.GreaterEqual(a), true},
		{"Equal zero value", Narrow{}.Equal(Of("")), true},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v; want %v", c.name, c.got, c.want)
		}
	}
}
