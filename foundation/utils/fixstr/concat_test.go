// File: concat_test.go
// Title: Unit Tests for Concatenation, Counting and Hashing
// Description: Concat length and content, Plus, Count and the hash properties.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial test implementation

package fixstr

import "testing"

func TestConcat(t *testing.T) {
	tests := []struct {
		name     string
		args     []Like[byte]
		expected string
	}{
		{"no arguments", nil, ""},
		{"single", []Like[byte]{Of("abc")}, "abc"},
		{"two", []Like[byte]{Of("foo"), Of("bar")}, "foobar"},
		{"mixed raw", []Like[byte]{Of("a"), Raw[byte]{'b', 'c', 0, 'x'}, Of("d")}, "abcd"},
		{"empty pieces", []Like[byte]{Of(""), Of("x"), Narrow{}, Of("")}, "x"},
		{"nil piece", []Like[byte]{Of("a"), nil, Of("b")}, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Concat(tt.args...)
			if got.String() != tt.expected {
				t.Errorf("Concat() = %q; want %q", got.String(), tt.expected)
			}
			if want := ConcatLength(tt.args...); got.Len() != want {
				t.Errorf("Concat() length = %d; ConcatLength = %d", got.Len(), want)
			}
		})
	}
}

func TestConcatLengthIsSumOfParts(t *testing.T) {
	parts := []string{"static", "", "string", "!"}
	args := make([]Like[byte], 0, len(parts))
	sum := 0
	for _, p := range parts {
		args = append(args, Of(p))
		sum += len(p)
	}

	got := Concat(args...)
	if got.Len() != sum {
		t.Errorf("Concat length = %d; want %d", got.Len(), sum)
	}

	off := 0
	for _, p := range parts {
		if piece := got.MustSubstring(off, off+len(p)); piece.String() != p {
			t.Errorf("Concat piece at %d = %q; want %q", off, piece.String(), p)
		}
		off += len(p)
	}
}

func TestPlus(t *testing.T) {
	a, b := Of("fixed"), Of("-size")
	got := a.Plus(b)
	if got.String() != "fixed-size" {
		t.Errorf("Plus() = %q; want %q", got.String(), "fixed-size")
	}
	if a.String() != "fixed" || b.String() != "-size" {
		t.Error("Plus modified an operand")
	}
	if !a.Plus(b).Equal(Concat[byte](a, b)) {
		t.Error("Plus and Concat disagree")
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		input    string
		ch       byte
		expected int
	}{
		{"banana", 'a', 3},
		{"banana", 'z', 0},
		{"", 'a', 0},
		{"aaaa", 'a', 4},
	}

	for _, tt := range tests {
		if got := Of(tt.input).Count(tt.ch); got != tt.expected {
			t.Errorf("Count(%q, %q) = %d; want %d", tt.input, tt.ch, got, tt.expected)
		}
	}
}

func TestHash(t *testing.T) {
	if got := Of("").Hash(); got != 5381 {
		t.Errorf("Hash(\"\") = %d; want 5381", got)
	}
	if got := Of("a").Hash(); got != 5381*33+'a'+1 {
		t.Errorf("Hash(\"a\") = %d; want %d", got, 5381*33+'a'+1)
	}

	if Of("hello").Hash() != Of("hello").Hash() {
		t.Error("Hash is not deterministic")
	}
	if Of("hello").Hash() != Concat[byte](Of("he"), Of("llo")).Hash() {
		t.Error("equal values hash differently")
	}
	if Of("ab").Hash() == Of("ba").Hash() {
		t.Error("Hash ignores unit order")
	}
	if Of("abc").Hash() != WideOf("abc").Hash() {
		t.Error("equal unit values of different width should hash alike")
	}
}
