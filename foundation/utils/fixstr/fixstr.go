// File: fixstr.go
// Title: Fixed-Length Immutable String Value
// Description: Defines the String value type, the raw sequence type and the
//              single construction routine every other operation uses to
//              normalize its arguments. A String holds its content followed by
//              one zero terminator unit and is never modified after creation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package fixstr

import (
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

// NPos is the index returned by every search that finds nothing.
const NPos = -1

// Unit is the set of code unit types a String can be built from: narrow
// (byte) or wide (uint16, rune, uint32) units.
type Unit interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

// String is an immutable sequence of code units with a trailing terminator.
//
// The zero value is the empty string. Every operation that produces a String
// returns a new value with its own storage; no two values share units.
type String[U Unit] struct {
	units []U // content followed by exactly one zero unit; nil for the zero value
}

// Narrow is a String of byte units.
type Narrow = String[byte]

// Wide is a String of rune units.
type Wide = String[rune]

// Like is implemented by everything an operation accepts as a string
// argument: a String itself or a Raw sequence.
type Like[U Unit] interface {
	// Fixed returns the canonical String for the value.
	Fixed() String[U]
	// Len returns the number of content units the canonical String will hold.
	Len() int
}

// Raw is an unnormalized unit sequence, the Go counterpart of a literal array.
// The first zero unit, if any, ends the content.
type Raw[U Unit] []U

// Fixed copies the content of r into a new String.
func (r Raw[U]) Fixed() String[U] {
	return New[U](r...)
}

// Len returns the number of units before the first zero unit.
func (r Raw[U]) Len() int {
	return contentLength([]U(r))
}

// Make normalizes a string-like argument into its canonical String. It is the
// identity for a String and a copy for a Raw sequence; a nil argument yields
// the empty string.
func Make[U Unit](src Like[U]) String[U] {
	if src == nil {
		return String[U]{}
	}
	return src.Fixed()
}

// New builds a String from the given units. Content ends at the first zero
// unit, so embedded terminators truncate the value the way they would a C string.
func New[U Unit](units ...U) String[U] {
	n := contentLength(units)
	buf := make([]U, n+1)
	copy(buf, units[:n])
	return String[U]{units: buf}
}

// Empty returns the zero-length String.
func Empty[U Unit]() String[U] {
	return String[U]{}
}

// Of builds a narrow String from the bytes of s.
func Of(s string) Narrow {
	n := strings.IndexByte(s, 0)
	if n < 0 {
		n = len(s)
	}
	buf := make([]byte, n+1)
	copy(buf, s[:n])
	return Narrow{units: buf}
}

// WideOf builds a wide String from the runes of s. Invalid UTF-8 decodes to
// utf8.RuneError, as with a range loop; no other validation happens.
func WideOf(s string) Wide {
	n := 0
	for _, r := range s {
		if r == 0 {
			break
		}
		n++
	}
	buf := make([]rune, n+1)
	i := 0
	for _, r := range s {
		if i == n {
			break
		}
		buf[i] = r
		i++
	}
	return Wide{units: buf}
}

func contentLength[U Unit](units []U) int {
	for i, u := range units {
		if u == 0 {
			return i
		}
	}
	return len(units)
}

// Fixed returns s unchanged; it lets a String be passed wherever a Like is expected.
func (s String[U]) Fixed() String[U] {
	return s
}

// Len returns the number of content units.
func (s String[U]) Len() int {
	if len(s.units) == 0 {
		return 0
	}
	return len(s.units) - 1
}

// Size returns the number of units including the terminator.
func (s String[U]) Size() int {
	return s.Len() + 1
}

// IsEmpty reports whether s has no content units.
func (s String[U]) IsEmpty() bool {
	return s.Len() == 0
}

// At returns the unit at index i. Index Len() yields the terminator; any
// other index outside [0, Len()) panics like a slice index would.
func (s String[U]) At(i int) U {
	if i == s.Len() {
		return 0
	}
	return s.units[i]
}

// unit is At without the panic: every index at or past the content reads
// as the terminator.
func (s String[U]) unit(i int) U {
	if i < len(s.units) {
		return s.units[i]
	}
	return 0
}

// Units returns a copy of the content units.
func (s String[U]) Units() []U {
	out := make([]U, s.Len())
	copy(out, s.units)
	return out
}

func unitWidth[U Unit]() uintptr {
	var zero U
	return unsafe.Sizeof(zero)
}

// String converts s to a Go string. Narrow units are copied byte for byte,
// 16-bit units are decoded as UTF-16 and 32-bit units as code points.
func (s String[U]) String() string {
	n := s.Len()
	switch unitWidth[U]() {
	case 1:
		b := make([]byte, n)
		for i := 0; i < n; i++ {
			b[i] = byte(s.units[i])
		}
		return string(b)
	case 2:
		u16 := make([]uint16, n)
		for i := 0; i < n; i++ {
			u16[i] = uint16(s.units[i])
		}
		return string(utf16.Decode(u16))
	default:
		var b strings.Builder
		b.Grow(n)
		for i := 0; i < n; i++ {
			r := rune(s.units[i])
			if !utf8.ValidRune(r) {
				r = utf8.RuneError
			}
			b.WriteRune(r)
		}
		return b.String()
	}
}

// WriteTo writes the content of s to w as text.
func (s String[U]) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

// MarshalText implements encoding.TextMarshaler.
func (s String[U]) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Key returns a Go string that is equal for two values exactly when their
// content is equal, so values can key a map. Units wider than a byte are
// encoded little-endian at their full width.
func (s String[U]) Key() string {
	n := s.Len()
	w := int(unitWidth[U]())
	b := make([]byte, n*w)
	for i := 0; i < n; i++ {
		v := uint32(s.units[i])
		for j := 0; j < w; j++ {
			b[i*w+j] = byte(v >> (8 * j))
		}
	}
	return string(b)
}
