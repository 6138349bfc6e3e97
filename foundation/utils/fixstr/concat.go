// File: concat.go
// Title: Concatenation
// Description: Variadic and binary concatenation. The result length is summed
//              over all arguments first, then every argument is copied into a
//              single allocation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package fixstr

// ConcatLength returns the content length Concat would produce for args.
func ConcatLength[U Unit](args ...Like[U]) int {
	total := 0
	for _, a := range args {
		if a != nil {
			total += a.Len()
		}
	}
	return total
}

// Concat joins args left to right. With no arguments it returns the empty string.
func Concat[U Unit](args ...Like[U]) String[U] {
	buf := make([]U, ConcatLength(args...)+1)
	off := 0
	for _, a := range args {
		switch v := a.(type) {
		case nil:
		case String[U]:
			off += copy(buf[off:], v.units[:v.Len()])
		case Raw[U]:
			off += copy(buf[off:], v[:v.Len()])
		default:
			f := v.Fixed()
			off += copy(buf[off:], f.units[:f.Len()])
		}
	}
	return String[U]{units: buf}
}

// Plus returns s followed by other.
func (s String[U]) Plus(other Like[U]) String[U] {
	return Concat[U](s, other)
}
