// File: numconv.go
// Title: Numeric Conversion
// Description: Decimal conversion between 64-bit integers and String values.
//              FromInt/FromUint size their output up front with IntLength and
//              UintLength. ToInt/ToUint are the unchecked folds; ParseInt and
//              ParseUint validate digits and range.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation

package fixstr

import (
	"math"

	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
)

// IntLength returns the number of units FromInt produces for v, sign included.
func IntLength(v int64) int {
	n := 1
	if v < 0 {
		n++
	}
	for v /= 10; v != 0; v /= 10 {
		n++
	}
	return n
}

// UintLength returns the number of units FromUint produces for v.
func UintLength(v uint64) int {
	n := 1
	for v /= 10; v != 0; v /= 10 {
		n++
	}
	return n
}

// FromInt renders v in decimal, most significant digit first, with a leading
// '-' for negative values. math.MinInt64 is handled without negation.
func FromInt[U Unit](v int64) String[U] {
	n := IntLength(v)
	buf := make([]U, n+1)
	if v < 0 {
		buf[0] = '-'
	}
	i := n - 1
	for {
		d := v % 10
		if d < 0 {
			d = -d
		}
		buf[i] = U('0' + d)
		i--
		if v /= 10; v == 0 {
			break
		}
	}
	return String[U]{units: buf}
}

// FromUint renders v in decimal, most significant digit first.
func FromUint[U Unit](v uint64) String[U] {
	n := UintLength(v)
	buf := make([]U, n+1)
	for i := n - 1; i >= 0; i-- {
		buf[i] = U('0' + v%10)
		v /= 10
	}
	return String[U]{units: buf}
}

// ToInt folds s as an optionally negative decimal number. Nothing is
// validated: a non-digit unit contributes its distance from '0' and overflow
// wraps. Use ParseInt for untrusted input.
func (s String[U]) ToInt() int64 {
	n := s.Len()
	if n == 0 {
		return 0
	}
	var v int64
	if s.units[0] == '-' {
		for i := 1; i < n; i++ {
			v = v*10 - (int64(s.units[i]) - '0')
		}
		return v
	}
	for i := 0; i < n; i++ {
		v = v*10 + (int64(s.units[i]) - '0')
	}
	return v
}

// ToUint folds s as an unsigned decimal number with the same lack of checks as ToInt.
func (s String[U]) ToUint() uint64 {
	var v uint64
	for i, n := 0, s.Len(); i < n; i++ {
		v = v*10 + (uint64(s.units[i]) - '0')
	}
	return v
}

// ParseInt converts s to an int64. It fails with INVALID_FORMAT for an empty
// value, a lone sign or any non-digit unit, and with VALUE_OUT_OF_RANGE when
// the value does not fit.
func (s String[U]) ParseInt() (int64, error) {
	const op = "parse_int"
	start, limit := 0, uint64(math.MaxInt64)
	neg := s.Len() > 0 && s.units[0] == '-'
	if neg {
		start, limit = 1, uint64(math.MaxInt64)+1
	}

	mag, bad, overflow := s.parseDigits(start, limit)
	switch {
	case bad >= 0:
		return 0, fxerrors.FixstrInvalidNumber(op, s.String(), bad)
	case overflow:
		return 0, fxerrors.FixstrOverflow(op, s.String(), int64(math.MinInt64), int64(math.MaxInt64))
	case !neg:
		return int64(mag), nil
	case mag == uint64(math.MaxInt64)+1:
		return math.MinInt64, nil
	default:
		return -int64(mag), nil
	}
}

// ParseUint converts s to a uint64 with the same checks as ParseInt. A sign
// is not accepted.
func (s String[U]) ParseUint() (uint64, error) {
	const op = "parse_uint"
	mag, bad, overflow := s.parseDigits(0, math.MaxUint64)
	switch {
	case bad >= 0:
		return 0, fxerrors.FixstrInvalidNumber(op, s.String(), bad)
	case overflow:
		return 0, fxerrors.FixstrOverflow(op, s.String(), uint64(0), uint64(math.MaxUint64))
	}
	return mag, nil
}

// parseDigits accumulates the digits from start to the end of s. bad is the
// index of the first unit that is not a digit (start itself when there are no
// digits at all), or -1. overflow is set once the magnitude would pass limit.
func (s String[U]) parseDigits(start int, limit uint64) (mag uint64, bad int, overflow bool) {
	n := s.Len()
	if start >= n {
		return 0, start, false
	}

	for i := start; i < n; i++ {
		u := s.units[i]
		if u < '0' || u > '9' {
			return 0, i, false
		}
		d := uint64(u - '0')
		if mag > (limit-d)/10 {
			overflow = true
			continue
		}
		mag = mag*10 + d
	}
	if overflow {
		return 0, -1, true
	}
	return mag, -1, false
}
