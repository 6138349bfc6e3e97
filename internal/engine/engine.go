// ============================================================================
// fixstr - Fixed-length immutable strings
// ============================================================================
//
// Package:     engine
// Description: Width-independent facade over the fixstr library for the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package engine

import (
	"strings"

	fxerror "github.com/msto63/fixstr/foundation/core/error"
	fxerrors "github.com/msto63/fixstr/foundation/core/errors"
	"github.com/msto63/fixstr/foundation/utils/fixstr"
	"github.com/msto63/fixstr/pkg/core/cache"
)

const module = "engine"

// Mode selects the code unit width strings are built with
type Mode int

const (
	// ModeNarrow builds strings from bytes
	ModeNarrow Mode = iota
	// ModeWide builds strings from runes
	ModeWide
)

// String returns the mode name
func (m Mode) String() string {
	if m == ModeWide {
		return "wide"
	}
	return "narrow"
}

// ParseMode parses "narrow" or "wide"
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "narrow", "byte", "":
		return ModeNarrow, nil
	case "wide", "rune":
		return ModeWide, nil
	}
	return ModeNarrow, fxerrors.InvalidInput(module, "parse_mode", s, "narrow or wide")
}

// FindOptions controls a search
type FindOptions struct {
	// From is the start index; without HasFrom a forward search starts at 0
	// and a reverse search at the last position the target fits.
	From    int
	HasFrom bool
	// Nth skips that many earlier matches
	Nth     int
	Reverse bool
}

// CompareOptions caps a comparison
type CompareOptions struct {
	// Limit is the number of leading units compared when HasLimit is set;
	// a limit of zero or less compares nothing and yields 0
	Limit    int
	HasLimit bool
}

// Inspection describes the layout of one string value
type Inspection struct {
	Mode  string   `json:"mode"`
	Text  string   `json:"text"`
	Len   int      `json:"len"`
	Size  int      `json:"size"`
	Units []uint32 `json:"units"`
	Hash  uint64   `json:"hash"`
}

// Engine runs fixstr operations on Go strings converted at the configured width
type Engine interface {
	Mode() Mode

	Compare(a, b string, opts CompareOptions) int
	Find(s, target string, opts FindOptions) int
	Contains(s, target string) bool
	HasPrefix(s, prefix string) bool
	HasSuffix(s, suffix string) bool
	Count(s, unit string) (int, error)

	Substring(s string, begin, end int) (string, error)
	Prefix(s string, end int) (string, error)
	Suffix(s string, begin int) (string, error)
	SplitAt(s string, index int) (head, tail string, err error)
	SplitDelim(s, delim string) ([]string, error)
	Reverse(s string) string
	Concat(parts ...string) string

	Hash(s string) uint64
	Itoa(v int64) string
	Utoa(v uint64) string
	Atoi(s string, strict bool) (int64, error)
	Atou(s string, strict bool) (uint64, error)

	Inspect(s string) Inspection
}

// New returns the engine for mode. Hash results are memoized in a cache
// bounded by cfg.
func New(mode Mode, cfg cache.Config) Engine {
	if mode == ModeWide {
		return &engine[rune]{mode: mode, build: fixstr.WideOf, hashes: cache.New[uint64](cfg)}
	}
	return &engine[byte]{mode: mode, build: fixstr.Of, hashes: cache.New[uint64](cfg)}
}

type engine[U fixstr.Unit] struct {
	mode   Mode
	build  func(string) fixstr.String[U]
	hashes *cache.Cache[uint64]
}

func (e *engine[U]) Mode() Mode {
	return e.mode
}

// Compare orders a against b, over at most opts.Limit units when capped
func (e *engine[U]) Compare(a, b string, opts CompareOptions) int {
	if opts.HasLimit {
		return fixstr.CompareN(e.build(a), 0, e.build(b), 0, opts.Limit)
	}
	return e.build(a).Compare(e.build(b))
}

func (e *engine[U]) Find(s, target string, opts FindOptions) int {
	str, t := e.build(s), e.build(target)

	from := opts.From
	if !opts.HasFrom {
		from = 0
		if opts.Reverse {
			from = str.Len() - t.Len()
		}
	}

	if t.Len() == 1 {
		ch := t.At(0)
		if opts.Reverse {
			return str.RFindUnit(ch, from, opts.Nth)
		}
		return str.FindUnit(ch, from, opts.Nth)
	}
	if opts.Reverse {
		return str.RFind(t, from, opts.Nth)
	}
	return str.Find(t, from, opts.Nth)
}

func (e *engine[U]) Contains(s, target string) bool {
	return e.build(s).Contains(e.build(target))
}

func (e *engine[U]) HasPrefix(s, prefix string) bool {
	return e.build(s).HasPrefix(e.build(prefix))
}

func (e *engine[U]) HasSuffix(s, suffix string) bool {
	return e.build(s).HasSuffix(e.build(suffix))
}

// singleUnit returns the only unit of s, or an INVALID_INPUT error
func (e *engine[U]) singleUnit(op, s string) (U, error) {
	u := e.build(s)
	if u.Len() != 1 {
		return 0, fxerrors.InvalidInput(module, op, s, "exactly one "+e.mode.String()+" unit")
	}
	return u.At(0), nil
}

func (e *engine[U]) Count(s, unit string) (int, error) {
	ch, err := e.singleUnit("count", unit)
	if err != nil {
		return 0, err
	}
	return e.build(s).Count(ch), nil
}

func (e *engine[U]) Substring(s string, begin, end int) (string, error) {
	sub, err := e.build(s).Substring(begin, end)
	if err != nil {
		return "", err
	}
	return sub.String(), nil
}

func (e *engine[U]) Prefix(s string, end int) (string, error) {
	sub, err := e.build(s).Prefix(end)
	if err != nil {
		return "", err
	}
	return sub.String(), nil
}

func (e *engine[U]) Suffix(s string, begin int) (string, error) {
	sub, err := e.build(s).Suffix(begin)
	if err != nil {
		return "", err
	}
	return sub.String(), nil
}

// SplitAt drops the unit at index and returns the parts around it
func (e *engine[U]) SplitAt(s string, index int) (string, string, error) {
	head, tail, err := e.build(s).Split(index)
	if err != nil {
		return "", "", err
	}
	return head.String(), tail.String(), nil
}

// SplitDelim cuts s at every occurrence of a one-unit delimiter
func (e *engine[U]) SplitDelim(s, delim string) ([]string, error) {
	ch, err := e.singleUnit("split", delim)
	if err != nil {
		return nil, err
	}

	rest := e.build(s)
	parts := make([]string, 0, rest.Count(ch)+1)
	for i := rest.IndexUnit(ch); i != fixstr.NPos; i = rest.IndexUnit(ch) {
		head, tail := rest.MustSplit(i)
		parts = append(parts, head.String())
		rest = tail
	}
	return append(parts, rest.String()), nil
}

func (e *engine[U]) Reverse(s string) string {
	return e.build(s).Reverse().String()
}

func (e *engine[U]) Concat(parts ...string) string {
	args := make([]fixstr.Like[U], len(parts))
	for i, p := range parts {
		args[i] = e.build(p)
	}
	return fixstr.Concat(args...).String()
}

func (e *engine[U]) Hash(s string) uint64 {
	str := e.build(s)
	return e.hashes.GetOrSet(str.Key(), str.Hash)
}

func (e *engine[U]) Itoa(v int64) string {
	return fixstr.FromInt[U](v).String()
}

func (e *engine[U]) Utoa(v uint64) string {
	return fixstr.FromUint[U](v).String()
}

// Atoi converts s; strict rejects malformed or overflowing input, otherwise
// the unchecked conversion runs and never fails.
func (e *engine[U]) Atoi(s string, strict bool) (int64, error) {
	str := e.build(s)
	if !strict {
		return str.ToInt(), nil
	}
	v, err := str.ParseInt()
	if err != nil {
		return 0, fxerror.Wrap(err, "atoi")
	}
	return v, nil
}

func (e *engine[U]) Atou(s string, strict bool) (uint64, error) {
	str := e.build(s)
	if !strict {
		return str.ToUint(), nil
	}
	v, err := str.ParseUint()
	if err != nil {
		return 0, fxerror.Wrap(err, "atou")
	}
	return v, nil
}

func (e *engine[U]) Inspect(s string) Inspection {
	str := e.build(s)
	units := make([]uint32, 0, str.Size())
	for i := 0; i < str.Size(); i++ {
		units = append(units, uint32(str.At(i)))
	}
	return Inspection{
		Mode:  e.mode.String(),
		Text:  str.String(),
		Len:   str.Len(),
		Size:  str.Size(),
		Units: units,
		Hash:  e.Hash(s),
	}
}
