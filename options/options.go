// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package options holds the runtime (as opposed to format.Format's
// compile-time-shaped) parse and write configuration of spec.md §5:
// rounding mode, significant-digit bounds, exponent break points, and
// special-value spellings.
package options

import (
	"rsc.io/lexical/lexerr"
	"rsc.io/lexical/mathx"
)

// RoundingKind selects how a float parse or write resolves a value
// that falls exactly between two representable results (spec.md §3
// "rounding mode"). The type lives in mathx, since ExtendedFloat's
// rounding primitives consume it directly; options re-exports it so
// callers configure parsing without importing mathx themselves.
type RoundingKind = mathx.RoundingKind

const (
	NearestTiesEven         = mathx.NearestTiesEven
	NearestTiesAwayFromZero = mathx.NearestTiesAwayFromZero
	TowardPositiveInfinity  = mathx.TowardPositiveInfinity
	TowardNegativeInfinity  = mathx.TowardNegativeInfinity
	TowardZero              = mathx.TowardZero
)

// ParseOptions configures floatconv's float parser.
type ParseOptions struct {
	// Rounding selects the tie-breaking rule for the moderate and slow
	// parse paths.
	Rounding RoundingKind

	// Lossy permits the fast/moderate paths to return a result that is
	// not guaranteed correctly rounded in exchange for never falling
	// back to the BigInt slow path.
	Lossy bool

	// NanString and InfString/InfinityString are the recognized special
	// value spellings; empty disables recognition of that spelling.
	NanString      string
	InfString      string
	InfinityString string
}

// Default returns the conventional ParseOptions: ties-to-even, exact
// (non-lossy), and the usual "NaN"/"inf"/"infinity" spellings.
func Default() ParseOptions {
	return ParseOptions{
		Rounding:       NearestTiesEven,
		NanString:      "NaN",
		InfString:      "inf",
		InfinityString: "infinity",
	}
}

// Validate checks the special-value strings against spec.md §5's
// length and ordering constraints (short infinity string no longer
// than the long one, neither exceeding an implementation cap).
func (o ParseOptions) Validate() error {
	const maxSpecialLen = 50
	if len(o.NanString) > maxSpecialLen {
		return lexerr.New(lexerr.NanStringTooLong, 0)
	}
	if len(o.InfString) > maxSpecialLen {
		return lexerr.New(lexerr.InfStringTooLong, 0)
	}
	if len(o.InfinityString) > maxSpecialLen {
		return lexerr.New(lexerr.InfinityStringTooLong, 0)
	}
	if o.InfString != "" && o.InfinityString != "" && len(o.InfinityString) < len(o.InfString) {
		return lexerr.New(lexerr.InfinityStringTooShort, 0)
	}
	return nil
}

// WriteOptions configures floatconv's float formatter.
type WriteOptions struct {
	// NanString, InfString are the spellings written for NaN/Inf;
	// writing ignores InfinityString (only the parser recognizes both
	// short and long spellings).
	NanString string
	InfString string

	// TrimTrailingZeros removes trailing fraction zeros from the
	// written mantissa (e.g. "1.50" -> "1.5") when the value has a
	// non-empty fraction, per spec.md §5 "trim trailing zeros".
	TrimTrailingZeros bool

	// MinSignificantDigits and MaxSignificantDigits bound (if nonzero)
	// the number of significant digits written; MaxSignificantDigits
	// truncates (with correct rounding) rather than producing the
	// shortest round-trip representation.
	MinSignificantDigits int
	MaxSignificantDigits int

	// NegativeExponentBreak and PositiveExponentBreak are the decimal
	// exponent thresholds (inclusive) past which the writer switches
	// from positional to scientific notation.
	NegativeExponentBreak int
	PositiveExponentBreak int
}

// DefaultWrite returns the conventional WriteOptions: shortest
// round-trip, no trimming, scientific notation outside [-5, 17].
func DefaultWrite() WriteOptions {
	return WriteOptions{
		NanString:             "NaN",
		InfString:             "inf",
		NegativeExponentBreak: -5,
		PositiveExponentBreak: 17,
	}
}

// Validate checks the significant-digit bounds and exponent breaks
// against spec.md §5's ordering constraints.
func (o WriteOptions) Validate() error {
	if o.MinSignificantDigits != 0 && o.MaxSignificantDigits != 0 &&
		o.MinSignificantDigits > o.MaxSignificantDigits {
		return lexerr.New(lexerr.InvalidFloatPrecision, 0)
	}
	if o.NegativeExponentBreak > 0 {
		return lexerr.New(lexerr.InvalidNegativeExponentBreak, 0)
	}
	if o.PositiveExponentBreak < 0 {
		return lexerr.New(lexerr.InvalidPositiveExponentBreak, 0)
	}
	return nil
}
