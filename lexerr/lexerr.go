// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexerr defines the closed error taxonomy shared by the
// lexical parse and format paths: every failure is a (Kind, Index)
// pair, never a panic or an os-level error.
package lexerr

import "strconv"

// Kind is a closed enumeration of the ways a parse, a format, or a
// format-construction can fail. See the Structural, Sign, Digit, Range,
// Exponent and Construction groups below.
type Kind int

const (
	// Structural
	Empty Kind = iota + 1
	EmptyMantissa
	EmptyInteger
	EmptyFraction
	EmptyExponent
	ExponentWithoutFraction
	MissingExponent

	// Sign
	MissingSign
	MissingMantissaSign
	MissingExponentSign
	InvalidPositiveSign
	InvalidNegativeSign
	InvalidPositiveMantissaSign
	InvalidPositiveExponentSign

	// Digit
	InvalidDigit
	InvalidLeadingZeros

	// Range (integer parsing only; floats saturate, see mathx/extfloat.go)
	Overflow
	Underflow

	// Exponent
	InvalidExponent

	// Format-construction-time
	InvalidMantissaRadix
	InvalidExponentBase
	InvalidExponentRadix
	InvalidDigitSeparator
	InvalidDecimalPoint
	InvalidExponentSymbol
	InvalidPunctuation
	InvalidFlags
	InvalidMantissaSign
	InvalidExponentSign
	InvalidSpecial
	InvalidConsecutiveIntegerDigitSeparator
	InvalidConsecutiveFractionDigitSeparator
	InvalidConsecutiveExponentDigitSeparator
	InvalidNanString
	NanStringTooLong
	InvalidInfString
	InfStringTooLong
	InvalidInfinityString
	InfinityStringTooLong
	InfinityStringTooShort
	InvalidFloatParseAlgorithm
	InvalidRadix
	InvalidFloatPrecision
	InvalidNegativeExponentBreak
	InvalidPositiveExponentBreak
)

var names = map[Kind]string{
	Empty:                       "empty input",
	EmptyMantissa:                "empty mantissa",
	EmptyInteger:                 "empty integer component",
	EmptyFraction:                "empty fraction component",
	EmptyExponent:                "empty exponent component",
	ExponentWithoutFraction:      "exponent present without required fraction",
	MissingExponent:              "missing exponent digits",
	MissingSign:                  "missing required sign",
	MissingMantissaSign:          "missing required mantissa sign",
	MissingExponentSign:          "missing required exponent sign",
	InvalidPositiveSign:          "invalid positive sign",
	InvalidNegativeSign:          "invalid negative sign",
	InvalidPositiveMantissaSign:  "invalid positive mantissa sign",
	InvalidPositiveExponentSign:  "invalid positive exponent sign",
	InvalidDigit:                 "invalid digit",
	InvalidLeadingZeros:          "invalid leading zeros",
	Overflow:                     "value out of range (overflow)",
	Underflow:                    "value out of range (underflow)",
	InvalidExponent:              "exponent notation not permitted",
	InvalidMantissaRadix:         "invalid mantissa radix",
	InvalidExponentBase:          "invalid exponent base",
	InvalidExponentRadix:         "invalid exponent digit radix",
	InvalidDigitSeparator:        "invalid digit separator character",
	InvalidDecimalPoint:          "invalid decimal point character",
	InvalidExponentSymbol:        "invalid exponent symbol character",
	InvalidPunctuation:           "punctuation characters collide",
	InvalidFlags:                 "mutually exclusive format flags set",
	InvalidMantissaSign:          "invalid mantissa sign policy",
	InvalidExponentSign:          "invalid exponent sign policy",
	InvalidSpecial:               "invalid special-value configuration",
	InvalidConsecutiveIntegerDigitSeparator:  "invalid consecutive integer digit separator flag",
	InvalidConsecutiveFractionDigitSeparator: "invalid consecutive fraction digit separator flag",
	InvalidConsecutiveExponentDigitSeparator: "invalid consecutive exponent digit separator flag",
	InvalidNanString:             "invalid NaN string",
	NanStringTooLong:             "NaN string too long",
	InvalidInfString:             "invalid short infinity string",
	InfStringTooLong:             "short infinity string too long",
	InvalidInfinityString:        "invalid long infinity string",
	InfinityStringTooLong:        "long infinity string too long",
	InfinityStringTooShort:       "long infinity string shorter than short infinity string",
	InvalidFloatParseAlgorithm:   "lossy and incorrect options both set",
	InvalidRadix:                 "radix out of [2, 36]",
	InvalidFloatPrecision:        "minimum significant digits exceeds maximum",
	InvalidNegativeExponentBreak: "invalid negative exponent break",
	InvalidPositiveExponentBreak: "invalid positive exponent break",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown error kind (" + strconv.Itoa(int(k)) + ")"
}

// Error records a failed parse, write, or format construction.
// Index is the byte offset of the first offending input byte, or the
// input length for "missing" errors. Construction-time errors (format
// validation) carry Index 0; it is not meaningful for them.
type Error struct {
	Kind  Kind
	Index int
}

func (e *Error) Error() string {
	return e.Kind.String() + " at index " + strconv.Itoa(e.Index)
}

// New builds an *Error for the given kind and byte index.
func New(kind Kind, index int) *Error {
	return &Error{Kind: kind, Index: index}
}

// Is supports errors.Is comparisons against a bare Kind wrapped as an
// *Error with any index, e.g. errors.Is(err, lexerr.New(lexerr.Overflow, 0)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
