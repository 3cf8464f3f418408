// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import "rsc.io/lexical/lexerr"

// Validate classifies a fully-built Format as valid (nil) or returns
// one of the format-construction error kinds. It is called once, from
// New; it never runs on the hot parse/format path.
func Validate(f Format) error {
	if f.radix < 2 || f.radix > 36 {
		return lexerr.New(lexerr.InvalidMantissaRadix, 0)
	}
	if f.exponentBase < 2 || f.exponentBase > 36 {
		return lexerr.New(lexerr.InvalidExponentBase, 0)
	}
	if f.exponentRadix < 2 || f.exponentRadix > 36 {
		return lexerr.New(lexerr.InvalidExponentRadix, 0)
	}

	if f.digitSeparator != 0 && !isValidPunctuation(f.radix, f.digitSeparator) {
		return lexerr.New(lexerr.InvalidDigitSeparator, 0)
	}
	if !isValidPunctuation(f.radix, f.decimalPoint) {
		return lexerr.New(lexerr.InvalidDecimalPoint, 0)
	}
	if !isValidPunctuation(f.radix, f.exponentSymbol) {
		return lexerr.New(lexerr.InvalidExponentSymbol, 0)
	}
	if f.backupExponentSymbol != 0 && !isValidPunctuation(f.radix, f.backupExponentSymbol) {
		return lexerr.New(lexerr.InvalidExponentSymbol, 0)
	}

	// No two punctuation characters may collide with each other.
	punct := []byte{f.digitSeparator, f.decimalPoint, f.exponentSymbol, f.backupExponentSymbol}
	for i := range punct {
		if punct[i] == 0 {
			continue
		}
		for j := i + 1; j < len(punct); j++ {
			if punct[j] == 0 {
				continue
			}
			if punct[i] == punct[j] {
				return lexerr.New(lexerr.InvalidPunctuation, 0)
			}
		}
	}

	// Mutually exclusive flag pairs.
	if f.NoExponentNotation() {
		if f.RequiredExponentSign() || f.NoPositiveExponentSign() || f.RequiredExponentDigits() || f.NoExponentWithoutFraction() {
			return lexerr.New(lexerr.InvalidFlags, 0)
		}
	}
	if f.RequiredMantissaSign() && f.NoPositiveMantissaSign() {
		return lexerr.New(lexerr.InvalidMantissaSign, 0)
	}
	if f.RequiredExponentSign() && f.NoPositiveExponentSign() {
		return lexerr.New(lexerr.InvalidExponentSign, 0)
	}
	if f.NoSpecial() && f.SpecialDigitSeparator() {
		return lexerr.New(lexerr.InvalidSpecial, 0)
	}

	// A consecutive-separator flag without the corresponding placement
	// flag (internal, leading or trailing) can never trigger, and is
	// rejected as a configuration mistake rather than silently ignored.
	if f.IntegerConsecutiveDigitSeparator() && !anyOf(f.IntegerInternalDigitSeparator(), f.IntegerLeadingDigitSeparator(), f.IntegerTrailingDigitSeparator()) {
		return lexerr.New(lexerr.InvalidConsecutiveIntegerDigitSeparator, 0)
	}
	if f.FractionConsecutiveDigitSeparator() && !anyOf(f.FractionInternalDigitSeparator(), f.FractionLeadingDigitSeparator(), f.FractionTrailingDigitSeparator()) {
		return lexerr.New(lexerr.InvalidConsecutiveFractionDigitSeparator, 0)
	}
	if f.ExponentConsecutiveDigitSeparator() && !anyOf(f.ExponentInternalDigitSeparator(), f.ExponentLeadingDigitSeparator(), f.ExponentTrailingDigitSeparator()) {
		return lexerr.New(lexerr.InvalidConsecutiveExponentDigitSeparator, 0)
	}

	if f.Lossy() && f.Incorrect() {
		return lexerr.New(lexerr.InvalidFloatParseAlgorithm, 0)
	}

	return nil
}

func anyOf(bs ...bool) bool {
	for _, b := range bs {
		if b {
			return true
		}
	}
	return false
}

// isValidPunctuation reports whether ch is usable as a digit separator,
// decimal point, or exponent symbol for the given radix: it must be
// ASCII, and must not collide with a digit, a sign, or (above radix 10)
// a letter digit.
func isValidPunctuation(radix uint8, ch byte) bool {
	if ch >= 0x80 {
		return false
	}
	if ch == '+' || ch == '-' {
		return false
	}
	if ch >= '0' && ch <= '9' {
		return false
	}
	if radix > 10 {
		maxLetter := byte('A' + int(radix) - 11)
		if ch >= 'A' && ch <= maxLetter {
			return false
		}
		if ch >= 'a' && ch <= maxLetter-'A'+'a' {
			return false
		}
	}
	return true
}
