// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package intconv implements spec.md §4.C: radix-parameterized integer
// parsing (atoi) and formatting (itoa) for every supported width, with
// a two-digit lookup table for decimal output and multi-digit
// unrolling for parsing.
package intconv

// digitValue maps an ASCII byte to its digit value in [0, 35], or 255
// if the byte is not a valid digit in any supported radix.
var digitValue = func() [256]uint8 {
	var t [256]uint8
	for i := range t {
		t[i] = 255
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = c - '0'
	}
	for c := byte('a'); c <= 'z'; c++ {
		t[c] = c - 'a' + 10
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = c - 'A' + 10
	}
	return t
}()

// DigitValue returns c's digit value in [0,35], or 255 if c is not an
// ASCII alphanumeric digit character in any supported radix. Exported
// for floatconv's byte-level float scanner, which shares this table
// rather than keeping its own copy.
func DigitValue(c byte) uint8 { return digitValue[c] }

// decimalPairs is the classic two-ASCII-digit table: decimalPairs[2*n]
// and decimalPairs[2*n+1] are the two decimal digit characters of n,
// for n in [0,99]. itoa's inner loop consumes two decimal digits per
// step by indexing this table instead of computing each digit
// separately (spec.md §4.C "jeaiii" two-digit lookup).
var decimalPairs = [200]byte{
	'0', '0', '0', '1', '0', '2', '0', '3', '0', '4', '0', '5', '0', '6', '0', '7', '0', '8', '0', '9',
	'1', '0', '1', '1', '1', '2', '1', '3', '1', '4', '1', '5', '1', '6', '1', '7', '1', '8', '1', '9',
	'2', '0', '2', '1', '2', '2', '2', '3', '2', '4', '2', '5', '2', '6', '2', '7', '2', '8', '2', '9',
	'3', '0', '3', '1', '3', '2', '3', '3', '3', '4', '3', '5', '3', '6', '3', '7', '3', '8', '3', '9',
	'4', '0', '4', '1', '4', '2', '4', '3', '4', '4', '4', '5', '4', '6', '4', '7', '4', '8', '4', '9',
	'5', '0', '5', '1', '5', '2', '5', '3', '5', '4', '5', '5', '5', '6', '5', '7', '5', '8', '5', '9',
	'6', '0', '6', '1', '6', '2', '6', '3', '6', '4', '6', '5', '6', '6', '6', '7', '6', '8', '6', '9',
	'7', '0', '7', '1', '7', '2', '7', '3', '7', '4', '7', '5', '7', '6', '7', '7', '7', '8', '7', '9',
	'8', '0', '8', '1', '8', '2', '8', '3', '8', '4', '8', '5', '8', '6', '8', '7', '8', '8', '8', '9',
	'9', '0', '9', '1', '9', '2', '9', '3', '9', '4', '9', '5', '9', '6', '9', '7', '9', '8', '9', '9',
}

// digitToChar maps a value in [0,35] to its lowercase ASCII digit
// character, used by the generic-radix formatter (radix != 10).
var digitToChar = [36]byte{
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
	'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h', 'i', 'j',
	'k', 'l', 'm', 'n', 'o', 'p', 'q', 'r', 's', 't',
	'u', 'v', 'w', 'x', 'y', 'z',
}

// maxDigits10 is an upper bound on the decimal digit count of any
// width this package supports (128-bit: at most 39 digits).
const maxDigits10 = 39

// maxStep reports floor(bits / log2(radix)) + 1, one more than the
// number of digits of the given radix that always fit in a value of the
// given bit width, used by atoi's overflow check (spec.md §4.C step 4).
// ParseUint64 reports Overflow for any digit count above it and checks
// a count equal to it exactly, since such a value may or may not fit.
func maxStep(radix uint8, bitWidth int) int {
	bits := log2Estimate(radix)
	// digits*bits <= bitWidth  =>  digits <= bitWidth/bits
	return (bitWidth*1000)/bits + 1
}

// log2Estimate returns 1000*log2(radix), used only to size maxStep's
// loose bound; not used in any rounding-sensitive computation.
func log2Estimate(radix uint8) int {
	// log2(r) for r in [2,36], scaled by 1000, via a small static table
	// rather than a floating point log2 call in a package that must
	// stay deterministic across platforms.
	var table = [37]int{
		0, 0, 1000, 1585, 2000, 2322, 2585, 2807, 3000, 3170,
		3322, 3459, 3585, 3700, 3807, 3907, 4000, 4087, 4170, 4248,
		4322, 4392, 4459, 4522, 4585, 4644, 4700, 4755, 4807, 4858,
		4907, 4954, 5000, 5044, 5087, 5129, 5170,
	}
	return table[radix]
}
