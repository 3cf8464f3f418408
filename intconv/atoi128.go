// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intconv

import (
	"math/bits"

	"rsc.io/lexical/lexerr"
)

// u64Step returns the number of radix digits that always fit in a
// uint64 without overflow: floor(64 / log2(radix)), the per-chunk
// digit count ParseUint128 accumulates into a uint64 temporary before
// folding it into the 128-bit accumulator (spec.md §4.C "accumulate
// into a 64-bit temporary for up to u64_step(R) digits").
func u64Step(radix uint8) int {
	return (64 * 1000) / log2Estimate(radix)
}

// ParseUint128 parses the unsigned base-radix digits of b[start:] into
// a 128-bit value, returned as the (hi, lo uint64) pair convention
// FormatUint128 already uses on the write side. Digits are consumed
// u64Step(radix) at a time (one fewer where radix^u64Step(radix) is
// exactly 2^64) into a uint64 chunk, then folded into the
// accumulator via mulAdd128, rather than one digit at a time, to keep
// the hot loop mostly 64-bit arithmetic (spec.md §4.C).
func ParseUint128(b []byte, start int, radix uint8) (hi, lo uint64, consumed int, err error) {
	i := start
	if i >= len(b) || digitValue[b[i]] >= radix {
		return 0, 0, 0, lexerr.New(lexerr.InvalidDigit, i)
	}

	step := u64Step(radix)
	r := uint64(radix)
	stepPow := smallPow(r, step)
	if stepPow == 0 {
		// radix^step wrapped: it is exactly 2^64 for radix 2, 4 and 16.
		step--
		stepPow = smallPow(r, step)
	}

	digits := 0
	for i < len(b) {
		var chunk uint64
		n := 0
		for n < step && i < len(b) {
			d := digitValue[b[i]]
			if d >= radix {
				break
			}
			chunk = chunk*r + uint64(d)
			i++
			n++
		}
		if n == 0 {
			break
		}
		digits += n

		mul := stepPow
		if n != step {
			mul = smallPow(r, n)
		}
		var overflow bool
		hi, lo, overflow = mulAdd128(hi, lo, mul, chunk)
		if overflow {
			return 0, 0, i - start, lexerr.New(lexerr.Overflow, start)
		}
	}
	if digits == 0 {
		return 0, 0, 0, lexerr.New(lexerr.InvalidDigit, i)
	}
	return hi, lo, i - start, nil
}

// ParseInt128 is ParseUint128's signed counterpart, recovering
// two's-complement symmetry the same way ParseInt64 does so that
// signed-MIN is representable (spec.md §4.C step 5).
func ParseInt128(b []byte, start int, radix uint8, policy SignPolicy) (hi, lo uint64, consumed int, err error) {
	neg, signLen, err := ParseSign(b, start, policy)
	if err != nil {
		return 0, 0, 0, err
	}
	magHi, magLo, digitsLen, err := ParseUint128(b, start+signLen, radix)
	if err != nil {
		if e, ok := err.(*lexerr.Error); ok && e.Kind == lexerr.InvalidDigit {
			return 0, 0, signLen, lexerr.New(lexerr.InvalidDigit, start+signLen)
		}
		return 0, 0, signLen + digitsLen, err
	}
	const limitHi = uint64(1) << 63 // 2^127, the magnitude of signed-MIN
	if neg {
		if magHi > limitHi || (magHi == limitHi && magLo > 0) {
			return 0, 0, signLen + digitsLen, lexerr.New(lexerr.Underflow, start)
		}
		nhi, nlo := negate128(magHi, magLo)
		return nhi, nlo, signLen + digitsLen, nil
	}
	if magHi >= limitHi {
		return 0, 0, signLen + digitsLen, lexerr.New(lexerr.Overflow, start)
	}
	return magHi, magLo, signLen + digitsLen, nil
}

// smallPow returns r^n, computed by repeated multiplication since n is
// always small (at most u64Step's chunk size).
func smallPow(r uint64, n int) uint64 {
	v := uint64(1)
	for i := 0; i < n; i++ {
		v *= r
	}
	return v
}

// mulAdd128 computes (hi:lo)*mul + add as a 128-bit result, reporting
// overflow if the true product plus add does not fit in 128 bits.
func mulAdd128(hi, lo, mul, add uint64) (rhi, rlo uint64, overflow bool) {
	hiHi, hiLo := bits.Mul64(hi, mul)
	if hiHi != 0 {
		return 0, 0, true
	}
	loHi, loLo := bits.Mul64(lo, mul)
	midHi, c := bits.Add64(hiLo, loHi, 0)
	if c != 0 {
		return 0, 0, true
	}
	rlo, c = bits.Add64(loLo, add, 0)
	rhi, c = bits.Add64(midHi, 0, c)
	if c != 0 {
		return 0, 0, true
	}
	return rhi, rlo, false
}

// negate128 returns the two's-complement negation of (hi, lo).
func negate128(hi, lo uint64) (nhi, nlo uint64) {
	lo2, borrow := bits.Sub64(0, lo, 0)
	hi2, _ := bits.Sub64(0, hi, borrow)
	return hi2, lo2
}
