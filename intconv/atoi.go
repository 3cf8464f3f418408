// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intconv

import "rsc.io/lexical/lexerr"

// SignPolicy controls how a leading '+'/'-' is treated (spec.md §6
// "sign policy").
type SignPolicy int

const (
	SignOptional SignPolicy = iota
	SignRequired
	SignForbidPositive
)

// ParseUint64 parses the unsigned base-radix digits of b[start:] into
// a value of bitWidth bits, applying the SWAR multi-digit unrolling of
// spec.md §4.C step 3 when radix <= 10 and enough bytes remain. It
// returns the value, the number of bytes consumed, and an error if no
// digit byte is found at start or the digit count overflows bitWidth.
func ParseUint64(b []byte, start int, radix uint8, bitWidth int) (value uint64, consumed int, err error) {
	i := start
	if i >= len(b) || digitValue[b[i]] >= radix {
		return 0, 0, lexerr.New(lexerr.InvalidDigit, i)
	}

	var acc uint64
	digits := 0
	r4 := uint64(radix) * uint64(radix) * uint64(radix) * uint64(radix)
	for i < len(b) {
		if radix <= 10 {
			if n, ok := tryReadDigits8(b[i:], radix); ok {
				acc = acc*(r4*r4) + uint64(n)
				i += 8
				digits += 8
				continue
			}
			if n, ok := tryReadDigits4(b[i:], radix); ok {
				acc = acc*r4 + uint64(n)
				i += 4
				digits += 4
				continue
			}
		}
		d := digitValue[b[i]]
		if d >= radix {
			break
		}
		acc = acc*uint64(radix) + uint64(d)
		i++
		digits++
	}

	ms := maxStep(radix, bitWidth)
	if digits > ms {
		return 0, i - start, lexerr.New(lexerr.Overflow, start)
	}
	if digits == ms {
		// This many digits can exceed 64 bits, which the wrapped acc
		// cannot show; re-accumulate with an explicit overflow check.
		var chk uint64
		for _, c := range b[start:i] {
			d := uint64(digitValue[c])
			if chk > (^uint64(0)-d)/uint64(radix) {
				return 0, i - start, lexerr.New(lexerr.Overflow, start)
			}
			chk = chk*uint64(radix) + d
		}
	}
	if bitWidth < 64 {
		limit := uint64(1)<<uint(bitWidth) - 1
		if acc > limit {
			return 0, i - start, lexerr.New(lexerr.Overflow, start)
		}
	}
	return acc, i - start, nil
}

// tryReadDigits4 reads exactly 4 consecutive ASCII digit bytes in
// [b'0', b'0'+radix), packed into one word and range-checked by
// allASCIIDigitsInRange instead of four separate digitValue lookups,
// and folds them into a single base-radix number, so that the caller
// applies one multiply by radix^4 to its accumulator. It returns
// ok=false (and reads nothing) if fewer than 4 bytes remain or any of
// the first 4 is out of range.
func tryReadDigits4(b []byte, radix uint8) (n uint32, ok bool) {
	if len(b) < 4 {
		return 0, false
	}
	var w uint32
	for i := 0; i < 4; i++ {
		w = w<<8 | uint32(b[i])
	}
	if !allASCIIDigitsInRange(w, radix, 4) {
		return 0, false
	}
	d0 := uint32(b[0] - '0')
	d1 := uint32(b[1] - '0')
	d2 := uint32(b[2] - '0')
	d3 := uint32(b[3] - '0')
	r := uint32(radix)
	return ((d0*r+d1)*r+d2)*r + d3, true
}

func tryReadDigits8(b []byte, radix uint8) (n uint64, ok bool) {
	if len(b) < 8 {
		return 0, false
	}
	var w uint64
	for i := 0; i < 8; i++ {
		w = w<<8 | uint64(b[i])
	}
	if !allASCIIDigitsInRange64(w, radix, 8) {
		return 0, false
	}
	var v uint64
	for i := 0; i < 8; i++ {
		v = v*uint64(radix) + uint64(b[i]-'0')
	}
	return v, true
}

// allASCIIDigitsInRange reports whether each of the n big-endian-
// packed bytes in w lies in ['0', '0'+radix). It compares byte by
// byte rather than using the branch-free SWAR mask test, which keeps
// the bound exact for any radix <= 10 without per-radix mask tables;
// the byte-at-a-time comparisons are cheap relative to the multiplies
// they save.
func allASCIIDigitsInRange(w uint32, radix uint8, n int) bool {
	for i := 0; i < n; i++ {
		c := byte(w >> uint((n-1-i)*8))
		if c < '0' || c >= '0'+radix {
			return false
		}
	}
	return true
}

func allASCIIDigitsInRange64(w uint64, radix uint8, n int) bool {
	for i := 0; i < n; i++ {
		c := byte(w >> uint((n-1-i)*8))
		if c < '0' || c >= '0'+radix {
			return false
		}
	}
	return true
}

// ParseSign consumes an optional leading '+'/'-' from b[start:],
// applying policy, and returns whether the value is negative, the
// number of bytes consumed, and an error for a policy violation.
func ParseSign(b []byte, start int, policy SignPolicy) (negative bool, consumed int, err error) {
	if start >= len(b) {
		if policy == SignRequired {
			return false, 0, lexerr.New(lexerr.MissingSign, start)
		}
		return false, 0, nil
	}
	switch b[start] {
	case '-':
		return true, 1, nil
	case '+':
		if policy == SignForbidPositive {
			return false, 0, lexerr.New(lexerr.InvalidPositiveSign, start)
		}
		return false, 1, nil
	default:
		if policy == SignRequired {
			return false, 0, lexerr.New(lexerr.MissingSign, start)
		}
		return false, 0, nil
	}
}

// ParseInt64 parses an optionally-signed base-radix integer of
// bitWidth bits (bitWidth including the sign bit) from b[start:],
// applying SignPolicy, then recovering two's-complement symmetry by
// negating the unsigned magnitude with wraparound so that signed-MIN
// is representable (spec.md §4.C step 5).
func ParseInt64(b []byte, start int, radix uint8, bitWidth int, policy SignPolicy) (value int64, consumed int, err error) {
	neg, signLen, err := ParseSign(b, start, policy)
	if err != nil {
		return 0, 0, err
	}
	mag, digitsLen, err := ParseUint64(b, start+signLen, radix, bitWidth)
	if err != nil {
		if e, ok := err.(*lexerr.Error); ok && e.Kind == lexerr.InvalidDigit {
			return 0, signLen, lexerr.New(lexerr.InvalidDigit, start+signLen)
		}
		return 0, signLen + digitsLen, err
	}
	limit := uint64(1) << uint(bitWidth-1)
	if neg {
		if mag > limit {
			return 0, signLen + digitsLen, lexerr.New(lexerr.Underflow, start)
		}
		return -int64(mag), signLen + digitsLen, nil
	}
	if mag >= limit {
		return 0, signLen + digitsLen, lexerr.New(lexerr.Overflow, start)
	}
	return int64(mag), signLen + digitsLen, nil
}
