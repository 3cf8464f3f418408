// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package intconv

// Unsigned is the capability-record type set for itoa/atoi's unsigned
// targets (spec.md §9 "capability record ... Monomorphization ...
// satisfies the requirement").
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Signed is the capability-record type set for signed targets.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// FormatUint writes the base-radix digits of v into dst (most
// significant digit first) and returns the number of bytes written.
// dst must have length >= BufferSize(bits of T, radix, false). For radix 10 the
// inner loop consumes two digits per step via decimalPairs; for other
// radixes it consumes one digit per step via digitToChar.
func FormatUint[T Unsigned](dst []byte, v T, radix uint8) int {
	if v == 0 {
		dst[0] = '0'
		return 1
	}
	if radix == 10 {
		return formatDecimal(dst, uint64(v))
	}
	return formatRadix(dst, uint64(v), radix)
}

// FormatInt writes the sign (if negative) followed by the base-radix
// digits of v into dst and returns the number of bytes written.
func FormatInt[T Signed](dst []byte, v T, radix uint8) int {
	if v >= 0 {
		return FormatUint(dst, uint64(v), radix)
	}
	dst[0] = '-'
	// Negate via unsigned wraparound so that the signed-MIN case (whose
	// positive magnitude doesn't fit in T) recovers the correct bit
	// pattern (spec.md §4.C step 5 "two's-complement symmetry").
	mag := uint64(-(v + 1)) + 1
	return 1 + FormatUint(dst[1:], mag, radix)
}

// formatDecimal writes v in base 10 into dst, two digits at a time
// from the tail using decimalPairs, then the possible odd leading
// digit, mirroring the jeaiii two-digit-lookup approach of spec.md
// §4.C without reproducing its magic-multiply constants (see
// DESIGN.md).
func formatDecimal(dst []byte, v uint64) int {
	if v == 0 {
		dst[0] = '0'
		return 1
	}
	var buf [maxDigits10]byte
	i := len(buf)
	for v >= 100 {
		r := v % 100
		v /= 100
		i -= 2
		buf[i] = decimalPairs[2*r]
		buf[i+1] = decimalPairs[2*r+1]
	}
	if v >= 10 {
		i -= 2
		buf[i] = decimalPairs[2*v]
		buf[i+1] = decimalPairs[2*v+1]
	} else {
		i--
		buf[i] = byte('0' + v)
	}
	return copy(dst, buf[i:])
}

// formatRadix writes v in the given non-decimal radix into dst,
// most-significant digit first.
func formatRadix(dst []byte, v uint64, radix uint8) int {
	var buf [64]byte
	i := len(buf)
	r := uint64(radix)
	for v > 0 {
		i--
		buf[i] = digitToChar[v%r]
		v /= r
	}
	return copy(dst, buf[i:])
}

// FormatUint128 writes the base-radix digits of a 128-bit unsigned
// value (hi, lo) into dst, breaking the value into 19-digit decimal
// groups (the largest power of 10 a uint64 can hold) for radix 10, or
// repeated radix-division otherwise.
func FormatUint128(dst []byte, hi, lo uint64, radix uint8) int {
	if hi == 0 {
		return FormatUint(dst, lo, radix)
	}
	if radix == 10 {
		return formatDecimal128(dst, hi, lo)
	}
	return formatRadix128(dst, hi, lo, radix)
}

func formatDecimal128(dst []byte, hi, lo uint64) int {
	// Peel off 19-digit groups (the largest power of 10 a uint64 can
	// hold) via 128-bit/64-bit division, then format the final leading
	// group (below 1e19, so at most 19 digits) with formatDecimal
	// and every later group padded to exactly 19 digits, since their
	// leading zeros are significant.
	var groups []uint64
	h, l := hi, lo
	for h != 0 || l >= 1e19 {
		var r uint64
		h, l, r = divmod128BySmall(h, l, 1e19)
		groups = append(groups, r)
	}
	n := formatDecimal(dst, l)
	for i := len(groups) - 1; i >= 0; i-- {
		n += formatDecimalPadded(dst[n:], groups[i], 19)
	}
	return n
}

// formatDecimalPadded writes v as exactly width decimal digits
// (left-padded with zero), used for the non-leading 19-digit groups of
// a 128-bit value where leading zeros within the group are
// significant.
func formatDecimalPadded(dst []byte, v uint64, width int) int {
	var buf [19]byte
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return copy(dst, buf[:width])
}

func formatRadix128(dst []byte, hi, lo uint64, radix uint8) int {
	var digits []byte
	h, l := hi, lo
	for h != 0 || l != 0 {
		var rem uint64
		h, l, rem = divmod128BySmall(h, l, uint64(radix))
		digits = append(digits, digitToChar[rem])
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return copy(dst, digits)
}

func divmod128BySmall(hi, lo, divisor uint64) (qhi, qlo, rem uint64) {
	rem = 0
	qhi = 0
	for i := 63; i >= 0; i-- {
		top := rem >> 63 // bit shifted out of rem; set means rem >= 2^64 > divisor
		rem = rem<<1 | (hi>>uint(i))&1
		bit := uint64(0)
		if top != 0 || rem >= divisor {
			rem -= divisor
			bit = 1
		}
		qhi = qhi<<1 | bit
	}
	qlo = 0
	for i := 63; i >= 0; i-- {
		top := rem >> 63
		rem = rem<<1 | (lo>>uint(i))&1
		bit := uint64(0)
		if top != 0 || rem >= divisor {
			rem -= divisor
			bit = 1
		}
		qlo = qlo<<1 | bit
	}
	return qhi, qlo, rem
}

// BufferSize returns the minimum safe buffer size for FormatUint/
// FormatInt of the given bit width and radix (spec.md §6 "Buffer
// sizing constants"): bits/log2(radix) rounded down plus two, which is
// at least ceil(bits/log2(radix)), plus one for a sign.
func BufferSize(bitWidth int, radix uint8, signed bool) int {
	n := (bitWidth*1000)/log2Estimate(radix) + 2
	if signed {
		n++
	}
	return n
}
