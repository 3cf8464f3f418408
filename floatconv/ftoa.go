// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import (
	"math"

	"rsc.io/lexical/mathx"
	"rsc.io/lexical/options"
)

// decimalShortestDigits returns a digit sequence (most significant
// first) and decimal exponent such that digits*10^(exp-len(digits)+1)
// is the shortest decimal that rounds (nearest, ties-to-even) back to
// mantissa*2^binExp (spec.md §4.D "shortest round-trip"), via the
// float64 instantiation of dragon4Shortest.
func decimalShortestDigits(mantissa uint64, binExp int) (digits []uint8, exp int) {
	return dragon4Shortest(mantissa, binExp, -1074, 1<<52)
}

// dragon4Shortest implements Steele & White's free-format
// shortest-round-trip digit generation (the "Dragon4"/FPP2 algorithm):
// it tracks the value and the half-gaps to its two representable
// neighbors as exact BigInt fractions scaled by successive powers of
// ten, emitting one decimal digit per iteration and stopping as soon
// as the digits produced so far are the unique shortest decimal
// falling within the value's rounding interval. minExp and
// minNormalMantissa identify the target width's subnormal floor and
// smallest normalized mantissa, so the same implementation serves both
// binary64 (-1074, 1<<52) and binary32 (-149, 1<<23): the mantissa's
// lower rounding boundary is half the ordinary gap exactly when it
// sits at minNormalMantissa with an exponent still above minExp, since
// the neighbor just below is the top of the denser subnormal/lower-
// binade range.
func dragon4Shortest(mantissa uint64, binExp, minExp int, minNormalMantissa uint64) (digits []uint8, exp int) {
	if mantissa == 0 {
		return []uint8{0}, 0
	}

	unequalGaps := mantissa == minNormalMantissa && binExp > minExp
	evenOk := mantissa&1 == 0

	one := mathx.BigIntFromUint64(1)
	f := mathx.BigIntFromUint64(mantissa)

	var r, s, mPlus, mMinus mathx.BigInt
	if binExp >= 0 {
		be := one.Lsh(uint(binExp))
		if !unequalGaps {
			r = f.Mul(be).Lsh(1)
			s = mathx.BigIntFromUint64(2)
			mPlus, mMinus = be, be
		} else {
			r = f.Mul(be).Lsh(2)
			s = mathx.BigIntFromUint64(4)
			mPlus, mMinus = be.Lsh(1), be
		}
	} else {
		if !unequalGaps {
			r = f.Lsh(1)
			s = one.Lsh(uint(-binExp) + 1)
			mPlus, mMinus = one, one
		} else {
			r = f.Lsh(2)
			s = one.Lsh(uint(-binExp) + 2)
			mPlus, mMinus = mathx.BigIntFromUint64(2), one
		}
	}

	// Scale by powers of ten until the upper envelope r+mPlus brackets
	// exactly one leading decimal digit against s.
	k := 0
	for r.Add(mPlus).Cmp(s) > 0 {
		s = s.MulSmall(10)
		k++
	}
	for r.Add(mPlus).MulSmall(10).Cmp(s) <= 0 {
		r = r.MulSmall(10)
		mPlus = mPlus.MulSmall(10)
		mMinus = mMinus.MulSmall(10)
		k--
	}

	for {
		r = r.MulSmall(10)
		mPlus = mPlus.MulSmall(10)
		mMinus = mMinus.MulSmall(10)
		q, rem := r.DivMod(s)
		d, _ := q.Uint64()
		r = rem

		lowCmp := r.Cmp(mMinus)
		low := lowCmp < 0 || (evenOk && lowCmp == 0)
		highCmp := r.Add(mPlus).Cmp(s)
		high := highCmp > 0 || (evenOk && highCmp == 0)

		if !low && !high {
			digits = append(digits, uint8(d))
			continue
		}

		roundUp := false
		switch {
		case high && !low:
			roundUp = true
		case low && !high:
			roundUp = false
		default:
			switch cmp := r.MulSmall(2).Cmp(s); {
			case cmp > 0:
				roundUp = true
			case cmp < 0:
				roundUp = false
			default:
				roundUp = d%2 == 1
			}
		}

		digits = append(digits, uint8(d))
		if roundUp {
			i := len(digits) - 1
			for ; i >= 0; i-- {
				digits[i]++
				if digits[i] < 10 {
					break
				}
				digits[i] = 0
			}
			if i < 0 {
				digits = append([]uint8{1}, digits[:len(digits)-1]...)
				k++
			}
		}
		break
	}
	return digits, k - 1
}

// FormatFloat64 writes the decimal or radix-r representation of f into
// dst per wopt, and returns the number of bytes written. Special
// values (NaN, +-Inf) are written using wopt's spellings.
func FormatFloat64(dst []byte, f float64, radix uint8, wopt options.WriteOptions) int {
	switch {
	case math.IsNaN(f):
		return copy(dst, wopt.NanString)
	case math.IsInf(f, 1):
		return copy(dst, wopt.InfString)
	case math.IsInf(f, -1):
		n := copy(dst, "-")
		return n + copy(dst[n:], wopt.InfString)
	case f == 0:
		if math.Signbit(f) {
			return copy(dst, "-0")
		}
		return copy(dst, "0")
	}

	neg := f < 0
	af := f
	if neg {
		af = -f
	}
	bits := math.Float64bits(af)
	mantissa := bits & (1<<52 - 1)
	biasedExp := int(bits >> 52)
	var binExp int
	if biasedExp == 0 {
		binExp = -1074
	} else {
		mantissa |= 1 << 52
		binExp = biasedExp - 1075
	}

	var digits []uint8
	var exp int
	if radix == 10 {
		digits, exp = decimalShortestDigits(mantissa, binExp)
		if m := wopt.MaxSignificantDigits; m > 0 && len(digits) > m {
			numer, denom := exactRational(mantissa, binExp)
			digits, exp, _ = digitsRounded(numer, denom, 10, m)
		}
	} else {
		numer, denom := exactRational(mantissa, binExp)
		maxDigits := 64
		if wopt.MaxSignificantDigits > 0 && wopt.MaxSignificantDigits < maxDigits {
			digits, exp, _ = digitsRounded(numer, denom, radix, wopt.MaxSignificantDigits)
		} else {
			digits, exp, _ = digitsExact(numer, denom, radix, maxDigits)
		}
	}

	if wopt.MinSignificantDigits > len(digits) {
		pad := wopt.MinSignificantDigits - len(digits)
		for i := 0; i < pad; i++ {
			digits = append(digits, 0)
		}
	}
	if wopt.TrimTrailingZeros {
		for len(digits) > 1 && digits[len(digits)-1] == 0 {
			digits = digits[:len(digits)-1]
		}
	}

	n := 0
	if neg {
		dst[0] = '-'
		n = 1
	}
	n += writeDigits(dst[n:], digits, exp, radix, wopt)
	return n
}

// FormatFloat32 is FormatFloat64's binary32 counterpart: it extracts
// the 23-bit stored significand and 8-bit biased exponent from f's own
// bit pattern, rather than widening f to float64 first, so the digits
// produced are f's true shortest round-trip representation and not
// subject to any float64-stage rounding (spec.md §3's binary32
// target).
func FormatFloat32(dst []byte, f float32, radix uint8, wopt options.WriteOptions) int {
	switch {
	case math.IsNaN(float64(f)):
		return copy(dst, wopt.NanString)
	case math.IsInf(float64(f), 1):
		return copy(dst, wopt.InfString)
	case math.IsInf(float64(f), -1):
		n := copy(dst, "-")
		return n + copy(dst[n:], wopt.InfString)
	case f == 0:
		if math.Signbit(float64(f)) {
			return copy(dst, "-0")
		}
		return copy(dst, "0")
	}

	neg := f < 0
	af := f
	if neg {
		af = -f
	}
	bits := math.Float32bits(af)
	mantissa := uint64(bits & (1<<23 - 1))
	biasedExp := int(bits >> 23)
	var binExp int
	if biasedExp == 0 {
		binExp = -149
	} else {
		mantissa |= 1 << 23
		binExp = biasedExp - 150
	}

	var digits []uint8
	var exp int
	if radix == 10 {
		digits, exp = dragon4Shortest(mantissa, binExp, -149, 1<<23)
		if m := wopt.MaxSignificantDigits; m > 0 && len(digits) > m {
			numer, denom := exactRational(mantissa, binExp)
			digits, exp, _ = digitsRounded(numer, denom, 10, m)
		}
	} else {
		numer, denom := exactRational(mantissa, binExp)
		maxDigits := 32
		if wopt.MaxSignificantDigits > 0 && wopt.MaxSignificantDigits < maxDigits {
			digits, exp, _ = digitsRounded(numer, denom, radix, wopt.MaxSignificantDigits)
		} else {
			digits, exp, _ = digitsExact(numer, denom, radix, maxDigits)
		}
	}

	if wopt.MinSignificantDigits > len(digits) {
		pad := wopt.MinSignificantDigits - len(digits)
		for i := 0; i < pad; i++ {
			digits = append(digits, 0)
		}
	}
	if wopt.TrimTrailingZeros {
		for len(digits) > 1 && digits[len(digits)-1] == 0 {
			digits = digits[:len(digits)-1]
		}
	}

	n := 0
	if neg {
		dst[0] = '-'
		n = 1
	}
	n += writeDigits(dst[n:], digits, exp, radix, wopt)
	return n
}

// writeDigits lays out digits (most significant first, representing
// 0.d0 d1 d2... * radix^(exp+1)) in positional or scientific notation
// depending on wopt's exponent break points.
func writeDigits(dst []byte, digits []uint8, exp int, radix uint8, wopt options.WriteOptions) int {
	useSci := exp < wopt.NegativeExponentBreak || exp > wopt.PositiveExponentBreak
	if useSci {
		n := 0
		dst[n] = digitChar(digits[0])
		n++
		if len(digits) > 1 {
			dst[n] = '.'
			n++
			for _, d := range digits[1:] {
				dst[n] = digitChar(d)
				n++
			}
		}
		dst[n] = 'e'
		n++
		if exp < 0 {
			dst[n] = '-'
			exp = -exp
		} else {
			dst[n] = '+'
		}
		n++
		n += writeDecimalInt(dst[n:], exp)
		return n
	}

	n := 0
	if exp < 0 {
		dst[n] = '0'
		n++
		dst[n] = '.'
		n++
		for i := 0; i < -exp-1; i++ {
			dst[n] = '0'
			n++
		}
		for _, d := range digits {
			dst[n] = digitChar(d)
			n++
		}
		return n
	}
	intDigits := exp + 1
	for i, d := range digits {
		if i == intDigits {
			dst[n] = '.'
			n++
		}
		dst[n] = digitChar(d)
		n++
	}
	for i := len(digits); i < intDigits; i++ {
		dst[n] = '0'
		n++
	}
	if len(digits) <= intDigits {
		dst[n] = '.'
		n++
		dst[n] = '0'
		n++
	}
	return n
}

func digitChar(d uint8) byte {
	if d < 10 {
		return '0' + d
	}
	return 'a' + d - 10
}

func writeDecimalInt(dst []byte, v int) int {
	if v == 0 {
		dst[0] = '0'
		return 1
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return copy(dst, buf[i:])
}
