// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import (
	"math"

	"rsc.io/lexical/mathx"
)

// exactRational splits a positive, finite float64 into the exact
// rational numer/denom such that f == numer/denom, denom a power of
// two (spec.md §4.D "exact binary value as a fraction").
func exactRational(mantissa uint64, binExp int) (numer, denom mathx.BigInt) {
	if binExp >= 0 {
		return mathx.BigIntFromUint64(mantissa).Lsh(uint(binExp)), mathx.BigIntFromUint64(1)
	}
	return mathx.BigIntFromUint64(mantissa), mathx.BigIntFromUint64(1).Lsh(uint(-binExp))
}

// digitsExact extracts up to maxDigits digits (most significant
// first) of numer/denom in the given radix, via the classic
// multiply-by-radix-and-take-integer-part loop (spec.md §4.D), along
// with the power-of-radix exponent of the first digit and whether the
// extraction was exact (remainder hit zero before maxDigits digits).
//
// This generates a fixed digit count rather than the true shortest
// round-tripping digit count a Dragon4/Grisu-style boundary test would
// produce; DESIGN.md records this as a disclosed simplification.
func digitsExact(numer, denom mathx.BigInt, radix uint8, maxDigits int) (digits []uint8, exp int, exact bool) {
	if numer.IsZero() {
		return []uint8{0}, 0, true
	}

	// Scale numer/denom so that radix^exp <= numer/denom < radix^(exp+1),
	// by repeated multiply/divide-by-radix, tracking exp.
	for cmpRatio(numer, denom) < 0 {
		numer = numer.MulSmall(uint64(radix))
		exp--
	}
	for cmpRatio(numer, denom.MulSmall(uint64(radix))) >= 0 {
		denom = denom.MulSmall(uint64(radix))
		exp++
	}

	digits = make([]uint8, 0, maxDigits)
	firstQ, rem := numer.DivMod(denom)
	d0, _ := firstQ.Uint64()
	digits = append(digits, uint8(d0))
	if rem.IsZero() {
		return digits, exp, true
	}
	for i := 1; i < maxDigits; i++ {
		d := mathx.QuoRemDigit(&rem, radix, denom)
		digits = append(digits, d)
		if rem.IsZero() {
			return digits, exp, true
		}
	}
	return digits, exp, false
}

// cmpRatio compares numer/denom against 1.
func cmpRatio(numer, denom mathx.BigInt) int {
	return numer.Cmp(denom)
}

// digitsRounded returns exactly prec digits of numer/denom in the
// given radix, rounded to nearest with ties resolved to an even final
// digit, plus the power-of-radix exponent of the first digit. exact is
// true only when numer/denom terminates in prec or fewer digits, so no
// rounding was needed.
func digitsRounded(numer, denom mathx.BigInt, radix uint8, prec int) (digits []uint8, exp int, exact bool) {
	ds, e, ex := digitsExact(numer, denom, radix, prec+1)
	if ex && len(ds) <= prec {
		return ds, e, true
	}
	for len(ds) < prec+1 {
		ds = append(ds, 0)
	}
	kept := append([]uint8(nil), ds[:prec]...)
	extra := ds[prec]
	half := radix / 2

	roundUp := false
	switch {
	case extra > half:
		roundUp = true
	case extra == half && radix%2 == 0:
		if !ex || kept[len(kept)-1]%2 == 1 {
			roundUp = true
		}
	}

	if roundUp {
		i := len(kept) - 1
		for ; i >= 0; i-- {
			kept[i]++
			if kept[i] < radix {
				break
			}
			kept[i] = 0
		}
		if i < 0 {
			kept = append([]uint8{1}, kept[:len(kept)-1]...)
			e++
		}
	}
	return kept, e, false
}

// ratioToFloat64 returns the float64 nearest numer/denom under rk, the
// rounding primitive of atof's slow path. neg is the sign the caller will apply to
// the magnitude being rounded; it only affects directed rounding
// modes, since numer/denom themselves are always nonnegative.
func ratioToFloat64(numer, denom mathx.BigInt, rk mathx.RoundingKind, neg bool) float64 {
	if numer.IsZero() {
		return 0
	}
	shift := 80 + denom.BitLen() - numer.BitLen()
	if shift < 0 {
		shift = 0
	}
	q, r := numer.Lsh(uint(shift)).DivMod(denom)
	if q.IsZero() {
		shift += 128
		q, r = numer.Lsh(uint(shift)).DivMod(denom)
	}

	hi, lo, stk := mathx.HiBits128(q)
	sticky := stk || lo != 0 || !r.IsZero()
	mant := hi
	if sticky {
		mant |= 1
	}
	ext := mathx.NewExtendedFloat(mant, int32(q.BitLen()-64-shift))
	mantissaBits, biasedExp, isInf := ext.ToFloat64(rk, neg)
	if isInf {
		return math.Inf(1)
	}
	return math.Float64frombits(uint64(biasedExp)<<52 | mantissaBits)
}

// ratioToFloat32 is ratioToFloat64's binary32 counterpart, sharing the
// same BigInt hi/lo/sticky extraction since ExtendedFloat's mantissa
// stays 64 bits regardless of the target width; only the final
// rounding step differs.
func ratioToFloat32(numer, denom mathx.BigInt, rk mathx.RoundingKind, neg bool) float32 {
	if numer.IsZero() {
		return 0
	}
	shift := 80 + denom.BitLen() - numer.BitLen()
	if shift < 0 {
		shift = 0
	}
	q, r := numer.Lsh(uint(shift)).DivMod(denom)
	if q.IsZero() {
		shift += 128
		q, r = numer.Lsh(uint(shift)).DivMod(denom)
	}

	hi, lo, stk := mathx.HiBits128(q)
	sticky := stk || lo != 0 || !r.IsZero()
	mant := hi
	if sticky {
		mant |= 1
	}
	ext := mathx.NewExtendedFloat(mant, int32(q.BitLen()-64-shift))
	mantissaBits, biasedExp, isInf := ext.ToFloat32(rk, neg)
	if isInf {
		return float32(math.Inf(1))
	}
	return math.Float32frombits(uint32(biasedExp)<<23 | mantissaBits)
}

func pow10Big(n int) mathx.BigInt {
	acc := mathx.BigIntFromUint64(1)
	for i := 0; i < n; i++ {
		acc = acc.MulSmall(10)
	}
	return acc
}

func mulPow10(b mathx.BigInt, n int) mathx.BigInt {
	for i := 0; i < n; i++ {
		b = b.MulSmall(10)
	}
	return b
}
