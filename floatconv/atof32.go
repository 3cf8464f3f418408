// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import (
	"math"

	"rsc.io/lexical/format"
	"rsc.io/lexical/mathx"
	"rsc.io/lexical/options"
)

// float32Pow10 holds the powers of ten that are exactly representable
// as a float32 (10^10 is the largest; 5^11 already exceeds 2^24, the
// binary32 fast-path's mantissa bound), mirroring float64Pow10's role
// for the binary32 pipeline.
var float32Pow10 = [...]float32{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
}

// ParseFloat32 parses a single float32 from the start of b according
// to f and o, running the decimal digits through a dedicated binary32
// pipeline rather than parsing as a float64 and narrowing, since
// narrowing after rounding to float64 can double-round a value that
// falls near a float32 halfway boundary to the wrong result (spec.md
// §3's binary32 target; spec.md §4.E's staged pipeline, here run at
// the narrower width throughout).
func ParseFloat32(b []byte, f format.Format, o options.ParseOptions) (value float32, consumed int, err error) {
	digits, pointExp, neg, n, special, specialValue, serr := scanFloatMantissa(b, f, o)
	if serr != nil {
		return 0, 0, serr
	}
	if special {
		return float32(specialValue), n, nil
	}

	value = computeFloat32(digits, pointExp, o.Rounding, f.Lossy() || o.Lossy, f.Incorrect(), neg)
	if neg {
		value = -value
	}
	return value, n, nil
}

// computeFloat32 is computeFloat64's binary32 counterpart; see
// computeFloat64 for the staged-pipeline and lossy/incorrect
// semantics, identical here but at 24 significand bits.
func computeFloat32(digits []uint8, pointExp int, rk mathx.RoundingKind, lossy, incorrect, neg bool) float32 {
	if allZero(digits) {
		return 0
	}
	if incorrect {
		return incorrectPathFloat32(digits, pointExp)
	}
	exp10 := pointExp - len(digits) + 1
	if len(digits) <= 19 {
		if mantissa, ok := uint64FromDigits(digits); ok {
			if f, ok := fastPathFloat32(mantissa, exp10); ok {
				return f
			}
			if f, ok := moderatePathFloat32(mantissa, exp10, rk, neg); ok {
				return f
			}
			if lossy {
				if f, ok := moderatePathFloat32(mantissa, exp10, mathx.TowardZero, neg); ok {
					return f
				}
			}
		}
	}
	if lossy {
		return incorrectPathFloat32(digits, pointExp)
	}
	return slowPathFloat32(digits, pointExp, rk, neg)
}

// incorrectPathFloat32 mirrors incorrectPathFloat64, narrowing through
// native float64 arithmetic: "incorrect" mode explicitly disclaims a
// correctness guarantee, so the extra rounding step here is consistent
// with the mode's own contract rather than a hidden double-rounding
// bug.
func incorrectPathFloat32(digits []uint8, pointExp int) float32 {
	return float32(incorrectPathFloat64(digits, pointExp))
}

// fastPathFloat32 is fastPathFloat64's binary32 counterpart: mantissa
// must fit in float32's 24-bit significand, and exp10 must be small
// enough that 10^|exp10| is itself exactly representable as a float32.
func fastPathFloat32(mantissa uint64, exp10 int) (float32, bool) {
	if mantissa >= 1<<24 {
		return 0, false
	}
	if exp10 < -10 || exp10 > 10 {
		return 0, false
	}
	f := float32(mantissa)
	if exp10 >= 0 {
		f *= float32Pow10[exp10]
	} else {
		f /= float32Pow10[-exp10]
	}
	return f, true
}

// moderatePathFloat32 is moderatePathFloat64's binary32 counterpart,
// rounding to 24 significand bits instead of 53.
func moderatePathFloat32(mantissa uint64, exp10 int, rk mathx.RoundingKind, neg bool) (float32, bool) {
	pw, ok := mathx.GetPowers(10).Pow(exp10)
	if !ok {
		return 0, false
	}
	mf := mathx.NewExtendedFloat(mantissa, 0)
	mf.Normalize()
	prod := mf.Mul(pw)
	prod.Normalize()

	const roundShift = 63 - 23
	const margin = 3
	const half = 1 << (roundShift - 1)
	low := prod.Mantissa & (1<<roundShift - 1)
	if low < margin || low > 1<<roundShift-1-margin {
		return 0, false
	}
	if low > half-margin && low < half+margin {
		return 0, false
	}

	mantissaBits, biasedExp, isInf := prod.ToFloat32(rk, neg)
	if isInf {
		// The caller applies the sign.
		return float32(math.Inf(1)), true
	}
	return math.Float32frombits(uint32(biasedExp)<<23 | mantissaBits), true
}

// slowPathFloat32 is slowPathFloat64's binary32 counterpart: the
// always-correct BigInt-ratio fallback, rounded to the nearest float32
// under rk.
func slowPathFloat32(digits []uint8, pointExp int, rk mathx.RoundingKind, neg bool) float32 {
	numer := mathx.BigIntFromDigits(digits, 10)
	shift := pointExp - len(digits) + 1
	denom := mathx.BigIntFromUint64(1)
	if shift < 0 {
		denom = pow10Big(-shift)
	} else {
		numer = mulPow10(numer, shift)
	}
	return ratioToFloat32(numer, denom, rk, neg)
}
