// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import (
	"math"

	"rsc.io/lexical/format"
	"rsc.io/lexical/intconv"
	"rsc.io/lexical/lexerr"
	"rsc.io/lexical/mathx"
	"rsc.io/lexical/options"
)

// float64Pow10 holds the powers of ten that are exactly representable
// as a float64 (10^22 is the largest; 10^23 already rounds), the
// bound the fast path's exactness argument depends on.
var float64Pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}

// ParseFloat64 parses a single float64 from the start of b according
// to f and o, returning the value, the number of bytes consumed, and
// an error if the input does not begin with a valid mantissa (spec.md
// §4.E).
func ParseFloat64(b []byte, f format.Format, o options.ParseOptions) (value float64, consumed int, err error) {
	digits, pointExp, neg, n, special, specialValue, serr := scanFloatMantissa(b, f, o)
	if serr != nil {
		return 0, 0, serr
	}
	if special {
		return specialValue, n, nil
	}

	value = computeFloat64(digits, pointExp, o.Rounding, f.Lossy() || o.Lossy, f.Incorrect(), neg)
	if neg {
		value = -value
	}
	return value, n, nil
}

// scanFloatMantissa consumes a sign, special value, or mantissa/
// exponent from the start of b, shared by ParseFloat64 and
// ParseFloat32 since the lexical grammar is width-independent (spec.md
// §4.E); only the final digits-to-binary conversion differs by width.
// When special is true, the caller should use specialValue directly,
// width-narrowed if necessary, since NaN/Inf are exact at any width.
func scanFloatMantissa(b []byte, f format.Format, o options.ParseOptions) (digits []uint8, pointExp int, neg bool, consumed int, special bool, specialValue float64, err error) {
	if len(b) == 0 {
		return nil, 0, false, 0, false, 0, lexerr.New(lexerr.Empty, 0)
	}

	i := 0
	neg, signLen, serr := parseMantissaSign(b, i, f)
	if serr != nil {
		return nil, 0, false, 0, false, 0, serr
	}
	i += signLen

	if !f.NoSpecial() {
		if sv, n, ok := consumeSpecial(b, i, f, o, neg); ok {
			return nil, 0, neg, i + n, true, sv, nil
		}
	}

	intDigits, intConsumed := scanDigits(b, i, f.Radix(), f.DigitSeparator(),
		f.IntegerInternalDigitSeparator(), f.IntegerLeadingDigitSeparator(),
		f.IntegerTrailingDigitSeparator(), f.IntegerConsecutiveDigitSeparator())
	i += intConsumed

	if len(intDigits) == 0 && f.RequiredIntegerDigits() {
		return nil, 0, neg, i, false, 0, lexerr.New(lexerr.EmptyInteger, i)
	}
	if f.NoFloatLeadingZeros() && len(intDigits) > 1 && intDigits[0] == 0 {
		return nil, 0, neg, i, false, 0, lexerr.New(lexerr.InvalidLeadingZeros, i)
	}

	var fracDigits []uint8
	hasFraction := false
	if i < len(b) && b[i] == f.DecimalPoint() {
		i++
		hasFraction = true
		var n int
		fracDigits, n = scanDigits(b, i, f.Radix(), f.DigitSeparator(),
			f.FractionInternalDigitSeparator(), f.FractionLeadingDigitSeparator(),
			f.FractionTrailingDigitSeparator(), f.FractionConsecutiveDigitSeparator())
		i += n
		if len(fracDigits) == 0 && f.RequiredFractionDigits() {
			return nil, 0, neg, i, false, 0, lexerr.New(lexerr.EmptyFraction, i)
		}
	}

	if len(intDigits) == 0 && len(fracDigits) == 0 {
		return nil, 0, neg, i, false, 0, lexerr.New(lexerr.EmptyMantissa, i)
	}

	exp10 := 0
	if !f.NoExponentNotation() && i < len(b) && isExponentSymbol(b[i], f) {
		expStart := i
		if !hasFraction && f.NoExponentWithoutFraction() {
			return nil, 0, neg, i, false, 0, lexerr.New(lexerr.ExponentWithoutFraction, i)
		}
		i++
		expNeg, expSignLen, eerr := parseExponentSign(b, i, f)
		if eerr != nil {
			return nil, 0, neg, expStart, false, 0, eerr
		}
		i += expSignLen

		expDigits, expConsumed := scanDigits(b, i, f.ExponentRadix(), f.DigitSeparator(),
			f.ExponentInternalDigitSeparator(), f.ExponentLeadingDigitSeparator(),
			f.ExponentTrailingDigitSeparator(), f.ExponentConsecutiveDigitSeparator())

		if len(expDigits) == 0 {
			if f.RequiredExponentDigits() {
				return nil, 0, neg, i + expConsumed, false, 0, lexerr.New(lexerr.EmptyExponent, i+expConsumed)
			}
			// Not exponent notation after all: back off to before 'e'.
			i = expStart
		} else {
			i += expConsumed
			mag := 0
			for _, d := range expDigits {
				mag = mag*int(f.ExponentRadix()) + int(d)
				if mag > 1_000_000_000 {
					mag = 1_000_000_000
				}
			}
			if expNeg {
				mag = -mag
			}
			exp10 = mag
		}
	}

	digits = append(append([]uint8(nil), intDigits...), fracDigits...)
	pointExp = len(intDigits) - 1 + exp10
	return digits, pointExp, neg, i, false, 0, nil
}

func isExponentSymbol(c byte, f format.Format) bool {
	return c == f.ExponentSymbol() || (f.BackupExponentSymbol() != 0 && c == f.BackupExponentSymbol())
}

func parseMantissaSign(b []byte, i int, f format.Format) (neg bool, n int, err error) {
	neg, n, err = intconv.ParseSign(b, i, signPolicyFor(f.RequiredMantissaSign(), f.NoPositiveMantissaSign()))
	return neg, n, remapSignError(err, i, lexerr.MissingMantissaSign, lexerr.InvalidPositiveMantissaSign)
}

func parseExponentSign(b []byte, i int, f format.Format) (neg bool, n int, err error) {
	neg, n, err = intconv.ParseSign(b, i, signPolicyFor(f.RequiredExponentSign(), f.NoPositiveExponentSign()))
	return neg, n, remapSignError(err, i, lexerr.MissingExponentSign, lexerr.InvalidPositiveExponentSign)
}

func signPolicyFor(required, noPositive bool) intconv.SignPolicy {
	switch {
	case required:
		return intconv.SignRequired
	case noPositive:
		return intconv.SignForbidPositive
	default:
		return intconv.SignOptional
	}
}

func remapSignError(err error, i int, missing, invalidPositive lexerr.Kind) error {
	e, ok := err.(*lexerr.Error)
	if !ok {
		return err
	}
	switch e.Kind {
	case lexerr.MissingSign:
		return lexerr.New(missing, i)
	case lexerr.InvalidPositiveSign:
		return lexerr.New(invalidPositive, i)
	}
	return err
}

// scanDigits consumes a run of radix digits from b[start:], permitting
// sep at leading, internal, and trailing positions as the placement
// flags allow (spec.md §4.C "digit separator placement"). Consecutive
// separators are allowed only when consecutive is set. This is a
// simplification of the full separator-placement automaton.
func scanDigits(b []byte, start int, radix uint8, sep byte, internal, leading, trailing, consecutive bool) (digits []uint8, consumed int) {
	i, n := start, len(b)
	if sep != 0 && leading {
		for i < n && b[i] == sep {
			i++
		}
	}
	for i < n {
		if v := intconv.DigitValue(b[i]); v < radix {
			digits = append(digits, v)
			i++
			continue
		}
		if sep == 0 || b[i] != sep || len(digits) == 0 {
			break
		}
		j := i
		for j < n && b[j] == sep {
			j++
		}
		if j-i > 1 && !consecutive {
			break
		}
		if j < n && intconv.DigitValue(b[j]) < radix {
			if !internal {
				break
			}
			i = j
			continue
		}
		if trailing {
			i = j
		}
		break
	}
	return digits, i - start
}

// computeFloat64 assembles digits (most significant first, an implied
// decimal point after position pointExp+1) into a float64, trying the
// fast path, then the moderate path, then falling back to the always-
// correct BigInt slow path (spec.md §4.E's staged pipeline).
//
// incorrect selects the "incorrect" parse algorithm (spec.md §5):
// native float64 arithmetic with no correctness guarantee at all,
// skipping every staged path. Otherwise, when lossy is set and the
// fast/moderate paths both fail their exactness bounds, the moderate
// path is tried once more under TowardZero; that retry applies the same
// rejection test, so it fails wherever the first attempt failed, and
// the result then comes from incorrectPathFloat64. The slow path is
// never run in lossy mode.
func computeFloat64(digits []uint8, pointExp int, rk mathx.RoundingKind, lossy, incorrect, neg bool) float64 {
	if allZero(digits) {
		return 0
	}
	if incorrect {
		return incorrectPathFloat64(digits, pointExp)
	}
	exp10 := pointExp - len(digits) + 1
	if len(digits) <= 19 {
		if mantissa, ok := uint64FromDigits(digits); ok {
			if f, ok := fastPathFloat64(mantissa, exp10); ok {
				return f
			}
			if f, ok := moderatePathFloat64(mantissa, exp10, rk, neg); ok {
				return f
			}
			if lossy {
				if f, ok := moderatePathFloat64(mantissa, exp10, mathx.TowardZero, neg); ok {
					return f
				}
			}
		}
	}
	if lossy {
		return incorrectPathFloat64(digits, pointExp)
	}
	return slowPathFloat64(digits, pointExp, rk, neg)
}

// incorrectPathFloat64 evaluates digits*10^(pointExp-len(digits)+1)
// using native float64 arithmetic with no staged exactness check at
// all (spec.md §5 "incorrect": the fastest available conversion,
// explicitly not guaranteed correctly rounded). It is also lossy
// mode's fallback once the moderate path's TowardZero retry fails,
// since lossy mode disclaims the slow path entirely.
func incorrectPathFloat64(digits []uint8, pointExp int) float64 {
	exp10 := pointExp - len(digits) + 1
	var mantissa float64
	for _, d := range digits {
		mantissa = mantissa*10 + float64(d)
	}
	if exp10 == 0 {
		return mantissa
	}
	if exp10 > 0 {
		return mantissa * math.Pow(10, float64(exp10))
	}
	return mantissa / math.Pow(10, float64(-exp10))
}

func allZero(digits []uint8) bool {
	for _, d := range digits {
		if d != 0 {
			return false
		}
	}
	return true
}

func uint64FromDigits(digits []uint8) (uint64, bool) {
	var v uint64
	for _, d := range digits {
		if v > (math.MaxUint64-uint64(d))/10 {
			return 0, false
		}
		v = v*10 + uint64(d)
	}
	return v, true
}

// fastPathFloat64 returns mantissa*10^exp10 when that product is
// guaranteed exactly representable as a float64: mantissa fits in the
// 53-bit significand and exp10 is small enough that the power of ten
// itself is exact (spec.md §4.E "fast path").
func fastPathFloat64(mantissa uint64, exp10 int) (float64, bool) {
	if mantissa >= 1<<53 {
		return 0, false
	}
	if exp10 < -22 || exp10 > 22 {
		return 0, false
	}
	f := float64(mantissa)
	if exp10 >= 0 {
		f *= float64Pow10[exp10]
	} else {
		f /= float64Pow10[-exp10]
	}
	return f, true
}

// moderatePathFloat64 multiplies mantissa by the ExtendedFloat power
// of ten nearest 10^exp10 and accepts the rounded result only when the
// product's bits below the 53-bit rounding point are far enough from
// a tie, and from a representable boundary, that the <=1-ULP error
// carried by the power-of-ten table
// cannot have flipped the rounding decision (spec.md §4.E "moderate
// path error bound test", an Eisel-Lemire-style halfway rejection).
// rk/neg select and apply the final rounding decision; neg does not
// change the magnitude computed here, only how a directed rounding
// mode resolves a borderline product.
func moderatePathFloat64(mantissa uint64, exp10 int, rk mathx.RoundingKind, neg bool) (float64, bool) {
	pw, ok := mathx.GetPowers(10).Pow(exp10)
	if !ok {
		return 0, false
	}
	mf := mathx.NewExtendedFloat(mantissa, 0)
	mf.Normalize()
	prod := mf.Mul(pw)
	prod.Normalize()

	const roundShift = 63 - 52
	const margin = 3
	const half = 1 << (roundShift - 1)
	low := prod.Mantissa & (1<<roundShift - 1)
	if low < margin || low > 1<<roundShift-1-margin {
		return 0, false
	}
	if low > half-margin && low < half+margin {
		return 0, false
	}

	mantissaBits, biasedExp, isInf := prod.ToFloat64(rk, neg)
	if isInf {
		// The caller applies the sign.
		return math.Inf(1), true
	}
	return math.Float64frombits(uint64(biasedExp)<<52 | mantissaBits), true
}

// slowPathFloat64 is the always-correct fallback: it builds the exact
// rational value of digits*10^(pointExp-len(digits)+1) as a BigInt
// ratio and rounds it to the nearest float64 under rk (spec.md §4.E
// "slow path").
func slowPathFloat64(digits []uint8, pointExp int, rk mathx.RoundingKind, neg bool) float64 {
	numer := mathx.BigIntFromDigits(digits, 10)
	shift := pointExp - len(digits) + 1
	denom := mathx.BigIntFromUint64(1)
	if shift < 0 {
		denom = pow10Big(-shift)
	} else {
		numer = mulPow10(numer, shift)
	}
	return ratioToFloat64(numer, denom, rk, neg)
}
