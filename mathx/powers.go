// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "sync"

// PowersOfRadix holds the precomputed tables spec.md §4.A calls
// get_powers(radix): small exact integer and ExtendedFloat powers used
// directly, and widely-spaced large ExtendedFloat powers used to reach
// any exponent in a single small-power * large-power multiply.
type PowersOfRadix struct {
	Radix uint8

	// Large[i] holds radix^((i - Bias/Step)*Step): Pow adds Bias/Step
	// to the floor quotient of a requested exponent by Step to index
	// Large. Step is the spacing between stored Large exponents.
	Bias int
	Step int

	// Small holds the exact ExtendedFloat for radix^0..radix^(Step-1).
	Small []ExtendedFloat

	// SmallInt holds the exact integer value of each Small power that
	// fits in a uint64 (zero for one that does not); Pow does not use
	// it.
	SmallInt []uint64

	// Large holds ExtendedFloat powers radix^(k*Step) for k spanning
	// IEEE-754 binary64's representable decimal exponent range.
	Large []ExtendedFloat
}

var (
	powersMu    sync.Mutex
	powersCache = map[uint8]*PowersOfRadix{}
)

// largeExponentSpan bounds the k range of Large: binary64's decimal
// exponent range is roughly [-324, 309], so +/-400 in steps of Step
// covers it with margin for radix 10. For every radix the table spans
// radix exponents -400 through 400+Step-1; Pow reports false outside it.
const largeExponentSpan = 400

// GetPowers returns the cached PowersOfRadix for radix, generating it
// on first use. All tables are deterministic functions of radix alone
// (spec.md §4.A "compile-time constants ... generated deterministically
// from radix"); Go has no const-eval path for 128-bit products, so we
// generate once via BigInt and cache, which is observationally
// equivalent to a compile-time table.
func GetPowers(radix uint8) *PowersOfRadix {
	powersMu.Lock()
	defer powersMu.Unlock()
	if p, ok := powersCache[radix]; ok {
		return p
	}
	p := buildPowers(radix)
	powersCache[radix] = p
	return p
}

func buildPowers(radix uint8) *PowersOfRadix {
	const step = 8
	p := &PowersOfRadix{
		Radix: radix,
		Step:  step,
		Bias:  largeExponentSpan,
	}

	p.SmallInt = make([]uint64, step)
	p.Small = make([]ExtendedFloat, step)
	acc := BigIntFromUint64(1)
	for k := 0; k < step; k++ {
		v, exact := acc.Uint64()
		if exact {
			p.SmallInt[k] = v
		}
		p.Small[k] = extendedFloatFromBigInt(acc)
		acc = acc.MulSmall(uint64(radix))
	}

	n := 2*largeExponentSpan/step + 1
	p.Large = make([]ExtendedFloat, n)
	mid := largeExponentSpan / step
	for idx := 0; idx < n; idx++ {
		k := idx - mid // radix^(k*step)
		p.Large[idx] = exactPow(radix, k*step)
	}

	return p
}

// exactPow returns radix^e as a 64-bit ExtendedFloat for any sign of
// e, computed via BigInt: for e >= 0 it is the exact power cut to 64
// bits by extendedFloatFromBigInt; for e < 0 it is the truncated
// quotient of a sufficiently left-shifted 1 divided by radix^(-e)
// (mathx.BigInt.DivMod, Knuth division), cut the same way, rather than
// an iterative floating-point reciprocal.
func exactPow(radix uint8, e int) ExtendedFloat {
	if e >= 0 {
		acc := BigIntFromUint64(1)
		for i := 0; i < e; i++ {
			acc = acc.MulSmall(uint64(radix))
		}
		return extendedFloatFromBigInt(acc)
	}
	denom := BigIntFromUint64(1)
	for i := 0; i < -e; i++ {
		denom = denom.MulSmall(uint64(radix))
	}
	shift := 64 + denom.BitLen()
	numerator := BigIntFromUint64(1).Lsh(uint(shift))
	q, _ := numerator.DivMod(denom)
	result := extendedFloatFromBigInt(q)
	result.Exponent -= int32(shift)
	return result
}

// extendedFloatFromBigInt returns b's top 64 bits as a normalized
// ExtendedFloat, truncated, with the lowest mantissa bit set when any
// discarded bit was nonzero.
func extendedFloatFromBigInt(b BigInt) ExtendedFloat {
	if b.IsZero() {
		return ExtendedFloat{}
	}
	bitLen := b.BitLen()
	if bitLen <= 64 {
		v, _ := b.Uint64()
		e := ExtendedFloat{Mantissa: v}
		e.Normalize()
		return e
	}
	shift := uint(bitLen - 64)
	hi, sticky := HiBits64(b.limbs)
	mant := hi
	if sticky {
		mant |= 1
	}
	return ExtendedFloat{Mantissa: mant, Exponent: int32(shift)}
}

// Pow returns radix^exp as an ExtendedFloat, decomposing exp into a
// large-table lookup plus a small-table multiply (spec.md §4.A/§4.E
// moderate path "two-step small-power x large-power decomposition").
func (p *PowersOfRadix) Pow(exp int) (ExtendedFloat, bool) {
	q, rem := floorDiv(exp, p.Step)
	idx := q + p.Bias/p.Step
	if idx < 0 || idx >= len(p.Large) {
		return ExtendedFloat{}, false
	}
	result := p.Large[idx]
	if rem != 0 {
		result = result.Mul(p.Small[rem])
		result.Normalize()
	}
	return result, true
}

func floorDiv(a, b int) (q, r int) {
	q = a / b
	r = a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
		r += b
	}
	return q, r
}
