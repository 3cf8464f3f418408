// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements the extended-precision arithmetic primitives
// of spec.md §4.A: an ExtendedFloat mantissa/exponent pair, a limb-based
// BigInt, compile-time power tables, and hi-bits extraction. Apart from
// GetPowers' process-wide cache of power tables, none of it retains
// state across calls; every other value here is transient working
// storage for a single atof/ftoa call.
package mathx

import "math/bits"

// BigInt is a little-endian, arbitrary-precision non-negative integer:
// limbs[0] is the least-significant 64-bit word. A nil or empty limb
// slice represents zero. BigInt is normalized on every operation that
// produces one: no BigInt returned by a function in this package carries
// a trailing (most-significant) zero limb.
type BigInt struct {
	limbs []uint64
}

// karatsubaCutoff is the limb count above which Mul switches from
// schoolbook to Karatsuba multiplication (spec.md §4.A).
const karatsubaCutoff = 32

// BigIntFromUint64 returns the BigInt equal to v.
func BigIntFromUint64(v uint64) BigInt {
	if v == 0 {
		return BigInt{}
	}
	return BigInt{limbs: []uint64{v}}
}

// BigIntFromDigits builds a BigInt from a most-significant-first slice
// of digit values (each < radix) by repeated multiply-add, the
// operation the slow atof path uses to scale a parsed mantissa into a
// big integer (spec.md §4.E "slow path").
func BigIntFromDigits(digits []uint8, radix uint8) BigInt {
	b := BigInt{}
	r := uint64(radix)
	for _, d := range digits {
		b = b.mulAddSmall(r, uint64(d))
	}
	return b
}

func (b BigInt) clone() BigInt {
	return BigInt{limbs: append([]uint64(nil), b.limbs...)}
}

func (b BigInt) normalize() BigInt {
	n := len(b.limbs)
	for n > 0 && b.limbs[n-1] == 0 {
		n--
	}
	return BigInt{limbs: b.limbs[:n]}
}

// IsZero reports whether b is zero.
func (b BigInt) IsZero() bool { return len(b.limbs) == 0 }

// BitLen returns the number of bits required to represent b, or 0 for
// zero.
func (b BigInt) BitLen() int {
	n := len(b.limbs)
	if n == 0 {
		return 0
	}
	return (n-1)*64 + bits.Len64(b.limbs[n-1])
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater
// than b.
func (a BigInt) Cmp(b BigInt) int {
	if len(a.limbs) != len(b.limbs) {
		if len(a.limbs) < len(b.limbs) {
			return -1
		}
		return 1
	}
	for i := len(a.limbs) - 1; i >= 0; i-- {
		if a.limbs[i] != b.limbs[i] {
			if a.limbs[i] < b.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add returns a+b.
func (a BigInt) Add(b BigInt) BigInt {
	if len(a.limbs) < len(b.limbs) {
		a, b = b, a
	}
	out := make([]uint64, len(a.limbs)+1)
	var carry uint64
	i := 0
	for ; i < len(b.limbs); i++ {
		out[i], carry = bits.Add64(a.limbs[i], b.limbs[i], carry)
	}
	for ; i < len(a.limbs); i++ {
		out[i], carry = bits.Add64(a.limbs[i], 0, carry)
	}
	out[i] = carry
	return BigInt{limbs: out}.normalize()
}

// Sub returns a-b. Precondition: a >= b.
func (a BigInt) Sub(b BigInt) BigInt {
	out := make([]uint64, len(a.limbs))
	var borrow uint64
	i := 0
	for ; i < len(b.limbs); i++ {
		out[i], borrow = bits.Sub64(a.limbs[i], b.limbs[i], borrow)
	}
	for ; i < len(a.limbs); i++ {
		out[i], borrow = bits.Sub64(a.limbs[i], 0, borrow)
	}
	return BigInt{limbs: out}.normalize()
}

// mulAddSmall returns b*m+add, where m and add are single limbs; this
// is the inner step of BigIntFromDigits and of MulSmall.
func (b BigInt) mulAddSmall(m, add uint64) BigInt {
	out := make([]uint64, len(b.limbs)+1)
	carry := add
	for i, limb := range b.limbs {
		hi, lo := bits.Mul64(limb, m)
		var c uint64
		out[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	out[len(b.limbs)] = carry
	return BigInt{limbs: out}.normalize()
}

// MulSmall returns b*m for a single-limb multiplier m.
func (b BigInt) MulSmall(m uint64) BigInt {
	return b.mulAddSmall(m, 0)
}

// Mul returns a*b, via schoolbook multiplication below karatsubaCutoff
// limbs and Karatsuba recursion above it (spec.md §4.A).
func (a BigInt) Mul(b BigInt) BigInt {
	if a.IsZero() || b.IsZero() {
		return BigInt{}
	}
	if len(a.limbs) < karatsubaCutoff || len(b.limbs) < karatsubaCutoff {
		return schoolbookMul(a.limbs, b.limbs)
	}
	return karatsubaMul(a, b)
}

func schoolbookMul(x, y []uint64) BigInt {
	out := make([]uint64, len(x)+len(y))
	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			hi, lo := bits.Mul64(xi, yj)
			var c1, c2 uint64
			out[i+j], c1 = bits.Add64(out[i+j], lo, 0)
			out[i+j], c2 = bits.Add64(out[i+j], carry, 0)
			carry = hi + c1 + c2
		}
		out[i+len(y)] += carry
	}
	return BigInt{limbs: out}.normalize()
}

// karatsubaMul splits a and b at half their limb count and combines
// three half-size products: z2 = a1*b1, z0 = a0*b0, z1 = (a0+a1)*(b0+b1) - z2 - z0.
func karatsubaMul(a, b BigInt) BigInt {
	n := max(len(a.limbs), len(b.limbs))
	half := n / 2

	a0, a1 := splitAt(a.limbs, half)
	b0, b1 := splitAt(b.limbs, half)

	z2 := BigInt{limbs: a1}.Mul(BigInt{limbs: b1})
	z0 := BigInt{limbs: a0}.Mul(BigInt{limbs: b0})

	aSum := BigInt{limbs: a0}.Add(BigInt{limbs: a1})
	bSum := BigInt{limbs: b0}.Add(BigInt{limbs: b1})
	mid := aSum.Mul(bSum).Sub(z2).Sub(z0)

	result := z0
	result = result.Add(mid.shiftLimbs(half))
	result = result.Add(z2.shiftLimbs(2 * half))
	return result.normalize()
}

func splitAt(limbs []uint64, half int) (lo, hi []uint64) {
	if half >= len(limbs) {
		return append([]uint64(nil), limbs...), nil
	}
	lo = append([]uint64(nil), limbs[:half]...)
	hi = append([]uint64(nil), limbs[half:]...)
	return lo, hi
}

// shiftLimbs returns b shifted left by n whole 64-bit limbs.
func (b BigInt) shiftLimbs(n int) BigInt {
	if b.IsZero() {
		return BigInt{}
	}
	out := make([]uint64, n+len(b.limbs))
	copy(out[n:], b.limbs)
	return BigInt{limbs: out}
}

// Lsh returns b<<n.
func (b BigInt) Lsh(n uint) BigInt {
	if b.IsZero() || n == 0 {
		return b
	}
	limbShift := int(n / 64)
	bitShift := n % 64
	if bitShift == 0 {
		return b.shiftLimbs(limbShift)
	}
	out := make([]uint64, len(b.limbs)+limbShift+1)
	for i, limb := range b.limbs {
		out[i+limbShift] |= limb << bitShift
		out[i+limbShift+1] |= limb >> (64 - bitShift)
	}
	return BigInt{limbs: out}.normalize()
}

// Rsh returns b>>n.
func (b BigInt) Rsh(n uint) BigInt {
	limbShift := int(n / 64)
	bitShift := n % 64
	if limbShift >= len(b.limbs) {
		return BigInt{}
	}
	src := b.limbs[limbShift:]
	out := make([]uint64, len(src))
	if bitShift == 0 {
		copy(out, src)
	} else {
		for i := range src {
			out[i] = src[i] >> bitShift
			if i+1 < len(src) {
				out[i] |= src[i+1] << (64 - bitShift)
			}
		}
	}
	return BigInt{limbs: out}.normalize()
}

// DivMod returns (a/b, a%b) via a single-limb fast path for a one-limb
// divisor, or Knuth Algorithm D otherwise (spec.md §4.A). b must be
// nonzero.
func (a BigInt) DivMod(b BigInt) (q, r BigInt) {
	if len(b.limbs) == 0 {
		panic("mathx: division by zero")
	}
	if a.Cmp(b) < 0 {
		return BigInt{}, a
	}
	if len(b.limbs) == 1 {
		return a.divModSmall(b.limbs[0])
	}
	return knuthDivMod(a, b)
}

func (a BigInt) divModSmall(d uint64) (q, r BigInt) {
	out := make([]uint64, len(a.limbs))
	var rem uint64
	for i := len(a.limbs) - 1; i >= 0; i-- {
		out[i], rem = bits.Div64(rem, a.limbs[i], d)
	}
	return BigInt{limbs: out}.normalize(), BigIntFromUint64(rem)
}

// knuthDivMod implements Knuth's Algorithm D (TAOCP vol 2, §4.3.1):
// normalize the divisor so its leading limb's top bit is set, then for
// each of m-n+1 quotient limbs estimate a digit from the top two
// dividend limbs over the top divisor limb, multiply-subtract, and
// correct by at most one add-back when the estimate overshoots.
func knuthDivMod(a, b BigInt) (q, r BigInt) {
	shift := uint(bits.LeadingZeros64(b.limbs[len(b.limbs)-1]))
	u := a.Lsh(shift)
	v := b.Lsh(shift)

	n := len(v.limbs)
	m := len(u.limbs) - n
	if m < 0 {
		m = 0
	}
	uLimbs := make([]uint64, len(u.limbs)+1)
	copy(uLimbs, u.limbs)

	qLimbs := make([]uint64, m+1)
	vTop := v.limbs[n-1]
	var vSecond uint64
	if n >= 2 {
		vSecond = v.limbs[n-2]
	}

	for j := m; j >= 0; j-- {
		// Estimate qhat from the top two dividend limbs over the top
		// divisor limb; a divisor of ^uint64(0) would overflow Div64,
		// so that case is handled directly.
		var qhat, rhat uint64
		if uLimbs[j+n] == vTop {
			qhat = ^uint64(0)
			rhat = uLimbs[j+n-1] + vTop
		} else {
			qhat, rhat = bits.Div64(uLimbs[j+n], uLimbs[j+n-1], vTop)
		}

		// Refine qhat using the divisor's second limb, correcting by
		// at most two decrements (Knuth's bound). Once rhat would
		// overflow past a 64-bit limb, rhat*2^64 already dominates any
		// uNext comparison and no further correction is possible.
		rhatOverflowed := false
		for !rhatOverflowed {
			var uNext uint64
			if n >= 2 {
				uNext = uLimbs[j+n-2]
			}
			hiProd, loProd := bits.Mul64(qhat, vSecond)
			if hiProd < rhat || (hiProd == rhat && loProd <= uNext) {
				break
			}
			qhat--
			var carry uint64
			rhat, carry = bits.Add64(rhat, vTop, 0)
			rhatOverflowed = carry != 0
		}

		// Multiply-subtract qhat*v from u[j:j+n+1].
		var borrow uint64
		for i := 0; i < n; i++ {
			hi, lo := bits.Mul64(qhat, v.limbs[i])
			sub, b1 := bits.Sub64(uLimbs[j+i], lo, 0)
			sub, b2 := bits.Sub64(sub, borrow, 0)
			uLimbs[j+i] = sub
			borrow = hi + b1 + b2
		}
		top, overshoot := bits.Sub64(uLimbs[j+n], borrow, 0)
		uLimbs[j+n] = top

		if overshoot != 0 {
			// qhat was one too large: add v back and decrement qhat.
			qhat--
			var c uint64
			for i := 0; i < n; i++ {
				s, cc := bits.Add64(uLimbs[j+i], v.limbs[i], c)
				uLimbs[j+i] = s
				c = cc
			}
			uLimbs[j+n] += c
		}
		qLimbs[j] = qhat
	}

	rLimbs := make([]uint64, n)
	copy(rLimbs, uLimbs[:n])
	rem := BigInt{limbs: rLimbs}.normalize().Rsh(shift)
	return BigInt{limbs: qLimbs}.normalize(), rem
}

// QuoRemDigit multiplies *a by radix, divides the product by denom,
// replaces *a with the remainder, and returns the quotient digit. This
// is the quorem primitive of spec.md §4.A: it emits one digit of a
// radix-scaled ratio while leaving the remainder in a for the next
// call. floatconv's digitsExact calls it to emit one digit at a time;
// the slow float parser rounds through DivMod and HiBits128 instead.
func QuoRemDigit(a *BigInt, radix uint8, denom BigInt) uint8 {
	scaled := a.MulSmall(uint64(radix))
	q, r := scaled.DivMod(denom)
	*a = r
	if len(q.limbs) == 0 {
		return 0
	}
	return uint8(q.limbs[0])
}

// Uint64 returns b as a uint64 and reports whether it fit without
// truncation.
func (b BigInt) Uint64() (v uint64, exact bool) {
	switch len(b.limbs) {
	case 0:
		return 0, true
	case 1:
		return b.limbs[0], true
	default:
		return b.limbs[0], false
	}
}
