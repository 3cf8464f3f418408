// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math/bits"

// HiBits64 returns the top 64 bits of the conceptually concatenated
// little-endian limb slice (most-significant limb first in the
// result), plus whether any bit below that window is set (the
// "sticky" bit the slow parser's rounding decision needs, spec.md
// §4.A). An empty slice returns 0, false.
func HiBits64(limbs []uint64) (hi uint64, sticky bool) {
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return 0, false
	}
	top := limbs[n-1]
	shift := bits.LeadingZeros64(top)
	hi = top << shift
	var lowerBits uint64
	if n >= 2 {
		lowerBits = limbs[n-2]
		if shift > 0 {
			hi |= lowerBits >> (64 - shift)
			lowerBits <<= shift
		}
	}
	sticky = lowerBits != 0
	for i := n - 3; i >= 0 && !sticky; i-- {
		sticky = limbs[i] != 0
	}
	return hi, sticky
}

// HiBits128 extracts the top 128 bits of the BigInt b as two uint64
// halves (hi, lo), plus the sticky bit for everything below that window.
func HiBits128(b BigInt) (hi, lo uint64, sticky bool) {
	limbs := b.limbs
	n := len(limbs)
	for n > 0 && limbs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return 0, 0, false
	}
	top := limbs[n-1]
	shift := bits.LeadingZeros64(top)
	hi = top << shift
	if shift > 0 && n >= 2 {
		hi |= limbs[n-2] >> (64 - shift)
	}
	if n >= 2 {
		lo = limbs[n-2] << shift
		if shift > 0 && n >= 3 {
			lo |= limbs[n-3] >> (64 - shift)
		}
	}
	sticky = anyNonzeroBelow(limbs, n, shift)
	return hi, lo, sticky
}

// anyNonzeroBelow reports whether any bit below the top 128 extracted
// bits (n significant limbs, top limb left-aligned by shift) is set.
func anyNonzeroBelow(limbs []uint64, n int, shift int) bool {
	if n <= 2 {
		return false
	}
	if limbs[n-3]<<shift != 0 {
		return true
	}
	for i := n - 4; i >= 0; i-- {
		if limbs[i] != 0 {
			return true
		}
	}
	return false
}

// HiBits16 and HiBits32 extract narrower windows from a single hi64,
// with a sticky bit covering stickyIn and the discarded low bits.
func HiBits16(hi64 uint64, stickyIn bool) (hi uint16, sticky bool) {
	return uint16(hi64 >> 48), stickyIn || hi64<<16 != 0
}

func HiBits32(hi64 uint64, stickyIn bool) (hi uint32, sticky bool) {
	return uint32(hi64 >> 32), stickyIn || hi64<<32 != 0
}
