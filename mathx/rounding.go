// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// RoundingKind selects how a value that falls exactly between, or on
// the wrong side of, two representable results is resolved (spec.md
// §3's RoundingKind enum). It lives here rather than in options,
// since ExtendedFloat's rounding primitives need the decision
// directly; options imports mathx and re-exports the type.
type RoundingKind int

const (
	NearestTiesEven RoundingKind = iota
	NearestTiesAwayFromZero
	TowardPositiveInfinity
	TowardNegativeInfinity
	TowardZero
)

// RoundUp decides, for a value being truncated to some representable
// result, whether the truncated magnitude should be incremented.
// cmpHalf compares the discarded bits/digits against the halfway
// point (-1 below, 0 exactly at, +1 above); exact reports that
// nothing was discarded at all; lastBitOdd is the parity of the
// lowest kept bit/digit; neg is the sign of the value being rounded
// (ExtendedFloat and BigInt both operate on magnitudes only, so the
// sign has to be threaded in here for the directed modes, which are
// not symmetric in the sign the way the nearest/toward-zero modes
// are).
func RoundUp(kind RoundingKind, cmpHalf int, exact, lastBitOdd, neg bool) bool {
	if exact {
		return false
	}
	switch kind {
	case NearestTiesAwayFromZero:
		return cmpHalf >= 0
	case TowardZero:
		return false
	case TowardPositiveInfinity:
		return !neg
	case TowardNegativeInfinity:
		return neg
	default: // NearestTiesEven
		return cmpHalf > 0 || (cmpHalf == 0 && lastBitOdd)
	}
}
