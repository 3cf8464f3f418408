// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"
)

func TestNormalizeSetsTopBit(t *testing.T) {
	e := NewExtendedFloat(1, 0)
	e.Normalize()
	if !e.IsNormalized() {
		t.Errorf("Normalize did not set the top bit: %#x", e.Mantissa)
	}
	if e.Mantissa != 1<<63 {
		t.Errorf("Mantissa = %#x, want %#x", e.Mantissa, uint64(1)<<63)
	}
	if e.Exponent != -63 {
		t.Errorf("Exponent = %d, want -63", e.Exponent)
	}
}

func TestNormalizeZero(t *testing.T) {
	e := NewExtendedFloat(0, 5)
	shift := e.Normalize()
	if shift != 64 {
		t.Errorf("Normalize of zero mantissa returned shift %d, want 64", shift)
	}
}

func TestMulMatchesFloat64(t *testing.T) {
	a := NewExtendedFloat(1<<63, -63) // 1.0
	b := NewExtendedFloat(3<<62, -62) // 3.0
	prod := a.Mul(b)
	prod.Normalize()
	mantissaBits, biasedExp, isInf := prod.ToFloat64(NearestTiesEven, false)
	if isInf {
		t.Fatalf("Mul(1.0, 3.0) overflowed to infinity")
	}
	got := math.Float64frombits(uint64(biasedExp)<<52 | mantissaBits)
	if got != 3.0 {
		t.Errorf("1.0 * 3.0 via ExtendedFloat.Mul = %v, want 3.0", got)
	}
}

func TestToFloat64RoundTrip(t *testing.T) {
	for _, f := range []float64{1.0, 0.5, 3.14159265358979, 1e300, 1e-300, 123456789.123456} {
		bits := math.Float64bits(f)
		mantissa := bits & (1<<52 - 1)
		biasedExp := int(bits >> 52)
		mantissa |= 1 << 52
		binExp := biasedExp - 1075
		e := NewExtendedFloat(mantissa, int32(binExp))
		e.Normalize()
		mantissaBits, gotExp, isInf := e.ToFloat64(NearestTiesEven, false)
		if isInf {
			t.Errorf("ToFloat64(%v) reported infinity", f)
			continue
		}
		got := math.Float64frombits(uint64(gotExp)<<52 | mantissaBits)
		if got != f {
			t.Errorf("round trip of %v via ExtendedFloat = %v", f, got)
		}
	}
}

func TestToFloat64Overflow(t *testing.T) {
	e := NewExtendedFloat(1<<63, maxExponent-1)
	_, _, isInf := e.ToFloat64(NearestTiesEven, false)
	if !isInf {
		t.Errorf("ToFloat64 of a huge exponent did not report infinity")
	}
}

func TestToFloat64Underflow(t *testing.T) {
	e := NewExtendedFloat(1<<63, -2000)
	mantissaBits, biasedExp, isInf := e.ToFloat64(NearestTiesEven, false)
	if isInf {
		t.Fatalf("ToFloat64 of a tiny exponent reported infinity")
	}
	if mantissaBits != 0 || biasedExp != 0 {
		t.Errorf("ToFloat64 underflow = (%d, %d), want (0, 0)", mantissaBits, biasedExp)
	}
}

func TestMulSaturatesOnMaxExponent(t *testing.T) {
	a := NewExtendedFloat(1<<63, maxExponent)
	b := NewExtendedFloat(1<<63, 0)
	prod := a.Mul(b)
	if prod.Exponent != maxExponent {
		t.Errorf("Mul with a maxExponent operand did not saturate: got exponent %d", prod.Exponent)
	}
}
