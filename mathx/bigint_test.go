// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math/big"
	"testing"
)

func toStdBig(b BigInt) *big.Int {
	out := new(big.Int)
	base := new(big.Int).Lsh(big.NewInt(1), 64)
	for i := len(b.limbs) - 1; i >= 0; i-- {
		out.Mul(out, base)
		out.Add(out, new(big.Int).SetUint64(b.limbs[i]))
	}
	return out
}

func TestAddSub(t *testing.T) {
	a := BigIntFromUint64(1<<63 + 5)
	b := BigIntFromUint64(1<<62 + 7)
	sum := a.Add(b)
	want := new(big.Int).Add(toStdBig(a), toStdBig(b))
	if toStdBig(sum).Cmp(want) != 0 {
		t.Errorf("Add = %v, want %v", toStdBig(sum), want)
	}
	diff := sum.Sub(b)
	if toStdBig(diff).Cmp(toStdBig(a)) != 0 {
		t.Errorf("Sub = %v, want %v", toStdBig(diff), toStdBig(a))
	}
}

func TestMulSchoolbookAndKaratsuba(t *testing.T) {
	big1 := BigIntFromUint64(1)
	acc := big1
	for i := 0; i < 40; i++ {
		acc = acc.MulSmall(1<<32 + 3)
	}
	square := acc.Mul(acc)
	want := new(big.Int).Mul(toStdBig(acc), toStdBig(acc))
	if toStdBig(square).Cmp(want) != 0 {
		t.Errorf("Mul (karatsuba path) mismatch:\ngot  %v\nwant %v", toStdBig(square), want)
	}
}

func TestMulSmallValues(t *testing.T) {
	a := BigIntFromUint64(123456789)
	b := BigIntFromUint64(987654321)
	got := a.Mul(b)
	want := new(big.Int).Mul(toStdBig(a), toStdBig(b))
	if toStdBig(got).Cmp(want) != 0 {
		t.Errorf("Mul = %v, want %v", toStdBig(got), want)
	}
}

func TestDivModKnuth(t *testing.T) {
	a := BigIntFromDigits([]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 0}, 10)
	b := BigIntFromDigits([]uint8{9, 8, 7, 6, 5, 4, 3, 2, 1}, 10)
	q, r := a.DivMod(b)

	wantQ, wantR := new(big.Int).QuoRem(toStdBig(a), toStdBig(b), new(big.Int))
	if toStdBig(q).Cmp(wantQ) != 0 {
		t.Errorf("DivMod quotient = %v, want %v", toStdBig(q), wantQ)
	}
	if toStdBig(r).Cmp(wantR) != 0 {
		t.Errorf("DivMod remainder = %v, want %v", toStdBig(r), wantR)
	}
}

func TestDivModSingleLimbDivisor(t *testing.T) {
	a := BigIntFromDigits([]uint8{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}, 10)
	b := BigIntFromUint64(7)
	q, r := a.DivMod(b)
	wantQ, wantR := new(big.Int).QuoRem(toStdBig(a), toStdBig(b), new(big.Int))
	if toStdBig(q).Cmp(wantQ) != 0 || toStdBig(r).Cmp(wantR) != 0 {
		t.Errorf("DivMod = (%v, %v), want (%v, %v)", toStdBig(q), toStdBig(r), wantQ, wantR)
	}
}

func TestQuoRemDigit(t *testing.T) {
	rem := BigIntFromUint64(3)
	denom := BigIntFromUint64(7)
	var digits []uint8
	for i := 0; i < 6; i++ {
		digits = append(digits, QuoRemDigit(&rem, 10, denom))
	}
	// 3/7 = 0.428571 42 8571...
	want := []uint8{4, 2, 8, 5, 7, 1}
	for i, d := range digits {
		if d != want[i] {
			t.Errorf("digit %d = %d, want %d", i, d, want[i])
		}
	}
}

func TestLshRsh(t *testing.T) {
	a := BigIntFromUint64(0x0102030405060708)
	shifted := a.Lsh(70)
	back := shifted.Rsh(70)
	if back.Cmp(a) != 0 {
		t.Errorf("Lsh then Rsh by 70 = %v, want %v", toStdBig(back), toStdBig(a))
	}
}

func TestBitLenAndCmp(t *testing.T) {
	a := BigIntFromUint64(1 << 40)
	if a.BitLen() != 41 {
		t.Errorf("BitLen() = %d, want 41", a.BitLen())
	}
	b := BigIntFromUint64(1 << 41)
	if a.Cmp(b) >= 0 {
		t.Errorf("Cmp: expected a < b")
	}
}
