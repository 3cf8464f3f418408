// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "testing"

func TestHiBits64Aligned(t *testing.T) {
	limbs := []uint64{0, 1 << 63}
	hi, sticky := HiBits64(limbs)
	if hi != 1<<63 {
		t.Errorf("HiBits64 = %#x, want %#x", hi, uint64(1)<<63)
	}
	if sticky {
		t.Errorf("HiBits64 sticky = true, want false")
	}
}

func TestHiBits64Unaligned(t *testing.T) {
	limbs := []uint64{1, 1}
	hi, sticky := HiBits64(limbs)
	if hi>>63 != 1 {
		t.Errorf("HiBits64 top bit not set after shift: %#x", hi)
	}
	if !sticky {
		t.Errorf("HiBits64 sticky = false, want true (low limb has set bits below the window)")
	}
}

func TestHiBits64EmptyAndZero(t *testing.T) {
	if hi, sticky := HiBits64(nil); hi != 0 || sticky {
		t.Errorf("HiBits64(nil) = (%d, %v), want (0, false)", hi, sticky)
	}
	if hi, sticky := HiBits64([]uint64{0, 0}); hi != 0 || sticky {
		t.Errorf("HiBits64(all zero) = (%d, %v), want (0, false)", hi, sticky)
	}
}

func TestHiBits128(t *testing.T) {
	b := BigIntFromUint64(1).Lsh(150) // sets bit 150 only
	hi, lo, sticky := HiBits128(b)
	if sticky {
		t.Errorf("HiBits128 sticky = true, want false for a single set bit at the top")
	}
	if hi == 0 && lo == 0 {
		t.Errorf("HiBits128 returned all-zero hi/lo for a nonzero BigInt")
	}
}

func TestHiBits16And32(t *testing.T) {
	hi64 := uint64(0x1234_5678_9abc_def0)
	hi16, sticky16 := HiBits16(hi64, false)
	if hi16 != 0x1234 {
		t.Errorf("HiBits16 = %#x, want 0x1234", hi16)
	}
	if !sticky16 {
		t.Errorf("HiBits16 sticky = false, want true")
	}
	hi32, sticky32 := HiBits32(hi64, false)
	if hi32 != 0x1234_5678 {
		t.Errorf("HiBits32 = %#x, want 0x12345678", hi32)
	}
	if !sticky32 {
		t.Errorf("HiBits32 sticky = false, want true")
	}
}

func TestHiBits16And32NoRemainder(t *testing.T) {
	hi64 := uint64(0x1234_0000_0000_0000)
	if _, sticky := HiBits16(hi64, false); sticky {
		t.Errorf("HiBits16 sticky = true, want false when low bits are all zero")
	}
}
