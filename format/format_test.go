// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package format

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"rsc.io/lexical/lexerr"
)

func TestStandardDefaults(t *testing.T) {
	f, err := New(Standard())
	if err != nil {
		t.Fatalf("New(Standard()) error = %v", err)
	}
	if f.Radix() != 10 {
		t.Errorf("Radix() = %d, want 10", f.Radix())
	}
	if f.DecimalPoint() != '.' {
		t.Errorf("DecimalPoint() = %q, want '.'", f.DecimalPoint())
	}
	if f.ExponentSymbol() != 'e' {
		t.Errorf("ExponentSymbol() = %q, want 'e'", f.ExponentSymbol())
	}
	if !f.RequiredExponentDigits() {
		t.Errorf("RequiredExponentDigits() = false, want true")
	}
	if f.HasDigitSeparator() {
		t.Errorf("HasDigitSeparator() = true, want false")
	}
}

func TestNewRejectsBadRadix(t *testing.T) {
	b := Standard()
	b.Radix = 37
	if _, err := New(b); err == nil {
		t.Fatalf("New with radix 37 succeeded, want error")
	} else if e, ok := err.(*lexerr.Error); !ok || e.Kind != lexerr.InvalidMantissaRadix {
		t.Errorf("error = %v, want InvalidMantissaRadix", err)
	}
}

func TestNewRejectsPunctuationCollision(t *testing.T) {
	b := Standard()
	b.DigitSeparator = '.'
	if _, err := New(b); err == nil {
		t.Fatalf("New with colliding separator/decimal point succeeded, want error")
	}
}

func TestNewRejectsMutuallyExclusiveSignFlags(t *testing.T) {
	b := Standard()
	b.RequiredMantissaSign = true
	b.NoPositiveMantissaSign = true
	if _, err := New(b); err == nil {
		t.Fatalf("New with required+no-positive sign succeeded, want error")
	} else if e, ok := err.(*lexerr.Error); !ok || e.Kind != lexerr.InvalidMantissaSign {
		t.Errorf("error = %v, want InvalidMantissaSign", err)
	}
}

func TestNewRejectsLossyIncorrect(t *testing.T) {
	b := Standard()
	b.Lossy = true
	b.Incorrect = true
	if _, err := New(b); err == nil {
		t.Fatalf("New with lossy+incorrect succeeded, want error")
	}
}

func TestDigitSeparatorFlags(t *testing.T) {
	b := Standard()
	b.DigitSeparator = '_'
	b.IntegerInternalDigitSeparator = true
	f, err := New(b)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !f.HasDigitSeparator() {
		t.Errorf("HasDigitSeparator() = false, want true")
	}
	if !f.IntegerInternalDigitSeparator() {
		t.Errorf("IntegerInternalDigitSeparator() = false, want true")
	}
	if f.FractionInternalDigitSeparator() {
		t.Errorf("FractionInternalDigitSeparator() = true, want false")
	}
	if diff := cmp.Diff(byte('_'), f.DigitSeparator()); diff != "" {
		t.Errorf("DigitSeparator() mismatch (-want +got):\n%s", diff)
	}
}

func TestConsecutiveSeparatorRequiresPlacementFlag(t *testing.T) {
	b := Standard()
	b.DigitSeparator = '_'
	b.IntegerConsecutiveDigitSeparator = true
	if _, err := New(b); err == nil {
		t.Fatalf("New with consecutive but no placement flag succeeded, want error")
	} else if e, ok := err.(*lexerr.Error); !ok || e.Kind != lexerr.InvalidConsecutiveIntegerDigitSeparator {
		t.Errorf("error = %v, want InvalidConsecutiveIntegerDigitSeparator", err)
	}
}
