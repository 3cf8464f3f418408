// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package options

import (
	"strings"
	"testing"

	"rsc.io/lexical/lexerr"
)

func TestDefaultsValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
	if err := DefaultWrite().Validate(); err != nil {
		t.Errorf("DefaultWrite().Validate() = %v, want nil", err)
	}
}

func TestParseOptionsValidateTooLong(t *testing.T) {
	o := Default()
	o.NanString = strings.Repeat("n", 51)
	if err := o.Validate(); err == nil {
		t.Fatalf("Validate with 51-char NanString succeeded, want error")
	} else if e, ok := err.(*lexerr.Error); !ok || e.Kind != lexerr.NanStringTooLong {
		t.Errorf("error = %v, want NanStringTooLong", err)
	}
}

func TestParseOptionsValidateInfinityShorterThanInf(t *testing.T) {
	o := Default()
	o.InfString = "infinity"
	o.InfinityString = "inf"
	if err := o.Validate(); err == nil {
		t.Fatalf("Validate with InfinityString shorter than InfString succeeded, want error")
	} else if e, ok := err.(*lexerr.Error); !ok || e.Kind != lexerr.InfinityStringTooShort {
		t.Errorf("error = %v, want InfinityStringTooShort", err)
	}
}

func TestWriteOptionsValidatePrecisionOrder(t *testing.T) {
	o := DefaultWrite()
	o.MinSignificantDigits = 10
	o.MaxSignificantDigits = 5
	if err := o.Validate(); err == nil {
		t.Fatalf("Validate with min > max succeeded, want error")
	} else if e, ok := err.(*lexerr.Error); !ok || e.Kind != lexerr.InvalidFloatPrecision {
		t.Errorf("error = %v, want InvalidFloatPrecision", err)
	}
}

func TestWriteOptionsValidateExponentBreaks(t *testing.T) {
	o := DefaultWrite()
	o.NegativeExponentBreak = 1
	if err := o.Validate(); err == nil {
		t.Fatalf("Validate with positive NegativeExponentBreak succeeded, want error")
	} else if e, ok := err.(*lexerr.Error); !ok || e.Kind != lexerr.InvalidNegativeExponentBreak {
		t.Errorf("error = %v, want InvalidNegativeExponentBreak", err)
	}

	o = DefaultWrite()
	o.PositiveExponentBreak = -1
	if err := o.Validate(); err == nil {
		t.Fatalf("Validate with negative PositiveExponentBreak succeeded, want error")
	} else if e, ok := err.(*lexerr.Error); !ok || e.Kind != lexerr.InvalidPositiveExponentBreak {
		t.Errorf("error = %v, want InvalidPositiveExponentBreak", err)
	}
}
