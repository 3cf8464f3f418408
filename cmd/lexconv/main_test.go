// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "testing"

func TestBuildFormatDigitSeparator(t *testing.T) {
	f, err := buildFormat(10, "_")
	if err != nil {
		t.Fatalf("buildFormat error = %v", err)
	}
	if !f.HasDigitSeparator() || f.DigitSeparator() != '_' {
		t.Errorf("buildFormat with separator %q produced %v/%q", "_", f.HasDigitSeparator(), f.DigitSeparator())
	}
}

func TestBuildFormatRadix(t *testing.T) {
	f, err := buildFormat(16, "")
	if err != nil {
		t.Fatalf("buildFormat error = %v", err)
	}
	if f.Radix() != 16 {
		t.Errorf("buildFormat radix = %d, want 16", f.Radix())
	}
}
