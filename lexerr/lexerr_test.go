// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexerr

import (
	"errors"
	"testing"
)

func TestErrorString(t *testing.T) {
	e := New(Overflow, 7)
	const want = "value out of range (overflow) at index 7"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestKindStringUnknown(t *testing.T) {
	var k Kind = 9999
	if got, want := k.String(), "unknown error kind (9999)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	err := New(Overflow, 3)
	if !errors.Is(err, New(Overflow, 0)) {
		t.Errorf("errors.Is should match on Kind regardless of Index")
	}
	if errors.Is(err, New(Underflow, 3)) {
		t.Errorf("errors.Is should not match a different Kind")
	}
}

func TestAllKindsNamed(t *testing.T) {
	for k := Empty; k <= InvalidPositiveExponentBreak; k++ {
		if _, ok := names[k]; !ok {
			t.Errorf("Kind %d has no entry in names", k)
		}
	}
}
