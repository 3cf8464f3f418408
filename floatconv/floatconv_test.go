// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package floatconv

import (
	"math"
	"testing"

	"rsc.io/lexical/format"
	"rsc.io/lexical/options"
)

func TestClassifyFloat64(t *testing.T) {
	cases := map[float64]specialKind{
		1.0:           specialNone,
		0:             specialNone,
		math.NaN():    specialNaN,
		math.Inf(1):   specialInf,
		math.Inf(-1):  specialInf,
	}
	for v, want := range cases {
		if got := classifyFloat64(v); got != want {
			t.Errorf("classifyFloat64(%v) = %v, want %v", v, got, want)
		}
	}
}

func TestMatchSpecialCaseInsensitive(t *testing.T) {
	f := stdFormat(t)
	if _, ok := matchSpecial([]byte("NaN"), 0, "nan", f); !ok {
		t.Errorf("matchSpecial(\"NaN\", \"nan\") = false, want true")
	}
	if _, ok := matchSpecial([]byte("INFINITY"), 0, "infinity", f); !ok {
		t.Errorf("matchSpecial(\"INFINITY\", \"infinity\") = false, want true")
	}
	if _, ok := matchSpecial([]byte("inf"), 0, "infinity", f); ok {
		t.Errorf("matchSpecial(\"inf\", \"infinity\") = true, want false (too short)")
	}
	if _, ok := matchSpecial([]byte("x"), 0, "", f); ok {
		t.Errorf("matchSpecial with empty pattern = true, want false")
	}
}

func TestMatchSpecialCaseSensitive(t *testing.T) {
	b, err := format.New(format.Builder{Radix: 10, CaseSensitiveSpecial: true})
	if err != nil {
		t.Fatalf("format.New error = %v", err)
	}
	if _, ok := matchSpecial([]byte("NaN"), 0, "nan", b); ok {
		t.Errorf("matchSpecial(\"NaN\", \"nan\") with CaseSensitiveSpecial = true, want false")
	}
	if _, ok := matchSpecial([]byte("nan"), 0, "nan", b); !ok {
		t.Errorf("matchSpecial(\"nan\", \"nan\") with CaseSensitiveSpecial = false, want true")
	}
}

func TestConsumeSpecialPrefersLongestMatch(t *testing.T) {
	f := stdFormat(t)
	o := options.Default() // NanString=NaN, InfString=inf, InfinityString=infinity
	v, n, ok := consumeSpecial([]byte("infinity"), 0, f, o, false)
	if !ok {
		t.Fatalf("consumeSpecial(\"infinity\") did not match")
	}
	if n != len("infinity") {
		t.Errorf("consumeSpecial(\"infinity\") consumed %d, want %d (the long spelling)", n, len("infinity"))
	}
	if !math.IsInf(v, 1) {
		t.Errorf("consumeSpecial(\"infinity\") = %v, want +Inf", v)
	}
}

func TestConsumeSpecialNegative(t *testing.T) {
	f := stdFormat(t)
	o := options.Default()
	v, _, ok := consumeSpecial([]byte("inf"), 0, f, o, true)
	if !ok || !math.IsInf(v, -1) {
		t.Errorf("consumeSpecial(\"inf\", negative=true) = (%v, %v), want -Inf", v, ok)
	}
}

func TestConsumeSpecialNoMatch(t *testing.T) {
	f := stdFormat(t)
	o := options.Default()
	_, _, ok := consumeSpecial([]byte("hello"), 0, f, o, false)
	if ok {
		t.Errorf("consumeSpecial(\"hello\") matched, want no match")
	}
}
