// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexical

import (
	"strconv"
	"testing"

	"rsc.io/lexical/format"
	"rsc.io/lexical/options"
)

func stdFormat(t *testing.T) format.Format {
	t.Helper()
	f, err := format.New(format.Standard())
	if err != nil {
		t.Fatalf("format.New(Standard()) error = %v", err)
	}
	return f
}

func TestParseCompleteIntSigned(t *testing.T) {
	f := stdFormat(t)
	v, err := ParseCompleteInt[int32]([]byte("-12345"), f)
	if err != nil {
		t.Fatalf("ParseCompleteInt error = %v", err)
	}
	if v != -12345 {
		t.Errorf("ParseCompleteInt = %d, want -12345", v)
	}
}

func TestParseCompleteIntTrailingGarbage(t *testing.T) {
	f := stdFormat(t)
	_, err := ParseCompleteInt[int64]([]byte("123abc"), f)
	if err == nil {
		t.Fatalf("ParseCompleteInt(\"123abc\") succeeded, want error")
	}
}

func TestParsePartialIntUnsigned(t *testing.T) {
	f := stdFormat(t)
	v, n, err := ParsePartialInt[uint8]([]byte("200rest"), f)
	if err != nil {
		t.Fatalf("ParsePartialInt error = %v", err)
	}
	if v != 200 || n != 3 {
		t.Errorf("ParsePartialInt(\"200rest\") = (%d, %d), want (200, 3)", v, n)
	}
}

func TestParsePartialIntOverflowsNarrowWidth(t *testing.T) {
	f := stdFormat(t)
	_, _, err := ParsePartialInt[uint8]([]byte("256"), f)
	if err == nil {
		t.Fatalf("ParsePartialInt[uint8](\"256\") succeeded, want overflow error")
	}
}

func TestWriteIntRoundTrip(t *testing.T) {
	f := stdFormat(t)
	cases := []int64{0, 1, -1, 42, -42, 2147483647, -2147483648}
	for _, v := range cases {
		var buf [32]byte
		n := WriteInt(buf[:], int32(v), f)
		got := string(buf[:n])
		want := strconv.FormatInt(v, 10)
		if got != want {
			t.Errorf("WriteInt(%d) = %q, want %q", v, got, want)
		}
		back, err := ParseCompleteInt[int32](buf[:n], f)
		if err != nil {
			t.Errorf("ParseCompleteInt(%q) error = %v", got, err)
			continue
		}
		if int64(back) != v {
			t.Errorf("round trip of %d via WriteInt/ParseCompleteInt = %d", v, back)
		}
	}
}

func TestWriteIntUnsignedTypes(t *testing.T) {
	f := stdFormat(t)
	var buf [32]byte
	n := WriteInt[uint64](buf[:], 18446744073709551615, f)
	if string(buf[:n]) != "18446744073709551615" {
		t.Errorf("WriteInt[uint64](MaxUint64) = %q", string(buf[:n]))
	}
}

func TestParseCompleteFloatAndWriteFloat(t *testing.T) {
	f := stdFormat(t)
	po := options.Default()
	wo := options.DefaultWrite()

	v, err := ParseCompleteFloat[float64]([]byte("3.14159"), f, po)
	if err != nil {
		t.Fatalf("ParseCompleteFloat error = %v", err)
	}
	if v != 3.14159 {
		t.Errorf("ParseCompleteFloat(\"3.14159\") = %v, want 3.14159", v)
	}

	var buf [64]byte
	n := WriteFloat(buf[:], v, f, wo)
	back, err := ParseCompleteFloat[float64](buf[:n], f, po)
	if err != nil {
		t.Fatalf("ParseCompleteFloat(written) error = %v", err)
	}
	if back != v {
		t.Errorf("round trip of %v via WriteFloat/ParseCompleteFloat = %v", v, back)
	}
}

func TestParsePartialFloatFloat32(t *testing.T) {
	f := stdFormat(t)
	po := options.Default()
	v, n, err := ParsePartialFloat[float32]([]byte("2.5rest"), f, po)
	if err != nil {
		t.Fatalf("ParsePartialFloat error = %v", err)
	}
	if v != 2.5 || n != 3 {
		t.Errorf("ParsePartialFloat(\"2.5rest\") = (%v, %d), want (2.5, 3)", v, n)
	}
}

func TestParseCompleteIntNoLeadingZeros(t *testing.T) {
	b, err := format.New(format.Builder{Radix: 10, NoIntegerLeadingZeros: true})
	if err != nil {
		t.Fatalf("format.New error = %v", err)
	}
	if _, err := ParseCompleteInt[int32]([]byte("007"), b); err == nil {
		t.Fatalf("ParseCompleteInt(\"007\") succeeded, want InvalidLeadingZeros error")
	}
	if v, err := ParseCompleteInt[int32]([]byte("-007"), b); err == nil {
		t.Fatalf("ParseCompleteInt(\"-007\") succeeded (v=%d), want InvalidLeadingZeros error", v)
	}
	if v, err := ParseCompleteInt[int32]([]byte("0"), b); err != nil || v != 0 {
		t.Errorf("ParseCompleteInt(\"0\") = (%d, %v), want (0, nil)", v, err)
	}
}

func TestParseCompleteFloatNoLeadingZerosAppliesToFloatFlagOnly(t *testing.T) {
	b, err := format.New(format.Builder{Radix: 10, NoIntegerLeadingZeros: true})
	if err != nil {
		t.Fatalf("format.New error = %v", err)
	}
	po := options.Default()
	// NoIntegerLeadingZeros must not reject a float's mantissa integer
	// part; only NoFloatLeadingZeros governs that.
	if v, err := ParseCompleteFloat[float64]([]byte("007.5"), b, po); err != nil || v != 7.5 {
		t.Errorf("ParseCompleteFloat(\"007.5\") = (%v, %v), want (7.5, nil)", v, err)
	}

	bf, err := format.New(format.Builder{Radix: 10, NoFloatLeadingZeros: true})
	if err != nil {
		t.Fatalf("format.New error = %v", err)
	}
	if _, err := ParseCompleteFloat[float64]([]byte("007.5"), bf, po); err == nil {
		t.Fatalf("ParseCompleteFloat(\"007.5\") with NoFloatLeadingZeros succeeded, want error")
	}
}

func TestParseCompleteFloatTrailingGarbage(t *testing.T) {
	f := stdFormat(t)
	po := options.Default()
	_, err := ParseCompleteFloat[float64]([]byte("1.5xyz"), f, po)
	if err == nil {
		t.Fatalf("ParseCompleteFloat(\"1.5xyz\") succeeded, want error")
	}
}
