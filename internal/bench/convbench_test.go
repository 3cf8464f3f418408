// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bench benchmarks rsc.io/lexical's float and integer
// conversions against the standard library, the oracle used
// throughout the package's tests.
package bench

import (
	"fmt"
	"math"
	"strconv"
	"testing"

	"rsc.io/lexical"
	"rsc.io/lexical/format"
	"rsc.io/lexical/options"
)

// inputs mirrors the "typical" and "hard" float formatting cases from
// Steele & White's dmg-fmt paper, table 3/4, the same corpus the
// teacher's ftoa benchmarks draw from.
var inputs = []float64{
	1.23,
	1.23e+20,
	1.23e-20,
	1.23456789,
	1.23456589e+20,
	1.23456789e-20,
	1234565,
	1.234565,
	1.234565e+20,
	1.234565e-20,
	math.Pi,
	math.Pi * 1e50,
	math.Pi * 1e100,
	math.Pi * 1e-300,
}

var stdFmt = mustFormat()

func mustFormat() format.Format {
	f, err := format.New(format.Standard())
	if err != nil {
		panic(err)
	}
	return f
}

func BenchmarkWriteFloat(b *testing.B) {
	wopt := options.DefaultWrite()
	var buf [64]byte
	for _, f := range inputs {
		b.Run(fmt.Sprintf("f=%g/impl=lexical", f), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				lexical.WriteFloat(buf[:], f, stdFmt, wopt)
			}
		})
		b.Run(fmt.Sprintf("f=%g/impl=strconv", f), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				strconv.AppendFloat(buf[:0], f, 'g', -1, 64)
			}
		})
	}
}

func BenchmarkParseFloat(b *testing.B) {
	po := options.Default()
	for _, f := range inputs {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		input := []byte(s)
		b.Run(fmt.Sprintf("f=%g/impl=lexical", f), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				lexical.ParseCompleteFloat[float64](input, stdFmt, po)
			}
		})
		b.Run(fmt.Sprintf("f=%g/impl=strconv", f), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				strconv.ParseFloat(s, 64)
			}
		})
	}
}

func BenchmarkWriteInt(b *testing.B) {
	values := []int64{0, 7, 12345, 1234567890123, -9223372036854775808}
	var buf [32]byte
	for _, v := range values {
		b.Run(fmt.Sprintf("v=%d/impl=lexical", v), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				lexical.WriteInt(buf[:], v, stdFmt)
			}
		})
		b.Run(fmt.Sprintf("v=%d/impl=strconv", v), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				strconv.AppendInt(buf[:0], v, 10)
			}
		})
	}
}
