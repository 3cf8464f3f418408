// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package floatconv implements spec.md §4.D and §4.E: correctly
// rounded decimal and generic-radix float formatting, and staged
// fast/moderate/slow float parsing, built on mathx's extended-float
// and arbitrary-precision primitives.
package floatconv

import (
	"math"

	"rsc.io/lexical/format"
	"rsc.io/lexical/options"
)

// Float is the capability-record type set for the generic float
// entry points (spec.md §9).
type Float interface {
	~float32 | ~float64
}

// specialKind names the three mutually exclusive special states a
// float value can be in, as reported by classifyFloat64.
type specialKind int

const (
	specialNone specialKind = iota
	specialNaN
	specialInf
)

func classifyFloat64(f float64) specialKind {
	switch {
	case math.IsNaN(f):
		return specialNaN
	case math.IsInf(f, 0):
		return specialInf
	default:
		return specialNone
	}
}

// matchSpecial reports whether b[start:] begins with the special
// string s and, if so, how many bytes of b it consumed. Matching is
// case-insensitive over the ASCII letters unless f.CaseSensitiveSpecial
// is set (spec.md §5 "NaN/Inf spellings are matched case-insensitively
// by default"), and a digit separator may appear between s's characters
// when f.SpecialDigitSeparator permits it (spec.md §5 "digit separator
// inside special strings").
func matchSpecial(b []byte, start int, s string, f format.Format) (consumed int, ok bool) {
	if s == "" {
		return 0, false
	}
	sep := f.DigitSeparator()
	allowSep := f.SpecialDigitSeparator() && sep != 0
	caseSensitive := f.CaseSensitiveSpecial()

	i, j := start, 0
	for j < len(s) {
		if i >= len(b) {
			return 0, false
		}
		if allowSep && b[i] == sep {
			i++
			continue
		}
		c, d := b[i], s[j]
		if !caseSensitive {
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			if 'A' <= d && d <= 'Z' {
				d += 'a' - 'A'
			}
		}
		if c != d {
			return 0, false
		}
		i++
		j++
	}
	return i - start, true
}

// consumeSpecial tries to match a NaN or (short/long) Inf spelling at
// b[start:], honoring a leading sign already consumed by the caller
// and f's case-sensitivity and digit-separator rules. It returns the
// float64 value, bytes consumed, and ok. Longest match wins: the long
// "infinity" spelling is tried before the short "inf" one, per
// spec.md §4.E.
func consumeSpecial(b []byte, start int, f format.Format, o options.ParseOptions, negative bool) (value float64, consumed int, ok bool) {
	if n, ok := matchSpecial(b, start, o.NanString, f); ok {
		return math.NaN(), n, true
	}
	if n, ok := matchSpecial(b, start, o.InfinityString, f); ok {
		v := math.Inf(1)
		if negative {
			v = math.Inf(-1)
		}
		return v, n, true
	}
	if n, ok := matchSpecial(b, start, o.InfString, f); ok {
		v := math.Inf(1)
		if negative {
			v = math.Inf(-1)
		}
		return v, n, true
	}
	return 0, 0, false
}
