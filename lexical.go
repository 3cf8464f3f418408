// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexical implements correctly rounded, allocation-free
// parsing and formatting of integers and floats in an arbitrary radix
// and an arbitrary punctuation convention (spec.md §1/§6): the public
// surface over the format, options, intconv, floatconv, and mathx
// packages.
package lexical

import (
	"rsc.io/lexical/floatconv"
	"rsc.io/lexical/format"
	"rsc.io/lexical/intconv"
	"rsc.io/lexical/lexerr"
	"rsc.io/lexical/options"
)

// Int is the capability-record type set for the generic integer entry
// points.
type Int interface {
	intconv.Unsigned | intconv.Signed
}

// Float is the capability-record type set for the generic float entry
// points.
type Float interface {
	~float32 | ~float64
}

// FormattedSize is a safe upper bound, in bytes, on the output of
// WriteInt/WriteFloat for any value of T in the worst-case radix (2)
// and the widest supported precision (spec.md §6 "buffer sizing
// constants"). Callers that want a tight bound for a specific radix
// should use format.Format's Radix directly with intconv.BufferSize.
const FormattedSize = 1100

// ParseCompleteInt parses b entirely as a signed or unsigned integer
// of type T in f's radix, returning an error if any trailing byte
// remains after the digits (spec.md §6 "parse complete").
func ParseCompleteInt[T Int](b []byte, f format.Format) (T, error) {
	v, n, err := parseInt[T](b, f)
	if err != nil {
		return 0, err
	}
	if n != len(b) {
		return 0, lexerr.New(lexerr.InvalidDigit, n)
	}
	return v, nil
}

// ParsePartialInt parses a leading signed or unsigned integer of type
// T from b in f's radix, returning the value and the number of bytes
// consumed; trailing bytes are left unconsumed (spec.md §6 "parse
// partial").
func ParsePartialInt[T Int](b []byte, f format.Format) (T, int, error) {
	return parseInt[T](b, f)
}

func parseInt[T Int](b []byte, f format.Format) (T, int, error) {
	var zero T
	switch any(zero).(type) {
	case int8, int16, int32, int64, int:
		bitWidth := bitWidthOfSigned(zero)
		v, n, err := intconv.ParseInt64(b, 0, f.Radix(), bitWidth, mantissaSignPolicy(f))
		if err == nil {
			err = checkIntegerLeadingZeros(b, n, f)
		}
		return T(v), n, err
	default:
		bitWidth := bitWidthOfUnsigned(zero)
		v, n, err := intconv.ParseUint64(b, 0, f.Radix(), bitWidth)
		if err == nil {
			err = checkIntegerLeadingZeros(b, n, f)
		}
		return T(v), n, err
	}
}

// checkIntegerLeadingZeros enforces format.Format.NoIntegerLeadingZeros
// over the plain-integer entry points (spec.md §3's leading-zero flag
// table): floatconv enforces the equivalent NoFloatLeadingZeros rule
// itself, over the mantissa integer part, since ParseFloat64 never
// calls through intconv.ParseUint64/ParseInt64.
func checkIntegerLeadingZeros(b []byte, n int, f format.Format) error {
	if !f.NoIntegerLeadingZeros() || n == 0 {
		return nil
	}
	start := 0
	if b[start] == '+' || b[start] == '-' {
		start++
	}
	if n-start > 1 && b[start] == '0' {
		return lexerr.New(lexerr.InvalidLeadingZeros, start)
	}
	return nil
}

func mantissaSignPolicy(f format.Format) intconv.SignPolicy {
	switch {
	case f.RequiredMantissaSign():
		return intconv.SignRequired
	case f.NoPositiveMantissaSign():
		return intconv.SignForbidPositive
	default:
		return intconv.SignOptional
	}
}

func bitWidthOfSigned(zero any) int {
	switch zero.(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32:
		return 32
	default:
		return 64
	}
}

func bitWidthOfUnsigned(zero any) int {
	switch zero.(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

// WriteInt writes v into dst in f's radix, most significant digit
// first, and returns the number of bytes written. dst must be at
// least FormattedSize bytes, or sized precisely via intconv.BufferSize.
func WriteInt[T Int](dst []byte, v T, f format.Format) int {
	switch x := any(v).(type) {
	case int8:
		return intconv.FormatInt(dst, x, f.Radix())
	case int16:
		return intconv.FormatInt(dst, x, f.Radix())
	case int32:
		return intconv.FormatInt(dst, x, f.Radix())
	case int64:
		return intconv.FormatInt(dst, x, f.Radix())
	case int:
		return intconv.FormatInt(dst, x, f.Radix())
	case uint8:
		return intconv.FormatUint(dst, x, f.Radix())
	case uint16:
		return intconv.FormatUint(dst, x, f.Radix())
	case uint32:
		return intconv.FormatUint(dst, x, f.Radix())
	case uint64:
		return intconv.FormatUint(dst, x, f.Radix())
	default:
		return intconv.FormatUint(dst, any(v).(uint), f.Radix())
	}
}

// ParseCompleteFloat parses b entirely as a float of type T, returning
// an error if any trailing byte remains after the mantissa/exponent.
func ParseCompleteFloat[T Float](b []byte, f format.Format, o options.ParseOptions) (T, error) {
	v, n, err := ParsePartialFloat[T](b, f, o)
	if err != nil {
		return 0, err
	}
	if n != len(b) {
		return 0, lexerr.New(lexerr.InvalidDigit, n)
	}
	return v, nil
}

// ParsePartialFloat parses a leading float of type T from b, returning
// the value and the number of bytes consumed. float32 is parsed
// through a dedicated binary32 pipeline rather than narrowed from
// float64, since narrowing after rounding to float64 can double-round
// a value near a float32 halfway boundary to the wrong result.
func ParsePartialFloat[T Float](b []byte, f format.Format, o options.ParseOptions) (T, int, error) {
	var zero T
	switch any(zero).(type) {
	case float32:
		v, n, err := floatconv.ParseFloat32(b, f, o)
		return T(v), n, err
	default:
		v, n, err := floatconv.ParseFloat64(b, f, o)
		return T(v), n, err
	}
}

// WriteFloat writes v into dst per f's radix and wopt, and returns the
// number of bytes written. float32 is formatted directly from its own
// bit pattern rather than widened to float64 first, so its shortest
// round-trip digits are its own, not float64's.
func WriteFloat[T Float](dst []byte, v T, f format.Format, wopt options.WriteOptions) int {
	switch x := any(v).(type) {
	case float32:
		return floatconv.FormatFloat32(dst, x, f.Radix(), wopt)
	default:
		return floatconv.FormatFloat64(dst, float64(v), f.Radix(), wopt)
	}
}

// ParseCompleteFloat16 parses b entirely as a binary16 float by
// widening through the float64 pipeline and narrowing the result
// (spec.md §3's optional half-precision capability).
func ParseCompleteFloat16(b []byte, f format.Format, o options.ParseOptions) (floatconv.Float16, error) {
	v, err := ParseCompleteFloat[float64](b, f, o)
	if err != nil {
		return 0, err
	}
	return floatconv.Float16FromFloat64(v), nil
}

// ParsePartialFloat16 is ParseCompleteFloat16's partial-consumption
// counterpart.
func ParsePartialFloat16(b []byte, f format.Format, o options.ParseOptions) (floatconv.Float16, int, error) {
	v, n, err := ParsePartialFloat[float64](b, f, o)
	if err != nil {
		return 0, n, err
	}
	return floatconv.Float16FromFloat64(v), n, nil
}

// WriteFloat16 widens h to float64 and formats it per f's radix and
// wopt.
func WriteFloat16(dst []byte, h floatconv.Float16, f format.Format, wopt options.WriteOptions) int {
	return floatconv.FormatFloat64(dst, h.ToFloat64(), f.Radix(), wopt)
}

// ParseCompleteUint128 parses b entirely as an unsigned 128-bit integer
// in f's radix, returning the value as a (hi, lo uint64) pair (spec.md
// §4.C's supplemented 128-bit integer support; Go has no native
// 128-bit integer type, so the pair convention matches WriteUint128
// and intconv.FormatUint128 on the write side).
func ParseCompleteUint128(b []byte, f format.Format) (hi, lo uint64, err error) {
	hi, lo, n, err := ParsePartialUint128(b, f)
	if err != nil {
		return 0, 0, err
	}
	if n != len(b) {
		return 0, 0, lexerr.New(lexerr.InvalidDigit, n)
	}
	return hi, lo, nil
}

// ParsePartialUint128 parses a leading unsigned 128-bit integer from b
// in f's radix, returning the value and the number of bytes consumed.
func ParsePartialUint128(b []byte, f format.Format) (hi, lo uint64, consumed int, err error) {
	hi, lo, n, err := intconv.ParseUint128(b, 0, f.Radix())
	if err == nil {
		err = checkIntegerLeadingZeros(b, n, f)
	}
	return hi, lo, n, err
}

// ParseCompleteInt128 parses b entirely as a signed 128-bit integer in
// f's radix, returning the two's-complement value as a (hi, lo uint64)
// pair.
func ParseCompleteInt128(b []byte, f format.Format) (hi, lo uint64, err error) {
	hi, lo, n, err := ParsePartialInt128(b, f)
	if err != nil {
		return 0, 0, err
	}
	if n != len(b) {
		return 0, 0, lexerr.New(lexerr.InvalidDigit, n)
	}
	return hi, lo, nil
}

// ParsePartialInt128 is ParseCompleteInt128's partial-consumption
// counterpart.
func ParsePartialInt128(b []byte, f format.Format) (hi, lo uint64, consumed int, err error) {
	hi, lo, n, err := intconv.ParseInt128(b, 0, f.Radix(), mantissaSignPolicy(f))
	if err == nil {
		err = checkIntegerLeadingZeros(b, n, f)
	}
	return hi, lo, n, err
}

// WriteUint128 writes the unsigned 128-bit value (hi, lo) into dst in
// f's radix, most significant digit first, and returns the number of
// bytes written.
func WriteUint128(dst []byte, hi, lo uint64, f format.Format) int {
	return intconv.FormatUint128(dst, hi, lo, f.Radix())
}

// WriteInt128 writes the signed 128-bit value (hi, lo), given in
// two's-complement form, into dst in f's radix, and returns the number
// of bytes written.
func WriteInt128(dst []byte, hi, lo uint64, f format.Format) int {
	neg := hi&(1<<63) != 0
	if neg {
		hi, lo = negate128Magnitude(hi, lo)
	}
	n := 0
	if neg {
		dst[0] = '-'
		n = 1
	}
	return n + intconv.FormatUint128(dst[n:], hi, lo, f.Radix())
}

// negate128Magnitude returns the two's-complement negation of (hi,
// lo), i.e. the nonnegative magnitude of a negative signed-128 value.
func negate128Magnitude(hi, lo uint64) (nhi, nlo uint64) {
	nlo = -lo
	nhi = ^hi
	if lo != 0 {
		return nhi, nlo
	}
	return nhi + 1, nlo
}
