// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package format implements the packed number-format policy described
// in spec.md §3/§4.B: a 64-bit word of syntax flags plus the punctuation
// and radix fields evaluated in the atoi/itoa/atof/ftoa hot loops.
//
// Format is immutable once built by New; every accessor is a constant
// mask-and-compare so callers can inline the predicate directly into a
// branch.
package format

// flag bit positions, mirroring the bit layout of the source this was
// distilled from: non-separator flags in the low 16 bits, digit
// separator flags from bit 32, precision-selector flags from bit 48.
const (
	flagRequiredIntegerDigits = 1 << iota
	flagRequiredFractionDigits
	flagRequiredExponentDigits
	flagNoPositiveMantissaSign
	flagRequiredMantissaSign
	flagNoExponentNotation
	flagNoPositiveExponentSign
	flagRequiredExponentSign
	flagNoExponentWithoutFraction
	flagNoSpecial
	flagCaseSensitiveSpecial
	flagNoIntegerLeadingZeros
	flagNoFloatLeadingZeros
)

const (
	flagIntegerInternalDigitSeparator = 1 << (32 + iota)
	flagIntegerLeadingDigitSeparator
	flagIntegerTrailingDigitSeparator
	flagIntegerConsecutiveDigitSeparator
	flagFractionInternalDigitSeparator
	flagFractionLeadingDigitSeparator
	flagFractionTrailingDigitSeparator
	flagFractionConsecutiveDigitSeparator
	flagExponentInternalDigitSeparator
	flagExponentLeadingDigitSeparator
	flagExponentTrailingDigitSeparator
	flagExponentConsecutiveDigitSeparator
	flagSpecialDigitSeparator
)

const (
	flagIncorrect = 1 << 48
	flagLossy     = 1 << 49
)

const (
	maskInternalDigitSeparator = flagIntegerInternalDigitSeparator | flagFractionInternalDigitSeparator | flagExponentInternalDigitSeparator
	maskLeadingDigitSeparator  = flagIntegerLeadingDigitSeparator | flagFractionLeadingDigitSeparator | flagExponentLeadingDigitSeparator
	maskTrailingDigitSeparator = flagIntegerTrailingDigitSeparator | flagFractionTrailingDigitSeparator | flagExponentTrailingDigitSeparator
	maskConsecutiveDigitSeparator = flagIntegerConsecutiveDigitSeparator | flagFractionConsecutiveDigitSeparator | flagExponentConsecutiveDigitSeparator
	maskRequiredDigits         = flagRequiredIntegerDigits | flagRequiredFractionDigits | flagRequiredExponentDigits
)

// Format is the packed, immutable syntax descriptor. The zero value is
// not valid; build one with New.
type Format struct {
	flags uint64

	radix         uint8
	exponentBase  uint8
	exponentRadix uint8

	digitSeparator byte
	decimalPoint   byte
	exponentSymbol byte
	backupExponentSymbol byte
}

// Builder collects the fields of a Format prior to validation. Passed
// to New, its zero value gets radix 10, a '.' decimal point, an 'e'
// exponent symbol and no separator; unlike Standard, it leaves
// RequiredExponentDigits unset.
type Builder struct {
	Radix         uint8
	ExponentBase  uint8 // 0 means "same as Radix"
	ExponentRadix uint8 // 0 means "same as Radix"

	DigitSeparator       byte // 0 means "no separator configured"
	DecimalPoint         byte
	ExponentSymbol       byte
	BackupExponentSymbol byte

	RequiredIntegerDigits      bool
	RequiredFractionDigits     bool
	RequiredExponentDigits     bool
	RequiredMantissaSign       bool
	NoPositiveMantissaSign     bool
	RequiredExponentSign       bool
	NoPositiveExponentSign     bool
	NoExponentNotation         bool
	NoExponentWithoutFraction  bool
	NoSpecial                  bool
	CaseSensitiveSpecial       bool
	NoIntegerLeadingZeros      bool
	NoFloatLeadingZeros        bool

	IntegerInternalDigitSeparator     bool
	IntegerLeadingDigitSeparator      bool
	IntegerTrailingDigitSeparator     bool
	IntegerConsecutiveDigitSeparator  bool
	FractionInternalDigitSeparator    bool
	FractionLeadingDigitSeparator     bool
	FractionTrailingDigitSeparator    bool
	FractionConsecutiveDigitSeparator bool
	ExponentInternalDigitSeparator    bool
	ExponentLeadingDigitSeparator     bool
	ExponentTrailingDigitSeparator    bool
	ExponentConsecutiveDigitSeparator bool
	SpecialDigitSeparator             bool

	Lossy     bool
	Incorrect bool
}

// Standard returns the default builder: radix 10, '.' decimal point,
// 'e' exponent symbol, required exponent digits, no digit separators.
func Standard() Builder {
	return Builder{
		Radix:                  10,
		DecimalPoint:           '.',
		ExponentSymbol:         'e',
		BackupExponentSymbol:   '^',
		RequiredExponentDigits: true,
	}
}

func addFlag(flags *uint64, b bool, bit uint64) {
	if b {
		*flags |= bit
	}
}

// New validates b and returns the packed Format, or a construction-time
// *lexerr.Error (see lexerr.Kind's "Format-construction-time" group).
func New(b Builder) (Format, error) {
	if b.Radix == 0 {
		b.Radix = 10
	}
	if b.DecimalPoint == 0 {
		b.DecimalPoint = '.'
	}
	if b.ExponentSymbol == 0 {
		b.ExponentSymbol = 'e'
	}
	expBase := b.ExponentBase
	if expBase == 0 {
		expBase = b.Radix
	}
	expRadix := b.ExponentRadix
	if expRadix == 0 {
		expRadix = b.Radix
	}

	f := Format{
		radix:                b.Radix,
		exponentBase:         expBase,
		exponentRadix:        expRadix,
		digitSeparator:       b.DigitSeparator,
		decimalPoint:         b.DecimalPoint,
		exponentSymbol:       b.ExponentSymbol,
		backupExponentSymbol: b.BackupExponentSymbol,
	}

	addFlag(&f.flags, b.RequiredIntegerDigits, flagRequiredIntegerDigits)
	addFlag(&f.flags, b.RequiredFractionDigits, flagRequiredFractionDigits)
	addFlag(&f.flags, b.RequiredExponentDigits, flagRequiredExponentDigits)
	addFlag(&f.flags, b.RequiredMantissaSign, flagRequiredMantissaSign)
	addFlag(&f.flags, b.NoPositiveMantissaSign, flagNoPositiveMantissaSign)
	addFlag(&f.flags, b.RequiredExponentSign, flagRequiredExponentSign)
	addFlag(&f.flags, b.NoPositiveExponentSign, flagNoPositiveExponentSign)
	addFlag(&f.flags, b.NoExponentNotation, flagNoExponentNotation)
	addFlag(&f.flags, b.NoExponentWithoutFraction, flagNoExponentWithoutFraction)
	addFlag(&f.flags, b.NoSpecial, flagNoSpecial)
	addFlag(&f.flags, b.CaseSensitiveSpecial, flagCaseSensitiveSpecial)
	addFlag(&f.flags, b.NoIntegerLeadingZeros, flagNoIntegerLeadingZeros)
	addFlag(&f.flags, b.NoFloatLeadingZeros, flagNoFloatLeadingZeros)

	addFlag(&f.flags, b.IntegerInternalDigitSeparator, flagIntegerInternalDigitSeparator)
	addFlag(&f.flags, b.IntegerLeadingDigitSeparator, flagIntegerLeadingDigitSeparator)
	addFlag(&f.flags, b.IntegerTrailingDigitSeparator, flagIntegerTrailingDigitSeparator)
	addFlag(&f.flags, b.IntegerConsecutiveDigitSeparator, flagIntegerConsecutiveDigitSeparator)
	addFlag(&f.flags, b.FractionInternalDigitSeparator, flagFractionInternalDigitSeparator)
	addFlag(&f.flags, b.FractionLeadingDigitSeparator, flagFractionLeadingDigitSeparator)
	addFlag(&f.flags, b.FractionTrailingDigitSeparator, flagFractionTrailingDigitSeparator)
	addFlag(&f.flags, b.FractionConsecutiveDigitSeparator, flagFractionConsecutiveDigitSeparator)
	addFlag(&f.flags, b.ExponentInternalDigitSeparator, flagExponentInternalDigitSeparator)
	addFlag(&f.flags, b.ExponentLeadingDigitSeparator, flagExponentLeadingDigitSeparator)
	addFlag(&f.flags, b.ExponentTrailingDigitSeparator, flagExponentTrailingDigitSeparator)
	addFlag(&f.flags, b.ExponentConsecutiveDigitSeparator, flagExponentConsecutiveDigitSeparator)
	addFlag(&f.flags, b.SpecialDigitSeparator, flagSpecialDigitSeparator)

	addFlag(&f.flags, b.Lossy, flagLossy)
	addFlag(&f.flags, b.Incorrect, flagIncorrect)

	if err := Validate(f); err != nil {
		return Format{}, err
	}
	return f, nil
}

// Radix returns the mantissa-digit radix, in [2, 36].
func (f Format) Radix() uint8 { return f.radix }

// ExponentBase returns the base the exponent notation scales by
// (radix^exponent); usually equal to Radix.
func (f Format) ExponentBase() uint8 { return f.exponentBase }

// ExponentRadix returns the radix used to parse/format the exponent's
// own digits; usually equal to Radix.
func (f Format) ExponentRadix() uint8 { return f.exponentRadix }

// DigitSeparator returns the configured digit separator byte, or 0 if
// none is configured.
func (f Format) DigitSeparator() byte { return f.digitSeparator }

// DecimalPoint returns the configured decimal point byte.
func (f Format) DecimalPoint() byte { return f.decimalPoint }

// ExponentSymbol returns the primary exponent symbol byte.
func (f Format) ExponentSymbol() byte { return f.exponentSymbol }

// BackupExponentSymbol returns the secondary accepted exponent symbol
// byte (0 if none), checked when the primary symbol does not match.
func (f Format) BackupExponentSymbol() byte { return f.backupExponentSymbol }

func (f Format) has(bit uint64) bool { return f.flags&bit != 0 }

func (f Format) RequiredIntegerDigits() bool     { return f.has(flagRequiredIntegerDigits) }
func (f Format) RequiredFractionDigits() bool    { return f.has(flagRequiredFractionDigits) }
func (f Format) RequiredExponentDigits() bool    { return f.has(flagRequiredExponentDigits) }
func (f Format) RequiredMantissaSign() bool       { return f.has(flagRequiredMantissaSign) }
func (f Format) NoPositiveMantissaSign() bool     { return f.has(flagNoPositiveMantissaSign) }
func (f Format) RequiredExponentSign() bool       { return f.has(flagRequiredExponentSign) }
func (f Format) NoPositiveExponentSign() bool     { return f.has(flagNoPositiveExponentSign) }
func (f Format) NoExponentNotation() bool         { return f.has(flagNoExponentNotation) }
func (f Format) NoExponentWithoutFraction() bool  { return f.has(flagNoExponentWithoutFraction) }
func (f Format) NoSpecial() bool                  { return f.has(flagNoSpecial) }
func (f Format) CaseSensitiveSpecial() bool        { return f.has(flagCaseSensitiveSpecial) }
func (f Format) NoIntegerLeadingZeros() bool      { return f.has(flagNoIntegerLeadingZeros) }
func (f Format) NoFloatLeadingZeros() bool        { return f.has(flagNoFloatLeadingZeros) }

func (f Format) IntegerInternalDigitSeparator() bool     { return f.has(flagIntegerInternalDigitSeparator) }
func (f Format) IntegerLeadingDigitSeparator() bool      { return f.has(flagIntegerLeadingDigitSeparator) }
func (f Format) IntegerTrailingDigitSeparator() bool     { return f.has(flagIntegerTrailingDigitSeparator) }
func (f Format) IntegerConsecutiveDigitSeparator() bool  { return f.has(flagIntegerConsecutiveDigitSeparator) }
func (f Format) FractionInternalDigitSeparator() bool    { return f.has(flagFractionInternalDigitSeparator) }
func (f Format) FractionLeadingDigitSeparator() bool     { return f.has(flagFractionLeadingDigitSeparator) }
func (f Format) FractionTrailingDigitSeparator() bool    { return f.has(flagFractionTrailingDigitSeparator) }
func (f Format) FractionConsecutiveDigitSeparator() bool { return f.has(flagFractionConsecutiveDigitSeparator) }
func (f Format) ExponentInternalDigitSeparator() bool    { return f.has(flagExponentInternalDigitSeparator) }
func (f Format) ExponentLeadingDigitSeparator() bool     { return f.has(flagExponentLeadingDigitSeparator) }
func (f Format) ExponentTrailingDigitSeparator() bool    { return f.has(flagExponentTrailingDigitSeparator) }
func (f Format) ExponentConsecutiveDigitSeparator() bool { return f.has(flagExponentConsecutiveDigitSeparator) }
func (f Format) SpecialDigitSeparator() bool             { return f.has(flagSpecialDigitSeparator) }

func (f Format) Lossy() bool     { return f.has(flagLossy) }
func (f Format) Incorrect() bool { return f.has(flagIncorrect) }

// HasDigitSeparator reports whether any digit-separator flag is set,
// i.e. whether the byte iterator needs the skip-predicate path rather
// than degenerating to a contiguous-slice scan (spec.md §4.C).
func (f Format) HasDigitSeparator() bool {
	const anySeparator = maskInternalDigitSeparator | maskLeadingDigitSeparator |
		maskTrailingDigitSeparator | maskConsecutiveDigitSeparator | flagSpecialDigitSeparator
	return f.flags&anySeparator != 0
}
