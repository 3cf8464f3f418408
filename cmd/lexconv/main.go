// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lexconv parses and formats integers and floats across
// arbitrary radixes and punctuation conventions, exercising the
// rsc.io/lexical package from the command line.
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"rsc.io/lexical"
	"rsc.io/lexical/format"
	"rsc.io/lexical/options"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lexconv",
		Short: "Parse and format numbers across radixes via rsc.io/lexical",
	}

	var radix uint8
	var digitSeparator string

	parseFloatCmd := &cobra.Command{
		Use:   "parse-float [value]",
		Short: "Parse a float and print its exact binary64 bit pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFormat(radix, digitSeparator)
			if err != nil {
				return err
			}
			v, err := lexical.ParseCompleteFloat[float64]([]byte(args[0]), f, options.Default())
			if err != nil {
				return fmt.Errorf("parse-float: %w", err)
			}
			fmt.Printf("%v (0x%016x)\n", v, math.Float64bits(v))
			return nil
		},
	}
	parseFloatCmd.Flags().Uint8VarP(&radix, "radix", "r", 10, "mantissa radix [2,36]")
	parseFloatCmd.Flags().StringVar(&digitSeparator, "digit-separator", "", "digit separator character, e.g. _")

	var writePrec int
	var sci bool

	writeFloatCmd := &cobra.Command{
		Use:   "write-float [value]",
		Short: "Format a Go float64 literal with the given write options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("write-float: %w", err)
			}
			wopt := options.DefaultWrite()
			if writePrec > 0 {
				wopt.MaxSignificantDigits = writePrec
			}
			if sci {
				wopt.PositiveExponentBreak = -1
				wopt.NegativeExponentBreak = 0
			}
			f, err := buildFormat(radix, "")
			if err != nil {
				return err
			}
			var buf [lexical.FormattedSize]byte
			n := lexical.WriteFloat(buf[:], v, f, wopt)
			fmt.Println(string(buf[:n]))
			return nil
		},
	}
	writeFloatCmd.Flags().Uint8VarP(&radix, "radix", "r", 10, "mantissa radix [2,36]")
	writeFloatCmd.Flags().IntVar(&writePrec, "precision", 0, "maximum significant digits (0 = shortest round trip)")
	writeFloatCmd.Flags().BoolVar(&sci, "scientific", false, "always use scientific notation")

	parseIntCmd := &cobra.Command{
		Use:   "parse-int [value]",
		Short: "Parse a signed 64-bit integer in the given radix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFormat(radix, digitSeparator)
			if err != nil {
				return err
			}
			v, err := lexical.ParseCompleteInt[int64]([]byte(args[0]), f)
			if err != nil {
				return fmt.Errorf("parse-int: %w", err)
			}
			fmt.Println(v)
			return nil
		},
	}
	parseIntCmd.Flags().Uint8VarP(&radix, "radix", "r", 10, "integer radix [2,36]")
	parseIntCmd.Flags().StringVar(&digitSeparator, "digit-separator", "", "digit separator character, e.g. _")

	writeIntCmd := &cobra.Command{
		Use:   "write-int [value]",
		Short: "Format a signed 64-bit integer in the given radix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("write-int: %w", err)
			}
			f, err := buildFormat(radix, "")
			if err != nil {
				return err
			}
			var buf [lexical.FormattedSize]byte
			n := lexical.WriteInt(buf[:], v, f)
			fmt.Println(string(buf[:n]))
			return nil
		},
	}
	writeIntCmd.Flags().Uint8VarP(&radix, "radix", "r", 10, "integer radix [2,36]")

	rootCmd.AddCommand(parseFloatCmd, writeFloatCmd, parseIntCmd, writeIntCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildFormat(radix uint8, digitSeparator string) (format.Format, error) {
	b := format.Standard()
	if radix != 0 {
		b.Radix = radix
	}
	if b.Radix >= 15 {
		// 'e' is a digit from radix 15 up.
		b.ExponentSymbol = '^'
		b.BackupExponentSymbol = 0
	}
	if digitSeparator != "" {
		b.DigitSeparator = digitSeparator[0]
		b.IntegerInternalDigitSeparator = true
		b.FractionInternalDigitSeparator = true
	}
	return format.New(b)
}
