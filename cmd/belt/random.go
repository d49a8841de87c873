// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package main

import (
	"fmt"

	"github.com/happy-sdk/toolbelt/pkg/random"
	"github.com/spf13/cobra"
)

func (a *app) randomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate random strings and identifiers",
	}
	cmd.AddCommand(a.randomStringCmd(), a.randomUUIDCmd(), a.randomULIDCmd())
	return cmd
}

func (a *app) randomStringCmd() *cobra.Command {
	var opts random.StringOptions
	cmd := &cobra.Command{
		Use:   "string",
		Short: "Generate a random string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := random.String(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.Length, "length", "n", random.DefaultLength, "Number of random characters")
	f.BoolVar(&opts.IncludeNumbers, "numbers", false, "Include digits")
	f.BoolVar(&opts.IncludeSymbols, "symbols", false, "Include symbols")
	f.BoolVar(&opts.Secure, "secure", false, "Draw from crypto/rand")
	f.StringVar(&opts.Prefix, "prefix", "", "Text prepended to the result")
	f.StringVar(&opts.Suffix, "suffix", "", "Text appended to the result")
	f.BoolVar(&opts.Capitalize, "capitalize", false, "Upper case the first letter")
	f.BoolVar(&opts.Lowercase, "lower", false, "Lower case the result")
	f.BoolVar(&opts.Uppercase, "upper", false, "Upper case the result")
	return cmd
}

func (a *app) randomUUIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Generate a random UUID v4",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), random.UUID())
		},
	}
}

func (a *app) randomULIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ulid",
		Short: "Generate a time ordered ULID",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), random.ULID())
		},
	}
}
