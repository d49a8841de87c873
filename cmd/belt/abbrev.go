// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package main

import (
	"fmt"

	"github.com/happy-sdk/toolbelt/pkg/strings/humanize"
	"github.com/spf13/cobra"
)

func (a *app) abbrevCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "abbrev <number>...",
		Short: "Abbreviate numbers with K, M, B and T suffixes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				fmt.Fprintln(cmd.OutOrStdout(), humanize.AbbrevString(arg))
			}
			return nil
		},
	}
}
