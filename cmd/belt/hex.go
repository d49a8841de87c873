// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package main

import (
	"fmt"

	"github.com/happy-sdk/toolbelt/pkg/color"
	"github.com/spf13/cobra"
)

func (a *app) hexCmd() *cobra.Command {
	var (
		alt      string
		validate bool
	)
	cmd := &cobra.Command{
		Use:   "hex <color>",
		Short: "Normalize a hex color code to #rrggbb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if validate {
				ok, err := color.ValidateHex(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), ok)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.FormatHex(args[0], alt))
			return nil
		},
	}
	cmd.Flags().StringVar(&alt, "alt", color.Black, "Color used when the input is not a hex code")
	cmd.Flags().BoolVar(&validate, "validate", false, "Only report whether the input is a hex code")
	return cmd
}
