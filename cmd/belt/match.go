// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package main

import (
	"fmt"
	"log/slog"

	"github.com/happy-sdk/toolbelt/pkg/strings/pattern"
	"github.com/spf13/cobra"
)

func (a *app) matchCmd() *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "match <pattern> <text>",
		Short: "Check text against a well known pattern such as email or url",
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, k := range pattern.Kinds() {
					fmt.Fprintln(cmd.OutOrStdout(), k)
				}
				return nil
			}
			ok, err := pattern.Match(args[1], pattern.Kind(args[0]))
			if err != nil {
				return err
			}
			a.log.Debug("matched", slog.String("pattern", args[0]), slog.Bool("ok", ok))
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "List known patterns")
	return cmd
}
