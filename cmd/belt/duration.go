// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/happy-sdk/toolbelt"
	"github.com/happy-sdk/toolbelt/pkg/strings/humanize"
	"github.com/spf13/cobra"
)

func (a *app) durationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "duration",
		Short: "Convert between duration strings and milliseconds",
	}
	cmd.AddCommand(a.durationParseCmd(), a.durationFormatCmd(), a.durationLongCmd())
	return cmd
}

func (a *app) durationParseCmd() *cobra.Command {
	var compound bool
	cmd := &cobra.Command{
		Use:   "parse <duration>",
		Short: "Print the millisecond value of a duration such as 1.5h or 1w2d3h",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parse := humanize.ParseDuration
			if compound {
				parse = humanize.ParseCompound
			}
			ms, err := parse(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("parsed duration", slog.String("input", args[0]), slog.Int64("ms", ms))
			fmt.Fprintln(cmd.OutOrStdout(), ms)
			return nil
		},
	}
	cmd.Flags().BoolVar(&compound, "compound", false, "Accept multi segment durations such as 1h30m")
	return cmd
}

func (a *app) durationFormatCmd() *cobra.Command {
	var sep string
	cmd := &cobra.Command{
		Use:   "format <ms>",
		Short: "Break a millisecond count down into years, months, days and smaller units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMillis(args[0])
			if err != nil {
				return err
			}
			out, err := humanize.FormatDurationSep(ms, sep)
			if err != nil {
				return err
			}
			if out == "" {
				a.log.Warn("duration has no whole unit above seconds", slog.Float64("ms", ms))
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&sep, "sep", humanize.DefaultSeparator, "Separator between units")
	return cmd
}

func (a *app) durationLongCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "long <ms>",
		Short: "Render a millisecond count with full unit names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := parseMillis(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), humanize.LongDuration(int64(ms), limit))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Keep only the first N units, 0 keeps all")
	return cmd
}

func parseMillis(s string) (float64, error) {
	ms, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a millisecond count", toolbelt.ErrNotANumber, s)
	}
	return ms, nil
}
