// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/happy-sdk/toolbelt"
	"github.com/happy-sdk/toolbelt/pkg/maputils"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (a *app) flattenCmd() *cobra.Command {
	var (
		output string
		prefix string
	)
	cmd := &cobra.Command{
		Use:   "flatten <file|->",
		Short: "Flatten a YAML or JSON document into dotted keys",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			flat, err := maputils.FlattenYAML(data)
			if err != nil {
				return err
			}
			if prefix != "" {
				if flat, err = maputils.Flatten(flat, prefix); err != nil {
					return err
				}
			}
			a.log.Debug("flattened document", slog.String("source", args[0]), slog.Int("keys", len(flat)))

			switch strings.ToLower(strings.TrimSpace(output)) {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(flat)
			case "table", "":
			default:
				return fmt.Errorf("%w: unknown output format %q", toolbelt.ErrTypeMismatch, output)
			}

			keys := make([]string, 0, len(flat))
			for k := range flat {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"KEY", "VALUE"})
			for _, k := range keys {
				table.Append([]string{k, fmt.Sprint(flat[k])})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format: table or json")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Prefix prepended to every key")
	return cmd
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(name)
}
