// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/happy-sdk/toolbelt"
	"github.com/spf13/cobra"
)

// LogLevelEnv is read when --log-level is not set.
const LogLevelEnv = "BELT_LOG_LEVEL"

type app struct {
	logLevel string
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:           "belt",
		Short:         "Small everyday helpers: durations, numbers, patterns, random values",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogger(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn or error (env "+LogLevelEnv+")")

	root.AddCommand(
		a.durationCmd(),
		a.abbrevCmd(),
		a.matchCmd(),
		a.randomCmd(),
		a.flattenCmd(),
		a.hexCmd(),
	)
	return root
}

func (a *app) setupLogger(cmd *cobra.Command) error {
	name := strings.TrimSpace(a.logLevel)
	if name == "" {
		name = strings.TrimSpace(os.Getenv(LogLevelEnv))
	}
	if name == "" {
		name = "warn"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("%w: invalid log level %q", toolbelt.ErrTypeMismatch, name)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.log.Debug("logger ready", slog.String("level", lvl.String()), slog.String("cmd", cmd.CommandPath()))
	return nil
}
