// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Command belt exposes the toolbelt helpers on the command line.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
