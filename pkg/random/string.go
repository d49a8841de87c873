// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package random

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	"math/rand/v2"
	"strings"

	"github.com/happy-sdk/toolbelt"
	"github.com/happy-sdk/toolbelt/pkg/strings/textfmt"
)

// Character sets used by String.
const (
	Letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Numbers = "0123456789"
	Symbols = "!@#$%^&*()_+~`|}{[]\\:;?><,./-="
)

// DefaultLength is used by String when StringOptions.Length is zero.
const DefaultLength = 10

// StringOptions controls String. Stages run in a fixed order: character
// set assembly, generation, prefix and suffix, then case transforms
// (Capitalize, Lowercase, Uppercase), so a later transform wins.
type StringOptions struct {
	// Length of the generated part, prefix and suffix excluded.
	Length         int
	IncludeNumbers bool
	IncludeSymbols bool
	// Secure draws from crypto/rand instead of math/rand/v2.
	Secure     bool
	Prefix     string
	Suffix     string
	Capitalize bool
	Lowercase  bool
	Uppercase  bool
}

// String generates a random string from letters and, optionally, numbers
// and symbols.
func String(opts StringOptions) (string, error) {
	if opts.Length < 0 {
		return "", fmt.Errorf("%w: invalid length %d", toolbelt.ErrInvalidRange, opts.Length)
	}
	if opts.Length == 0 {
		opts.Length = DefaultLength
	}

	charset := Letters
	if opts.IncludeNumbers {
		charset += Numbers
	}
	if opts.IncludeSymbols {
		charset += Symbols
	}

	buf := make([]byte, opts.Length)
	for i := range buf {
		n, err := index(len(charset), opts.Secure)
		if err != nil {
			return "", fmt.Errorf("%w: %s", toolbelt.Error, err.Error())
		}
		buf[i] = charset[n]
	}

	s := opts.Prefix + string(buf) + opts.Suffix

	if opts.Capitalize {
		s = textfmt.Capitalize(s)
	}
	if opts.Lowercase {
		s = strings.ToLower(s)
	}
	if opts.Uppercase {
		s = strings.ToUpper(s)
	}
	return s, nil
}

func index(n int, secure bool) (int, error) {
	if !secure {
		return rand.IntN(n), nil
	}
	v, err := crand.Int(crand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
