// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package random

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
	"github.com/happy-sdk/toolbelt"
)

func TestStringDefaults(t *testing.T) {
	s, err := String(StringOptions{})
	testutils.NoError(t, err)
	testutils.Equal(t, DefaultLength, len(s))
	for _, r := range s {
		testutils.True(t, strings.ContainsRune(Letters, r), "unexpected rune %q", r)
	}
}

func TestStringLength(t *testing.T) {
	s, err := String(StringOptions{Length: 20})
	testutils.NoError(t, err)
	testutils.Equal(t, 20, utf8.RuneCountInString(s))

	_, err = String(StringOptions{Length: -10})
	testutils.ErrorIs(t, err, toolbelt.ErrInvalidRange)
}

func TestStringCharsets(t *testing.T) {
	s, err := String(StringOptions{Length: 500, IncludeNumbers: true})
	testutils.NoError(t, err)
	testutils.True(t, strings.ContainsAny(s, Numbers), "expected a number in %q", s)

	s, err = String(StringOptions{Length: 500, IncludeSymbols: true})
	testutils.NoError(t, err)
	testutils.True(t, strings.ContainsAny(s, Symbols), "expected a symbol in %q", s)
	testutils.False(t, strings.ContainsAny(s, Numbers), "unexpected number in %q", s)
}

func TestStringSecure(t *testing.T) {
	s, err := String(StringOptions{Secure: true, IncludeNumbers: true})
	testutils.NoError(t, err)
	testutils.Equal(t, DefaultLength, len(s))
}

func TestStringAffixes(t *testing.T) {
	s, err := String(StringOptions{Prefix: "pre_", Suffix: "_suf"})
	testutils.NoError(t, err)
	testutils.True(t, strings.HasPrefix(s, "pre_"), "missing prefix in %q", s)
	testutils.True(t, strings.HasSuffix(s, "_suf"), "missing suffix in %q", s)
	testutils.Equal(t, DefaultLength+8, len(s))
}

func TestStringCase(t *testing.T) {
	s, err := String(StringOptions{Capitalize: true})
	testutils.NoError(t, err)
	testutils.Equal(t, strings.ToUpper(s[:1]), s[:1])

	s, err = String(StringOptions{Lowercase: true, Prefix: "ABC"})
	testutils.NoError(t, err)
	testutils.Equal(t, strings.ToLower(s), s)

	s, err = String(StringOptions{Uppercase: true, Lowercase: true})
	testutils.NoError(t, err)
	testutils.Equal(t, strings.ToUpper(s), s)
}
