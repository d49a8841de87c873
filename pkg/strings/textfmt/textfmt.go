// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2024 The Happy Authors

// Package textfmt offers a collection of utils for plain text formatting.
package textfmt

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/happy-sdk/toolbelt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Ellipsis is appended by Shorten to truncated text.
const Ellipsis = "..."

// Shorten truncates text to at most n runes and appends Ellipsis.
// Text that already fits is returned unchanged. Whitespace left dangling at
// either end of the truncated text is trimmed before the ellipsis is added.
func Shorten(text string, n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: length must be a positive integer, got %d", toolbelt.ErrInvalidRange, n)
	}
	if utf8.RuneCountInString(text) <= n {
		return text, nil
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:n])) + Ellipsis, nil
}

// Capitalize upper-cases the first letter of s and leaves the rest intact.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	slices.Reverse(runes)
	return string(runes)
}

// IsPalindrome reports whether s reads the same backwards, ignoring case
// and every rune that is not a letter or a digit.
func IsPalindrome(s string) bool {
	folded := cases.Fold().String(s)
	clean := make([]rune, 0, len(folded))
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			clean = append(clean, r)
		}
	}
	for i, j := 0, len(clean)-1; i < j; i, j = i+1, j-1 {
		if clean[i] != clean[j] {
			return false
		}
	}
	return true
}
