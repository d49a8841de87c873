// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package color normalizes and validates hexadecimal color codes.
package color

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/happy-sdk/toolbelt"
)

// Black is the fallback used by FormatHex when no alternative is given.
const Black = "#000000"

var hexRe = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

// FormatHex adds a missing "#" prefix to hex and expands the short three
// digit form to six digits. When the result is not six digits long, alt is
// returned instead, or Black when alt is empty.
//
// FormatHex does not check that the digits are hexadecimal, use ValidateHex
// for that.
func FormatHex(hex, alt string) string {
	digits := []rune(strings.Replace(hex, "#", "", 1))
	if len(digits) == 3 {
		digits = []rune{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]}
	}
	if len(digits) != 6 {
		if alt == "" {
			return Black
		}
		return alt
	}
	return "#" + string(digits)
}

// ValidateHex reports whether hex is a "#" prefixed three or six digit
// hexadecimal color code.
func ValidateHex(hex string) (bool, error) {
	if hex == "" {
		return false, fmt.Errorf("%w: hex value can't be empty", toolbelt.ErrEmptyInput)
	}
	return hexRe.MatchString(hex), nil
}
