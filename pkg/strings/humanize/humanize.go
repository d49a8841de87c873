// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2024 The Happy Authors

// Package humanize converts between compact, human written values and their
// numeric form: duration strings like "30d", multi-unit breakdowns like
// "1y, 2mo" and abbreviated counters like "1.2K".
package humanize

import (
	"math"
	"strconv"
	"strings"
)

// DefaultSeparator is placed between units by FormatDuration.
const DefaultSeparator = ", "

// abbrevSuffixes are the thousand-power tiers used by Abbrev, smallest first.
var abbrevSuffixes = [...]string{"K", "M", "B", "T"}

// Abbrev shortens a number with a thousand-power suffix rounded to one
// decimal place, e.g. 1234 becomes "1.2K". A value that rounds up to 1000
// of one tier is promoted to 1 of the next tier when there is one.
// Zero, NaN and infinite values yield "0".
func Abbrev(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}

	for i := len(abbrevSuffixes) - 1; i >= 0; i-- {
		size := math.Pow(10, float64((i+1)*3))
		if size > v {
			continue
		}
		n := math.Round(v*10/size) / 10
		if n == 1000 && i < len(abbrevSuffixes)-1 {
			n = 1
			i++
		}
		return formatFloat(n) + abbrevSuffixes[i]
	}
	return formatFloat(v)
}

// AbbrevString is Abbrev for numeric strings. The fractional part of the
// input is discarded before abbreviating; blank or non numeric input
// yields "0".
func AbbrevString(s string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "0"
	}
	return Abbrev(math.Trunc(f))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
