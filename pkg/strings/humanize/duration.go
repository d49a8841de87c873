// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2024 The Happy Authors

package humanize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/happy-sdk/toolbelt"
)

// Millisecond factors of the duration suffixes accepted by ParseDuration.
// Months are 30 days and years are 360 days.
const (
	Second int64 = 1000
	Minute       = 60 * Second
	Hour         = 60 * Minute
	Day          = 24 * Hour
	Week         = 7 * Day
	Month        = 30 * Day
	Year         = 12 * Month
)

type suffix struct {
	sym    rune
	factor int64
}

// suffixes is matched against the exact case of the input first, so that
// "M" (month) and "m" (minute) never collapse into each other.
var suffixes = [...]suffix{
	{'s', Second},
	{'m', Minute},
	{'h', Hour},
	{'d', Day},
	{'w', Week},
	{'M', Month},
	{'y', Year},
}

func lookupSuffix(r rune) (suffix, bool) {
	for _, s := range suffixes {
		if s.sym == r {
			return s, true
		}
	}
	lr := unicode.ToLower(r)
	if lr == r {
		return suffix{}, false
	}
	for _, s := range suffixes {
		if s.sym == lr {
			return s, true
		}
	}
	return suffix{}, false
}

// ParseDuration converts a duration string made of a number followed by a
// single unit letter into milliseconds, e.g. "30s", "1.5h" or "1M".
//
// Supported units are s, m, h, d, w, M (30 days) and y (360 days). The unit
// letter is case sensitive for m/M; other letters also match in upper case.
func ParseDuration(text string) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, fmt.Errorf("%w: duration string can't be empty", toolbelt.ErrEmptyInput)
	}

	last, size := utf8.DecodeLastRuneInString(text)
	unit, ok := lookupSuffix(last)
	if !ok {
		return 0, fmt.Errorf("%w: %q, the suffix must be one of s, m, h, d, w, M, y", toolbelt.ErrUnknownSuffix, string(last))
	}

	literal := strings.TrimSpace(text[:len(text)-size])
	n, err := strconv.ParseFloat(literal, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("%w: %q is not a valid duration value", toolbelt.ErrNotANumber, literal)
	}

	ms := math.Round(n * float64(unit.factor))
	if ms >= math.MaxInt64 || ms <= math.MinInt64 {
		return 0, fmt.Errorf("%w: %q overflows a millisecond count", toolbelt.ErrInvalidRange, text)
	}
	return int64(ms), nil
}

// FormatDuration breaks a millisecond count down into years, months, days,
// hours, minutes and seconds joined by DefaultSeparator, e.g. "1y, 1mo".
// See FormatDurationSep.
func FormatDuration(ms float64) (string, error) {
	return FormatDurationSep(ms, DefaultSeparator)
}

// FormatDurationSep is FormatDuration with a custom separator.
//
// Values below one second are returned as seconds with a single decimal,
// halves rounded away from zero, e.g. 250 becomes "0.3s". Larger values are
// broken down with 30 day months and 365 day years, both counted from whole
// days, and units with a zero value are left out. The breakdown is not the
// inverse of ParseDuration, which counts a year as 360 days.
func FormatDurationSep(ms float64, sep string) (string, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return "", fmt.Errorf("%w: %v is not a valid millisecond count", toolbelt.ErrNotANumber, ms)
	}

	if ms < 1000 {
		return strconv.FormatFloat(math.Round(ms/100)/10, 'f', 1, 64) + "s", nil
	}

	secs := math.Floor(ms / 1000)
	if secs >= math.MaxInt64 {
		return "", fmt.Errorf("%w: %v overflows a second count", toolbelt.ErrInvalidRange, ms)
	}

	var (
		seconds = int64(secs)
		minutes = seconds / 60
		hours   = minutes / 60
		days    = hours / 24
		months  = days / 30
		years   = days / 365
	)

	parts := [...]struct {
		value int64
		unit  string
	}{
		{years, "y"},
		{months % 12, "mo"},
		{days % 30, "d"},
		{hours % 24, "h"},
		{minutes % 60, "m"},
		{seconds % 60, "s"},
	}

	var sb strings.Builder
	for _, p := range parts {
		if p.value <= 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(strconv.FormatInt(p.value, 10))
		sb.WriteString(p.unit)
	}
	return sb.String(), nil
}
