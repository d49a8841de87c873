// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package datetime provides calendar helpers.
package datetime

import "time"

// NextDay returns midnight, in the location of from, offset days after from.
// An offset of 1 is the start of tomorrow, 0 the start of today.
func NextDay(from time.Time, offset int) time.Time {
	y, m, d := from.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, from.Location())
}

// NextDayOn returns NextDay of the current local time as Unix milliseconds.
func NextDayOn(offset int) int64 {
	return NextDay(time.Now(), offset).UnixMilli()
}
