// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package random generates random numbers, picks, strings and identifiers.
//
// Unless stated otherwise values come from the process wide math/rand/v2
// source and are not suitable for secrets.
package random

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/happy-sdk/toolbelt"
	"github.com/oklog/ulid/v2"
)

// InRange returns a random integer in the closed interval [lo, hi].
func InRange(lo, hi int) (int, error) {
	if hi <= lo {
		return 0, fmt.Errorf("%w: max %d must be greater than min %d", toolbelt.ErrInvalidRange, hi, lo)
	}
	// Unsigned arithmetic keeps spans wider than math.MaxInt exact.
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return int(rand.Uint64()), nil
	}
	return int(uint64(lo) + rand.Uint64N(span)), nil
}

// Gamble returns true with the given percentage chance, 0 never wins and
// 100 always does.
func Gamble(percentage float64) (bool, error) {
	if percentage < 0 || percentage > 100 {
		return false, fmt.Errorf("%w: percentage must be within 0 and 100, got %v", toolbelt.ErrInvalidRange, percentage)
	}
	return rand.Float64() < percentage/100, nil
}

// Item returns a random element of items.
func Item[T any](items []T) (T, error) {
	if len(items) == 0 {
		var zero T
		return zero, fmt.Errorf("%w: can not pick from an empty list", toolbelt.ErrEmptyInput)
	}
	return items[rand.IntN(len(items))], nil
}

// UUID returns a random (version 4) UUID in its canonical string form.
func UUID() string {
	return uuid.NewString()
}

// ULID returns a lexicographically sortable identifier for the current time.
func ULID() string {
	return ulid.Make().String()
}
