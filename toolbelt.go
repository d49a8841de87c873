// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package toolbelt is a collection of small, independent helpers for
// formatting, parsing and validating primitive values. The helpers live in
// the pkg/ subpackages; this package only carries the error taxonomy they
// share so callers can match failures with errors.Is regardless of which
// helper produced them.
package toolbelt

import (
	"errors"
	"fmt"
)

var (
	// Error is the root of every error returned by toolbelt packages.
	Error = errors.New("toolbelt")
	// ErrEmptyInput is returned when a required value is empty or blank.
	ErrEmptyInput = fmt.Errorf("%w: empty input", Error)
	// ErrUnknownSuffix is returned when a unit suffix is not in the lookup table.
	ErrUnknownSuffix = fmt.Errorf("%w: unknown suffix", Error)
	// ErrNotANumber is returned when a value can not be interpreted as a number.
	ErrNotANumber = fmt.Errorf("%w: not a number", Error)
	// ErrInvalidRange is returned when a value is outside of its allowed domain.
	ErrInvalidRange = fmt.Errorf("%w: invalid range", Error)
	// ErrTypeMismatch is returned when an argument is of the wrong kind.
	ErrTypeMismatch = fmt.Errorf("%w: type mismatch", Error)
)
