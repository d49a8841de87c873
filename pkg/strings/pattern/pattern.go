// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package pattern matches strings against a fixed set of well known formats
// such as e-mail addresses, URLs or IPv4 addresses.
package pattern

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/happy-sdk/toolbelt"
)

// Kind names a pattern in the lookup table.
type Kind string

const (
	Email      Kind = "email"
	URL        Kind = "url"
	CreditCard Kind = "credit-card"
	IPv4       Kind = "ip-address-v4"
	PostalCode Kind = "postal-code"
	Password   Kind = "password"
	Username   Kind = "username"
	Time       Kind = "time"
	Hashtag    Kind = "hashtag"
)

// ErrUnknownPattern is returned by Match for a kind not in the table.
var ErrUnknownPattern = fmt.Errorf("%w: unknown pattern", toolbelt.ErrTypeMismatch)

// MatchTimeout bounds the time a single match may take.
const MatchTimeout = time.Second

type entry struct {
	kind Kind
	re   *regexp2.Regexp
}

// Patterns are anchored at the start of the input. Password needs
// look-ahead, which is why the table is compiled with regexp2.
var patterns = []entry{
	{Email, compile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,9}$`)},
	{URL, compile(`^https?:\/\/(www\.)?[-a-zA-Z0-9@:%._\+~#=]{2,200}\.[a-zA-Z0-9()]{2,7}\b([-a-zA-Z0-9()!@:%_\+.~#?&\/=]*)`)},
	{CreditCard, compile(`^(?:4[0-9]{12}(?:[0-9]{3})?|5[1-5][0-9]{14}|6(?:011|5[0-9][0-9])[0-9]{12}|3[47][0-9]{13})$`)},
	{IPv4, compile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)},
	{PostalCode, compile(`^\d{5}(?:[-\s]\d{4})?$`)},
	{Password, compile(`^(?=.*[a-z])(?=.*[A-Z])(?=.*[0-9])(?=.*[!@#$%^&*])(?=.{8,})`)},
	{Username, compile(`^[a-zA-Z0-9._-]{3,}$`)},
	{Time, compile(`^([0-1][0-9]|2[0-3]):([0-5][0-9])$`)},
	{Hashtag, compile(`^#[A-Za-z0-9]+$`)},
}

func compile(expr string) *regexp2.Regexp {
	re := regexp2.MustCompile(expr, regexp2.ECMAScript)
	re.MatchTimeout = MatchTimeout
	return re
}

// Kinds returns the supported pattern kinds in lookup order.
func Kinds() []Kind {
	kinds := make([]Kind, len(patterns))
	for i, p := range patterns {
		kinds[i] = p.kind
	}
	return kinds
}

// Match reports whether s matches the pattern registered for kind.
func Match(s string, kind Kind) (bool, error) {
	for _, p := range patterns {
		if p.kind != kind {
			continue
		}
		ok, err := p.re.MatchString(s)
		if err != nil {
			return false, fmt.Errorf("%w: %s: %s", toolbelt.Error, kind, err.Error())
		}
		return ok, nil
	}
	return false, fmt.Errorf("%w: %q", ErrUnknownPattern, kind)
}
