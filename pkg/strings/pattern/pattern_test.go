// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package pattern

import (
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
	"github.com/happy-sdk/toolbelt"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		kind Kind
		in   string
		want bool
	}{
		{Email, "john.doe@example.com", true},
		{Email, "john-doe@mail.example.org", true},
		{Email, "john.doe@example", false},
		{Email, "john doe@example.com", false},
		{URL, "https://www.example.com", true},
		{URL, "http://example.com/path?q=1&b=2", true},
		{URL, "ftp://example.com", false},
		{URL, "visit https://example.com", false},
		{CreditCard, "4111111111111111", true},
		{CreditCard, "5500000000000004", true},
		{CreditCard, "340000000000009", true},
		{CreditCard, "1234567890123456", false},
		{IPv4, "192.168.1.1", true},
		{IPv4, "255.255.255.255", true},
		{IPv4, "256.1.1.1", false},
		{IPv4, "1.2.3", false},
		{PostalCode, "12345", true},
		{PostalCode, "12345-6789", true},
		{PostalCode, "1234", false},
		{Password, "Passw0rd!", true},
		{Password, "password", false},
		{Password, "Pa0!", false},
		{Password, "PASSWORD0!", false},
		{Username, "john_doe", true},
		{Username, "jo", false},
		{Username, "john doe", false},
		{Time, "00:00", true},
		{Time, "23:59", true},
		{Time, "24:00", false},
		{Time, "12:60", false},
		{Hashtag, "#golang", true},
		{Hashtag, "#go-lang", false},
		{Hashtag, "golang", false},
	}
	for _, tt := range tests {
		got, err := Match(tt.in, tt.kind)
		testutils.NoError(t, err, tt.in)
		testutils.Equal(t, tt.want, got, string(tt.kind)+": "+tt.in)
	}
}

func TestMatchUnknownKind(t *testing.T) {
	_, err := Match("+1 555 0100", Kind("phone"))
	testutils.ErrorIs(t, err, ErrUnknownPattern)
	testutils.ErrorIs(t, err, toolbelt.ErrTypeMismatch)
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	testutils.Equal(t, 9, len(kinds))
	testutils.Equal(t, Email, kinds[0])
	testutils.Equal(t, Hashtag, kinds[len(kinds)-1])
}
