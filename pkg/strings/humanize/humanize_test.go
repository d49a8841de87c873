// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2024 The Happy Authors

package humanize

import (
	"math"
	"testing"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func TestAbbrev(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{123, "123"},
		{999, "999"},
		{1000, "1K"},
		{1234, "1.2K"},
		{12345, "12.3K"},
		{123456, "123.5K"},
		{999949, "999.9K"},
		{999950, "1M"},
		{1234567, "1.2M"},
		{12345678, "12.3M"},
		{123456789, "123.5M"},
		{1234567890, "1.2B"},
		{999999999999, "1T"},
		{1e15, "1000T"},
		{2.5e15, "2500T"},
		{-5, "-5"},
		{0.5, "0.5"},
	}
	for _, tt := range tests {
		testutils.Equal(t, tt.want, Abbrev(tt.in), formatFloat(tt.in))
	}
}

func TestAbbrevNonNumeric(t *testing.T) {
	testutils.Equal(t, "0", Abbrev(math.NaN()))
	testutils.Equal(t, "0", Abbrev(math.Inf(1)))
	testutils.Equal(t, "0", AbbrevString(""))
	testutils.Equal(t, "0", AbbrevString("   "))
	testutils.Equal(t, "0", AbbrevString("12abc"))
	testutils.Equal(t, "0", AbbrevString("0"))
}

func TestAbbrevString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123", "123"},
		{"1234", "1.2K"},
		{"12345", "12.3K"},
		{"123456", "123.5K"},
		{"1234567", "1.2M"},
		{"12345678", "12.3M"},
		{"123456789", "123.5M"},
		{"1234567890", "1.2B"},
		{" 1234.9 ", "1.2K"},
		{"999.9", "999"},
		{"1e5", "100K"},
	}
	for _, tt := range tests {
		testutils.Equal(t, tt.want, AbbrevString(tt.in), tt.in)
	}
}
