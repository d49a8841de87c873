// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package datetime

import (
	"testing"
	"time"

	"github.com/happy-sdk/happy/pkg/devel/testutils"
)

func TestNextDay(t *testing.T) {
	from := time.Date(2024, time.February, 28, 15, 30, 0, 0, time.UTC)

	testutils.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), NextDay(from, 1))
	testutils.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), NextDay(from, 2))
	testutils.Equal(t, time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC), NextDay(from, 0))
	testutils.Equal(t, time.Date(2024, time.February, 27, 0, 0, 0, 0, time.UTC), NextDay(from, -1))
}

func TestNextDayKeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	from := time.Date(2024, time.December, 31, 23, 0, 0, 0, loc)
	got := NextDay(from, 1)
	testutils.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, loc).UnixMilli(), got.UnixMilli())
	testutils.Equal(t, "UTC+3", got.Location().String())
}

func TestNextDayOn(t *testing.T) {
	now := time.Now()
	got := time.UnixMilli(NextDayOn(1))
	testutils.True(t, got.After(now), "next day must be in the future")
	testutils.True(t, got.Sub(now) <= 25*time.Hour, "next day too far: %v", got.Sub(now))
	testutils.Equal(t, 0, got.Hour())
	testutils.Equal(t, 0, got.Minute())
}
