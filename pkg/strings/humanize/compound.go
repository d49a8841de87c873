// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

package humanize

import (
	"fmt"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/happy-sdk/toolbelt"
	"github.com/xhit/go-str2duration/v2"
)

// ParseCompound converts a multi-segment duration string such as "1w2d3h"
// or "1h30m15s" into milliseconds. Units are the Go time units (h, m, s,
// ms, us, ns) plus d and w.
func ParseCompound(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: duration string can't be empty", toolbelt.ErrEmptyInput)
	}
	d, err := str2duration.ParseDuration(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", toolbelt.ErrNotANumber, err.Error())
	}
	return d.Milliseconds(), nil
}

// LongDuration renders a millisecond count with full unit names, e.g.
// "1 hour 30 minutes". When limit is greater than zero only the first
// limit units are kept.
func LongDuration(ms int64, limit int) string {
	f := durafmt.Parse(time.Duration(ms) * time.Millisecond)
	if limit > 0 {
		f = f.LimitFirstN(limit)
	}
	return f.String()
}
