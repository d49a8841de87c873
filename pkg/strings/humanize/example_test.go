// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2024 The Happy Authors

package humanize_test

import (
	"fmt"

	"github.com/happy-sdk/toolbelt/pkg/strings/humanize"
)

func ExampleParseDuration() {
	ms, err := humanize.ParseDuration("30d")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(ms)
	// Output: 2592000000
}

func ExampleFormatDuration() {
	s, _ := humanize.FormatDuration(2592000000 * 13)
	fmt.Println(s)
	s, _ = humanize.FormatDuration(500)
	fmt.Println(s)
	// Output:
	// 1y, 1mo
	// 0.5s
}

func ExampleAbbrev() {
	fmt.Println(humanize.Abbrev(1234))
	fmt.Println(humanize.Abbrev(999949))
	// Output:
	// 1.2K
	// 999.9K
}
