// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package mathutils holds small numeric helpers.
package mathutils

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/happy-sdk/toolbelt"
)

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// Progress returns current as a fraction of goal, e.g. 0.5 for half way.
// Values above 1 mean the goal has been exceeded.
func Progress(current, goal float64) (float64, error) {
	if current < 0 {
		return 0, fmt.Errorf("%w: current progress must not be negative, got %v", toolbelt.ErrInvalidRange, current)
	}
	if goal <= 0 {
		return 0, fmt.Errorf("%w: goal must be greater than 0, got %v", toolbelt.ErrInvalidRange, goal)
	}
	return current / goal, nil
}

// Average returns the arithmetic mean of nums.
func Average(nums []float64) (float64, error) {
	if len(nums) == 0 {
		return 0, fmt.Errorf("%w: can not average an empty list", toolbelt.ErrEmptyInput)
	}
	var sum float64
	for _, n := range nums {
		sum += n
	}
	return sum / float64(len(nums)), nil
}

// Normalize linearly rescales nums so that the smallest value maps to lo
// and the largest to hi. When all values are equal they all map to lo.
func Normalize(nums []float64, lo, hi float64) ([]float64, error) {
	if len(nums) == 0 {
		return nil, fmt.Errorf("%w: can not normalize an empty list", toolbelt.ErrEmptyInput)
	}
	if lo >= hi {
		return nil, fmt.Errorf("%w: min %v must be less than max %v", toolbelt.ErrInvalidRange, lo, hi)
	}

	oldMin, oldMax := slices.Min(nums), slices.Max(nums)
	span := oldMax - oldMin
	out := make([]float64, len(nums))
	for i, n := range nums {
		if span == 0 {
			out[i] = lo
			continue
		}
		out[i] = (n-oldMin)/span*(hi-lo) + lo
	}
	return out, nil
}
