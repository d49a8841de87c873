// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package sliceutils provides generic helpers for working with slices.
package sliceutils

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/happy-sdk/toolbelt"
)

// Extract collects the value stored under key in every map of items.
// Maps without the key contribute the zero value of V.
func Extract[M ~map[string]V, V any](items []M, key string) ([]V, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: nothing to extract from", toolbelt.ErrEmptyInput)
	}
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: key can't be blank", toolbelt.ErrInvalidRange)
	}
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = item[key]
	}
	return out, nil
}

// Count returns the number of elements of items equal to v.
func Count[T comparable](items []T, v T) int {
	n := 0
	for _, item := range items {
		if item == v {
			n++
		}
	}
	return n
}

// Unique returns a new slice holding the first occurrence of every element
// of items, in their original order.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

// Shuffle returns a shuffled copy of items, leaving items untouched.
func Shuffle[T any](items []T) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Chunk splits items into consecutive slices of size elements. The last
// chunk holds the remainder and may be shorter.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: chunk size must be at least 1, got %d", toolbelt.ErrInvalidRange, size)
	}
	out := make([][]T, 0, (len(items)+size-1)/size)
	for c := range slices.Chunk(items, size) {
		out = append(out, c)
	}
	return out, nil
}

// IncludesAny reports whether b holds at least one element of a.
func IncludesAny[T comparable](a, b []T) bool {
	return slices.ContainsFunc(b, func(item T) bool {
		return slices.Contains(a, item)
	})
}
