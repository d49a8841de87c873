// SPDX-License-Identifier: Apache-2.0
//
// Copyright © 2025 The Happy Authors

// Package maputils flattens and merges string keyed maps.
package maputils

import (
	"fmt"
	"maps"
	"reflect"
	"strconv"

	"github.com/happy-sdk/toolbelt"
	"gopkg.in/yaml.v3"
)

// Separator joins nested keys in the output of Flatten.
const Separator = "."

// Flatten turns nested maps and slices into a single level map whose keys
// are the Separator joined paths of the leaves, e.g. {"a": {"b": 1}}
// becomes {"a.b": 1}. Slice elements are keyed by their index. When prefix
// is not empty every key is prefixed with it.
//
// The root value must be a map with string keys or a slice.
func Flatten(v any, prefix string) (map[string]any, error) {
	rv := reflect.ValueOf(v)
	if !isContainer(rv) {
		return nil, fmt.Errorf("%w: can not flatten %T, expected a map or a slice", toolbelt.ErrTypeMismatch, v)
	}
	out := make(map[string]any)
	flatten(out, prefix, rv)
	return out, nil
}

// FlattenYAML decodes a YAML (or JSON) document and flattens it.
func FlattenYAML(data []byte) (map[string]any, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", toolbelt.ErrTypeMismatch, err.Error())
	}
	if doc == nil {
		return nil, fmt.Errorf("%w: document is empty", toolbelt.ErrEmptyInput)
	}
	return Flatten(doc, "")
}

// Merge copies every map into a new one. Keys present in more than one map
// take the value of the last one.
func Merge[M ~map[K]V, K comparable, V any](src ...M) M {
	out := make(M)
	for _, m := range src {
		maps.Copy(out, m)
	}
	return out
}

func isContainer(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Map:
		return rv.Type().Key().Kind() == reflect.String
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func flatten(out map[string]any, prefix string, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			flattenValue(out, join(prefix, iter.Key().String()), iter.Value())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			flattenValue(out, join(prefix, strconv.Itoa(i)), rv.Index(i))
		}
	}
}

func flattenValue(out map[string]any, key string, rv reflect.Value) {
	for rv.Kind() == reflect.Interface || rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			out[key] = nil
			return
		}
		rv = rv.Elem()
	}
	if isContainer(rv) && !(rv.Kind() == reflect.Map && rv.IsNil()) {
		flatten(out, key, rv)
		return
	}
	if !rv.IsValid() {
		out[key] = nil
		return
	}
	out[key] = rv.Interface()
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + Separator + key
}
