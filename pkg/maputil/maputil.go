// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package maputil

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Entry is a single key-value pair.
type Entry[K any, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

// Ordered is a key-value mapping with a stable iteration order.
type Ordered[K any, V any] interface {
	All() iter.Seq2[K, V]
}

// Keys returns the keys of m in ascending order.
func Keys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := slices.AppendSeq(make([]K, 0, len(m)), maps.Keys(m))
	slices.Sort(keys)
	return keys
}

// Values returns the values of m ordered by their keys.
func Values[K cmp.Ordered, V any](m map[K]V) []V {
	values := make([]V, 0, len(m))
	for _, k := range Keys(m) {
		values = append(values, m[k])
	}
	return values
}

// Entries returns the entries of m ordered by key.
func Entries[K cmp.Ordered, V any](m map[K]V) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for _, k := range Keys(m) {
		entries = append(entries, Entry[K, V]{Key: k, Value: m[k]})
	}
	return entries
}

// KeysOf returns the keys of o in its iteration order.
func KeysOf[K any, V any](o Ordered[K, V]) []K {
	keys := []K{}
	for k := range o.All() {
		keys = append(keys, k)
	}
	return keys
}

// ValuesOf returns the values of o in its iteration order.
func ValuesOf[K any, V any](o Ordered[K, V]) []V {
	values := []V{}
	for _, v := range o.All() {
		values = append(values, v)
	}
	return values
}
