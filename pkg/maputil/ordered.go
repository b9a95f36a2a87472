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

import "iter"

// OrderedMap is a map that iterates in insertion order.
// The zero value is not usable; create one with NewOrderedMap.
type OrderedMap[K comparable, V any] struct {
	m     map[K]V
	order []K
}

// NewOrderedMap returns an empty OrderedMap.
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m: make(map[K]V),
	}
}

// Set stores value under key. Overwriting a key keeps its original position.
func (o *OrderedMap[K, V]) Set(key K, value V) {
	if _, exists := o.m[key]; !exists {
		o.order = append(o.order, key)
	}
	o.m[key] = value
}

// Get returns the value stored under key.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := o.m[key]
	return v, ok
}

// Delete removes key. It is a no-op if key is absent.
func (o *OrderedMap[K, V]) Delete(key K) {
	if _, exists := o.m[key]; !exists {
		return
	}
	delete(o.m, key)
	for i, k := range o.order {
		if k == key {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (o *OrderedMap[K, V]) Len() int {
	return len(o.m)
}

// All iterates over the entries in insertion order.
func (o *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range o.order {
			if !yield(k, o.m[k]) {
				return
			}
		}
	}
}
