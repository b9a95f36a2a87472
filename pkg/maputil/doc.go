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

// Package maputil extracts keys and values from ordered key-value mappings.
//
// A built-in map is treated as ordered by ascending key, the order a sorted
// tree map iterates in. Other mappings implement Ordered and define their own
// stable order; OrderedMap keeps insertion order.
//
// For every mapping m, Keys(m)[i] and Values(m)[i] belong to the same entry.
//
//	m := map[string]int{"b": 2, "a": 1}
//	maputil.Keys(m)   // [a b]
//	maputil.Values(m) // [1 2]
//
// None of the functions mutate their input and all of them return freshly
// allocated slices, empty but non-nil for an empty mapping.
package maputil
