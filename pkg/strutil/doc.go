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

// Package strutil splits strings on literal delimiters.
//
// Matching is an exact byte comparison scanned left to right; matches never
// overlap and no regular-expression or case-folding rules apply. Empty
// fields are kept:
//
//	strutil.Split("a,,b", ",") // ["a" "" "b"]
//	strutil.Split("a,", ",")   // ["a" ""]
//	strutil.Split("", ",")     // [""]
//
// An empty delimiter is rejected with ErrEmptyDelimiter.
package strutil
