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

package strutil

import (
	"strings"

	apperrors "github.com/NVIDIA/stdlibs/pkg/errors"
)

// ErrEmptyDelimiter is returned when the delimiter is the empty string.
var ErrEmptyDelimiter = apperrors.New(apperrors.ErrCodeInvalidRequest, "delimiter cannot be empty")

// Split slices str into all substrings separated by delim.
// The result always has at least one element.
func Split(str, delim string) ([]string, error) {
	return SplitN(str, delim, -1)
}

// SplitN is like Split but returns at most n substrings; the last one holds
// the unsplit remainder. n <= 0 means no limit.
func SplitN(str, delim string, n int) ([]string, error) {
	if delim == "" {
		return nil, ErrEmptyDelimiter
	}

	count := strings.Count(str, delim) + 1
	if n <= 0 || n > count {
		n = count
	}

	parts := make([]string, 0, n)
	for len(parts) < n-1 {
		i := strings.Index(str, delim)
		if i < 0 {
			break
		}
		parts = append(parts, str[:i])
		str = str[i+len(delim):]
	}
	return append(parts, str), nil
}
