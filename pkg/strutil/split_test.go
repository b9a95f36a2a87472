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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NVIDIA/stdlibs/pkg/errors"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		delim    string
		expected []string
	}{
		{"simple", "a,b,c", ",", []string{"a", "b", "c"}},
		{"consecutive delimiters", "a,,b", ",", []string{"a", "", "b"}},
		{"no match", "abc", ",", []string{"abc"}},
		{"empty string", "", ",", []string{""}},
		{"trailing delimiter", "a,", ",", []string{"a", ""}},
		{"leading delimiter", ",a", ",", []string{"", "a"}},
		{"only delimiter", ",", ",", []string{"", ""}},
		{"multi-byte delimiter", "key::value::", "::", []string{"key", "value", ""}},
		{"non-overlapping leftmost", "aaa", "aa", []string{"", "a"}},
		{"delimiter longer than string", "a", "abc", []string{"a"}},
		{"case sensitive", "aXbxc", "x", []string{"aXb", "c"}},
		{"no regexp", "a.b.c", ".", []string{"a", "b", "c"}},
		{"regexp metachars literal", "a.*b", ".*", []string{"a", "b"}},
		{"newlines kept", "l1\r\nl2\n", "\n", []string{"l1\r", "l2", ""}},
		{"unicode", "α→β→γ", "→", []string{"α", "β", "γ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.str, tt.delim)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, strings.Split(tt.str, tt.delim), got)
			assert.Equal(t, tt.str, strings.Join(got, tt.delim))
		})
	}
}

func TestSplitEmptyDelimiter(t *testing.T) {
	for _, str := range []string{"", "abc"} {
		got, err := Split(str, "")
		require.Error(t, err)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, ErrEmptyDelimiter))
		assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
	}
}

func TestSplitN(t *testing.T) {
	tests := []struct {
		name     string
		str      string
		n        int
		expected []string
	}{
		{"unlimited negative", "a=b=c", -1, []string{"a", "b", "c"}},
		{"unlimited zero", "a=b=c", 0, []string{"a", "b", "c"}},
		{"one", "a=b=c", 1, []string{"a=b=c"}},
		{"two keeps remainder", "a=b=c", 2, []string{"a", "b=c"}},
		{"limit above count", "a=b", 10, []string{"a", "b"}},
		{"empty string", "", 2, []string{""}},
		{"trailing delimiter within limit", "a=", 2, []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SplitN(tt.str, "=", tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := SplitN("a", "", 2)
	assert.ErrorIs(t, err, ErrEmptyDelimiter)
}
