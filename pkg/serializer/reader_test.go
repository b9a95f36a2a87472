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

package serializer

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"A.JSON", FormatJSON},
		{"values.yaml", FormatYAML},
		{"values.yml", FormatYAML},
		{"os-release", FormatTable},
		{"config.env", FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFromPath(tt.path))
		})
	}
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "m.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"b":2,"a":1}`), 0o600))
	m, err := FromFile[map[string]int](jsonPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, *m)

	yamlPath := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("b: two\na: one\n"), 0o600))
	y, err := FromFile[map[string]string](yamlPath)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "one", "b": "two"}, *y)
}

func TestFromFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := FromFile[map[string]any](filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = FromFile[map[string]any](filepath.Join(dir, "plain.txt"))
	assert.ErrorContains(t, err, "cannot determine format")

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))
	_, err = FromFile[map[string]any](bad)
	assert.ErrorContains(t, err, "failed to decode JSON")
}
