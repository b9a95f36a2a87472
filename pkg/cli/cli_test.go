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

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/NVIDIA/stdlibs/pkg/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewCommand()
	cmd.Writer = &out
	cmd.ErrWriter = io.Discard

	err := cmd.Run(context.Background(), append([]string{name, "--log-level", "error"}, args...))
	return out.String(), err
}

func writeTemp(t *testing.T, fileName, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func decodeJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestSplitCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{"default delimiter", []string{"split", "a,b,c"}, []string{"a", "b", "c"}},
		{"consecutive delimiters", []string{"split", "a,,b"}, []string{"a", "", "b"}},
		{"trailing delimiter", []string{"split", "a,"}, []string{"a", ""}},
		{"custom delimiter", []string{"split", "--delim", "::", "x::y"}, []string{"x", "y"}},
		{"alias", []string{"split", "-d", ";", "x;y"}, []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--format", "json"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, decodeJSON[[]string](t, out))
		})
	}
}

func TestSplitCommandErrors(t *testing.T) {
	_, err := run(t, "split")
	assert.ErrorContains(t, err, "expected exactly one string argument, got 0")

	_, err = run(t, "split", "a", "b")
	assert.ErrorContains(t, err, "got 2")

	_, err = run(t, "--format", "xml", "split", "a")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestSplitCommandYAMLDefault(t *testing.T) {
	out, err := run(t, "split", "a,b")
	require.NoError(t, err)
	assert.Equal(t, "- a\n- b\n", out)
}

func TestSplitCommandOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parts.json")

	out, err := run(t, "--format", "json", "--output", path, "split", "1,2")
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, decodeJSON[[]string](t, string(b)))
}

func TestReadCommandOutputFile(t *testing.T) {
	src := writeTemp(t, "hello.txt", "hello\r\nworld\n")
	dst := filepath.Join(t.TempDir(), "copy.txt")

	out, err := run(t, "--output", dst, "read", src)
	require.NoError(t, err)
	assert.Empty(t, out)

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello\r\nworld\n", string(b))

	_, err = run(t, "--output", filepath.Join(t.TempDir(), "missing", "copy.txt"), "read", src)
	assert.ErrorContains(t, err, "failed to create output file")
}

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestCloseOutput(t *testing.T) {
	closeErr := errors.New("disk full")
	writeErr := errors.New("write failed")

	tests := []struct {
		name    string
		closer  failingCloser
		initial error
		want    error
	}{
		{"clean close", failingCloser{}, nil, nil},
		{"close error reported", failingCloser{err: closeErr}, nil, closeErr},
		{"earlier error kept", failingCloser{err: closeErr}, writeErr, writeErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.initial
			closeOutput(tt.closer, &err)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			if tt.initial != nil {
				assert.NotErrorIs(t, err, closeErr)
			}
		})
	}
}

func TestReadCommand(t *testing.T) {
	path := writeTemp(t, "hello.txt", "hello\nworld")

	out, err := run(t, "read", path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld", out)
}

func TestReadCommandMissingFile(t *testing.T) {
	out, err := run(t, "read", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Empty(t, out)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))
}

func TestKeysAndValuesCommands(t *testing.T) {
	envFile := writeTemp(t, "os-release", "VERSION_ID=\"24.04\"\n# comment\nID=ubuntu\nNAME=\"Ubuntu\"\n")
	jsonFile := writeTemp(t, "m.json", `{"zeta": "z", "alpha": "a", "mid": "m"}`)
	yamlFile := writeTemp(t, "m.yaml", "b: 2\na: 1\n")

	tests := []struct {
		name       string
		args       []string
		wantKeys   []string
		wantValues []any
	}{
		{
			name:       "key-value file",
			args:       []string{envFile},
			wantKeys:   []string{"ID", "NAME", "VERSION_ID"},
			wantValues: []any{"ubuntu", `"Ubuntu"`, `"24.04"`},
		},
		{
			name:       "key-value file with trim",
			args:       []string{"--trim", `"`, envFile},
			wantKeys:   []string{"ID", "NAME", "VERSION_ID"},
			wantValues: []any{"ubuntu", "Ubuntu", "24.04"},
		},
		{
			name:       "json document",
			args:       []string{jsonFile},
			wantKeys:   []string{"alpha", "mid", "zeta"},
			wantValues: []any{"a", "m", "z"},
		},
		{
			name:       "yaml document",
			args:       []string{yamlFile},
			wantKeys:   []string{"a", "b"},
			wantValues: []any{float64(1), float64(2)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"--format", "json", "keys"}, tt.args...)...)
			require.NoError(t, err)
			keys := decodeJSON[[]string](t, out)
			assert.Equal(t, tt.wantKeys, keys)

			out, err = run(t, append([]string{"--format", "json", "values"}, tt.args...)...)
			require.NoError(t, err)
			values := decodeJSON[[]any](t, out)
			assert.Equal(t, tt.wantValues, values)
			assert.Len(t, values, len(keys))
		})
	}
}

func TestKeysCommandEmptyFile(t *testing.T) {
	path := writeTemp(t, "empty.env", "")

	out, err := run(t, "--format", "json", "keys", path)
	require.NoError(t, err)
	assert.Equal(t, []string{}, decodeJSON[[]string](t, out))
}

func TestKeysCommandErrors(t *testing.T) {
	_, err := run(t, "keys", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeNotFound))

	path := writeTemp(t, "list.json", `[1, 2]`)
	_, err = run(t, "values", path)
	assert.ErrorContains(t, err, "failed to decode JSON")

	envFile := writeTemp(t, "bad.env", "k=\xff")
	_, err = run(t, "keys", envFile)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrCodeInvalidRequest))
}
