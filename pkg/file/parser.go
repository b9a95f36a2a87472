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

package file

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	apperrors "github.com/NVIDIA/stdlibs/pkg/errors"
	"github.com/NVIDIA/stdlibs/pkg/strutil"
)

// Option configures a Parser.
type Option func(*Parser)

// Parser parses line-oriented text files with customizable settings.
type Parser struct {
	delimiter       string
	maxSize         int
	skipComments    bool
	kvDelimiter     string
	vDefault        string
	vTrimChars      string
	skipEmptyValues bool
}

// WithDelimiter sets the delimiter used to split entries in the file.
// Default is newline ("\n").
func WithDelimiter(delim string) Option {
	return func(p *Parser) {
		p.delimiter = delim
	}
}

// WithMaxSize sets the maximum size (in bytes) of the file to be parsed.
// Default is 1MB.
func WithMaxSize(size int) Option {
	return func(p *Parser) {
		p.maxSize = size
	}
}

// WithSkipComments sets whether to skip lines starting with '#'.
// Default is true.
func WithSkipComments(skip bool) Option {
	return func(p *Parser) {
		p.skipComments = skip
	}
}

// WithKVDelimiter sets the key-value delimiter used in GetMap.
// Default is "=".
func WithKVDelimiter(kvDelim string) Option {
	return func(p *Parser) {
		p.kvDelimiter = kvDelim
	}
}

// WithVDefault sets the value used when a line has no key-value delimiter.
func WithVDefault(vDefault string) Option {
	return func(p *Parser) {
		p.vDefault = vDefault
	}
}

// WithVTrimChars sets characters to trim from values in GetMap.
func WithVTrimChars(trimChars string) Option {
	return func(p *Parser) {
		p.vTrimChars = trimChars
	}
}

// WithSkipEmptyValues sets whether GetMap drops entries with empty values.
func WithSkipEmptyValues(skip bool) Option {
	return func(p *Parser) {
		p.skipEmptyValues = skip
	}
}

// NewParser creates a new file parser with the provided options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		delimiter:    "\n",
		maxSize:      1 << 20, // 1MB
		skipComments: true,
		kvDelimiter:  "=",
	}

	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetLines reads the file at path and splits it on the configured delimiter.
// Entries are trimmed; blank entries and, if enabled, comments are dropped.
func (p *Parser) GetLines(path string) ([]string, error) {
	if path == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "file path cannot be empty")
	}

	content, err := ReadText(path)
	if err != nil {
		return nil, err
	}

	if len(content) > p.maxSize {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("file %q exceeds maximum size of %d bytes", path, p.maxSize))
	}

	if !utf8.ValidString(content) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("content of file %q is not valid UTF-8", path))
	}

	parts, err := strutil.Split(content, p.delimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to split file %q: %w", path, err)
	}

	result := make([]string, 0, len(parts))
	for _, part := range parts {
		clean := strings.TrimSpace(part)
		if clean == "" {
			continue
		}
		if p.skipComments && strings.HasPrefix(clean, "#") {
			continue
		}
		result = append(result, clean)
	}

	return result, nil
}

// GetMap reads the file at path and parses each entry into a key-value pair,
// splitting on the first key-value delimiter. Entries without the delimiter
// get the default value. Later duplicates overwrite earlier ones.
func (p *Parser) GetMap(path string) (map[string]string, error) {
	lines, err := p.GetLines(path)
	if err != nil {
		return nil, err
	}

	result := make(map[string]string, len(lines))
	for _, line := range lines {
		kv, err := strutil.SplitN(line, p.kvDelimiter, 2)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", path, err)
		}

		key := strings.TrimSpace(kv[0])
		if len(kv) != 2 {
			if p.skipEmptyValues && p.vDefault == "" {
				slog.Debug("skipping key without value", "key", key)
				continue
			}
			result[key] = p.vDefault
			continue
		}

		value := strings.TrimSpace(kv[1])
		if p.vTrimChars != "" {
			value = strings.Trim(value, p.vTrimChars)
		}
		if p.skipEmptyValues && value == "" {
			slog.Debug("skipping empty value", "key", key)
			continue
		}

		result[key] = value
	}

	return result, nil
}
