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
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/stdlibs/pkg/file"
)

// FormatFromPath determines the format from the file extension.
// It returns FormatTable for extensions it cannot decode.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTable
	}
}

// Decode parses content in the given format into v.
func Decode(format Format, content string, v any) error {
	switch format {
	case FormatJSON:
		if err := json.Unmarshal([]byte(content), v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(content), v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format for deserialization: %s", format)
	}
}

// FromFile reads a JSON or YAML file into a new T.
func FromFile[T any](path string) (*T, error) {
	format := FormatFromPath(path)
	if format == FormatTable {
		return nil, fmt.Errorf("cannot determine format of %q from its extension", path)
	}

	content, err := file.ReadText(path)
	if err != nil {
		return nil, err
	}

	var v T
	if err := Decode(format, content, &v); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("loaded object from file", "path", path, "format", string(format))
	return &v, nil
}
