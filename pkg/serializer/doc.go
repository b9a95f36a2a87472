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

// Package serializer encodes command results as JSON, YAML, or a plain text
// table, and decodes JSON or YAML documents from files.
//
// # Formats
//
// JSON: indented, encoding/json.
//
// YAML: two-space indent, gopkg.in/yaml.v3.
//
// Table: one row per element for lists, one row per key for maps (sorted by
// key), a single value row otherwise. Write-only.
//
// # Usage
//
//	w, err := serializer.NewFileWriterOrStdout(serializer.FormatYAML, "")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//	if err := w.Serialize(ctx, keys); err != nil {
//	    return err
//	}
//
// Decoding picks the format from the file extension:
//
//	m, err := serializer.FromFile[map[string]any]("values.yaml")
package serializer
