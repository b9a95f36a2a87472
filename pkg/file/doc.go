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

// Package file reads files from the filesystem as text.
//
// ReadText returns the whole content of a file exactly as stored: no newline
// normalization, no encoding conversion, no trimming. The path is handed to
// the operating system unchanged.
//
//	content, err := file.ReadText("/etc/os-release")
//	if err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Failures are *errors.StructuredError values wrapping the original
// *fs.PathError, so both styles of checks work:
//
//	errors.Is(err, fs.ErrNotExist)                   // true for missing files
//	apperrors.IsCode(err, apperrors.ErrCodeNotFound) // same, by code
//
// Codes: NOT_FOUND for missing files, UNAUTHORIZED for permission errors,
// INTERNAL for everything else (including reading a directory). No content
// is returned together with an error, so an empty string with a nil error
// always means an empty file.
//
// # Parsing
//
// Parser layers line and key-value parsing on top of ReadText for
// configuration-style files such as /etc/os-release or sysctl dumps.
//
// # Thread Safety
//
// ReadText and Parser methods hold no shared state and can be called
// concurrently.
package file
