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
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	apperrors "github.com/NVIDIA/stdlibs/pkg/errors"
)

// ReadText reads the entire file at path and returns its content.
// The file handle is released before ReadText returns.
func ReadText(path string) (content string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", wrapPathError("failed to open file", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			content, err = "", wrapPathError("failed to close file", path, cerr)
		}
	}()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", wrapPathError("failed to read file", path, err)
	}

	slog.Debug("read file", "path", path, "bytes", len(b))
	return string(b), nil
}

func wrapPathError(msg, path string, err error) error {
	code := apperrors.ErrCodeInternal
	switch {
	case errors.Is(err, fs.ErrNotExist):
		code = apperrors.ErrCodeNotFound
	case errors.Is(err, fs.ErrPermission):
		code = apperrors.ErrCodeUnauthorized
	}
	return apperrors.WrapWithContext(code, msg, err, map[string]any{"path": path})
}
