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

// Package errors provides the structured error type shared by the stdlibs
// packages.
//
// Every failure carries an ErrorCode so callers can branch on the kind of
// failure without matching message text. The underlying cause is kept and is
// reachable through errors.Is and errors.As:
//
//	text, err := file.ReadText(path)
//	if errors.IsCode(err, errors.ErrCodeNotFound) {
//	    // fall back to defaults
//	}
//
// A sentinel created with New and an empty message matches any
// StructuredError with the same code:
//
//	var ErrAnyNotFound = errors.New(errors.ErrCodeNotFound, "")
//	stderrors.Is(err, ErrAnyNotFound) // true for every NOT_FOUND error
//
// A sentinel with a message matches only errors with the same code and
// message.
package errors
