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

// Package logging configures log/slog for the stdlibs command and packages.
//
// Logs are JSON lines on stderr carrying the module name and version. The
// level comes from an explicit value or, when that is empty, from the
// LOG_LEVEL environment variable. Debug level adds the source location.
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("stdlibs", version)
//	    slog.Info("starting")
//	}
//
// Supported levels (case-insensitive): debug, info, warn, warning, error.
// Anything else falls back to info.
package logging
