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

// Package cli implements the stdlibs command-line interface.
//
// # Commands
//
// split - Split a string on a literal delimiter:
//
//	stdlibs split --delim , "a,,b"
//
// read - Print the raw content of a file, or copy it to --output:
//
//	stdlibs read /etc/os-release
//
// keys, values - Print the keys or values of a mapping file in key order:
//
//	stdlibs keys /etc/os-release
//	stdlibs --format json values settings.yaml
//
// Mapping files ending in .json, .yaml or .yml are decoded as documents with
// a top-level object. Any other file is parsed as key=value lines; see
// --kv-delimiter and --delimiter.
//
// # Global Flags
//
//	--format, -t     Output format: yaml, json, table (default: yaml)
//	--output, -o     Output file path (default: stdout)
//	--log-level      Log level: debug, info, warn, error (default: info)
//
// # Environment Variables
//
//	LOG_LEVEL        Log level when --log-level is not set
//	STDLIBS_FORMAT   Output format when --format is not set
//
// # Exit Codes
//
//	0  Success
//	1  Any error
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/stdlibs/pkg/cli.version=1.0.0'"
package cli
