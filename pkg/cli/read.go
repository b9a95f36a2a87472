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
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/stdlibs/pkg/file"
)

func readCmd() *cli.Command {
	return &cli.Command{
		Name:        "read",
		Usage:       "Print the content of a file",
		ArgsUsage:   "<path>",
		Description: `Print the file exactly as stored, or copy it to --output. --format does not
apply.`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			path, err := singleArg(cmd, "path")
			if err != nil {
				return err
			}

			content, err := file.ReadText(path)
			if err != nil {
				return err
			}

			return writeText(cmd, content)
		},
	}
}
