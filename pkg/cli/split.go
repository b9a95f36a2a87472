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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/stdlibs/pkg/strutil"
)

func splitCmd() *cli.Command {
	return &cli.Command{
		Name:      "split",
		Usage:     "Split a string on every occurrence of a delimiter",
		ArgsUsage: "<string>",
		Description: `Split the argument on each leftmost, non-overlapping occurrence of the
delimiter. Empty fields are kept, so "a,,b" yields three elements and "a,"
yields two. The delimiter is matched literally and must not be empty.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "delim",
				Aliases: []string{"d"},
				Value:   ",",
				Usage:   "Delimiter to split on",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			str, err := singleArg(cmd, "string")
			if err != nil {
				return err
			}

			parts, err := strutil.Split(str, cmd.String("delim"))
			if err != nil {
				return fmt.Errorf("error splitting input: %w", err)
			}
			slog.Debug("split string", "parts", len(parts))

			return writeResult(ctx, cmd, parts)
		},
	}
}
