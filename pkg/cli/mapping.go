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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/stdlibs/pkg/file"
	"github.com/NVIDIA/stdlibs/pkg/maputil"
	"github.com/NVIDIA/stdlibs/pkg/serializer"
)

func mappingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "kv-delimiter",
			Value: "=",
			Usage: "Key-value delimiter for key=value files",
		},
		&cli.StringFlag{
			Name:  "delimiter",
			Value: "\n",
			Usage: "Entry delimiter for key=value files",
		},
		&cli.StringFlag{
			Name:  "trim",
			Usage: "Characters to trim from values in key=value files (e.g. '\"')",
		},
	}
}

func keysCmd() *cli.Command {
	return &cli.Command{
		Name:      "keys",
		Usage:     "Print the keys of a mapping file in ascending order",
		ArgsUsage: "<path>",
		Flags:     mappingFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := loadMapping(cmd)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, maputil.Keys(m))
		},
	}
}

func valuesCmd() *cli.Command {
	return &cli.Command{
		Name:      "values",
		Usage:     "Print the values of a mapping file in key order",
		ArgsUsage: "<path>",
		Flags:     mappingFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			m, err := loadMapping(cmd)
			if err != nil {
				return err
			}
			return writeResult(ctx, cmd, maputil.Values(m))
		},
	}
}

// loadMapping decodes JSON and YAML documents by extension and parses any
// other file as delimited key-value entries.
func loadMapping(cmd *cli.Command) (map[string]any, error) {
	path, err := singleArg(cmd, "path")
	if err != nil {
		return nil, err
	}

	if serializer.FormatFromPath(path) != serializer.FormatTable {
		m, err := serializer.FromFile[map[string]any](path)
		if err != nil {
			return nil, fmt.Errorf("failed to load mapping from %q: %w", path, err)
		}
		if *m == nil {
			return map[string]any{}, nil
		}
		return *m, nil
	}

	p := file.NewParser(
		file.WithKVDelimiter(cmd.String("kv-delimiter")),
		file.WithDelimiter(cmd.String("delimiter")),
		file.WithVTrimChars(cmd.String("trim")),
	)
	kv, err := p.GetMap(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load mapping from %q: %w", path, err)
	}

	m := make(map[string]any, len(kv))
	for k, v := range kv {
		m[k] = v
	}
	return m, nil
}
