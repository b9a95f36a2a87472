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
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/stdlibs/pkg/serializer"
)

func singleArg(cmd *cli.Command, what string) (string, error) {
	if n := cmd.Args().Len(); n != 1 {
		return "", fmt.Errorf("expected exactly one %s argument, got %d", what, n)
	}
	return cmd.Args().First(), nil
}

// writeResult serializes v to --output, or to the root command's writer.
func writeResult(ctx context.Context, cmd *cli.Command, v any) (err error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return fmt.Errorf("unknown output format: %q", format)
	}

	var w *serializer.Writer
	if path := cmd.String("output"); path != "" {
		fw, err := serializer.NewFileWriterOrStdout(format, path)
		if err != nil {
			return err
		}
		w = fw
	} else {
		w = serializer.NewWriter(format, cmd.Root().Writer)
	}
	defer closeOutput(w, &err)

	return w.Serialize(ctx, v)
}

// writeText writes s unchanged to --output, or to the root command's writer.
func writeText(cmd *cli.Command, s string) (err error) {
	path := cmd.String("output")
	if path == "" {
		_, err = io.WriteString(cmd.Root().Writer, s)
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer closeOutput(f, &err)

	if _, err := io.WriteString(f, s); err != nil {
		return fmt.Errorf("failed to write output file %q: %w", path, err)
	}
	return nil
}

// closeOutput closes c and reports its error through err unless err is
// already set.
func closeOutput(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close output: %w", cerr)
	}
}
