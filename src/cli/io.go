// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/H0llyW00dzZ/mockzmq/src/internal/helper/gc"
	"github.com/spf13/cobra"
)

// readInput reads the named file, or stdin when args is empty, into a pooled
// buffer. The caller must hand the buffer back with [release].
func readInput(cmd *cobra.Command, args []string) (gc.Buffer, error) {
	if len(args) > 1 {
		return nil, ErrTooManyArgs
	}

	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("error reading input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	buf := gc.Default.Get()
	if _, err := buf.ReadFrom(r); err != nil {
		release(buf)
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return buf, nil
}

func release(buf gc.Buffer) {
	buf.Reset()
	gc.Default.Put(buf)
}

// writeOutput writes data to path, or to the command's stdout when path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing to output file: %w", err)
	}
	return nil
}
