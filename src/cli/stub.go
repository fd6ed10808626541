// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/H0llyW00dzZ/mockzmq/src/bench"
	"github.com/H0llyW00dzZ/mockzmq/src/internal/native"
	"github.com/spf13/cobra"
)

func newSendCommand() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "send [FILE]",
		Short: "Print the send checksum of FILE or stdin",
		Long: `Send hands the whole input to the stub's send operation and prints the
returned checksum: the sum of all bytes read as unsigned values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := stubOps(backend)
			if err != nil {
				return err
			}
			OperationPerformed = true

			buf, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			defer release(buf)

			fmt.Fprintln(cmd.OutOrStdout(), ops.Send(buf.Bytes()))
			OperationPerformedSuccessfully = true
			return nil
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", bench.BackendGo, "stub backend (go, cgo)")
	return cmd
}

func newRecvCommand() *cobra.Command {
	var (
		backend string
		size    int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "recv --size N",
		Short: "Write N bytes produced by the stub's receive operation",
		Long: `Recv lets the stub fill a native buffer of N bytes, where byte i is i mod 256,
and writes it to OUTPUT_FILE or stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := stubOps(backend)
			if err != nil {
				return err
			}
			OperationPerformed = true

			seg, err := native.Alloc(size)
			if err != nil {
				return err
			}
			defer seg.Free()

			if n := ops.Receive(seg.Bytes()); n != int64(size) {
				return fmt.Errorf("receive wrote %d bytes, want %d", n, size)
			}
			if err := writeOutput(cmd, output, seg.Bytes()); err != nil {
				return err
			}
			OperationPerformedSuccessfully = true
			return nil
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", bench.BackendGo, "stub backend (go, cgo)")
	cmd.Flags().IntVarP(&size, "size", "n", 0, "number of bytes to receive")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func newTransformCommand() *cobra.Command {
	var (
		backend string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "transform [FILE]",
		Short: "XOR every byte of FILE or stdin with the transform mask",
		Long: `Transform applies the stub's in-place transform to the input and writes the
result. Running it twice restores the original bytes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := stubOps(backend)
			if err != nil {
				return err
			}
			OperationPerformed = true

			buf, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			defer release(buf)

			ops.Transform(buf.Bytes())
			if err := writeOutput(cmd, output, buf.Bytes()); err != nil {
				return err
			}
			OperationPerformedSuccessfully = true
			return nil
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", bench.BackendGo, "stub backend (go, cgo)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	return cmd
}
