// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"

	"github.com/H0llyW00dzZ/mockzmq/src/bench"
	"github.com/H0llyW00dzZ/mockzmq/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/mockzmq/src/logger"
	"github.com/H0llyW00dzZ/mockzmq/src/mockzmq"
	"github.com/spf13/cobra"
)

var (
	// OperationPerformed is set once a subcommand starts doing real work.
	OperationPerformed bool
	// OperationPerformedSuccessfully is set when that work completed without error.
	OperationPerformedSuccessfully bool
)

var (
	// ErrUnknownFormat is returned for a report or log format the CLI does not know.
	ErrUnknownFormat = errors.New("cli: unknown format")
	// ErrTooManyArgs is returned when more than one input file is given.
	ErrTooManyArgs = errors.New("cli: at most one input file")
)

// Execute runs the root command with os.Args and returns the first error.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Each call returns fresh flag state,
// so tests can build and run as many trees as they like.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           posix.GetExecutableName(),
		Short:         "Mock messaging stub and buffer transfer benchmark",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newSendCommand(),
		newRecvCommand(),
		newTransformCommand(),
		newBenchCommand(log),
	)
	return rootCmd
}

// stubOps resolves the --backend flag of the stub subcommands.
func stubOps(name string) (mockzmq.Ops, error) {
	bs, err := bench.SelectBackends([]string{name})
	if err != nil {
		return nil, err
	}
	return bs[0].Ops, nil
}
