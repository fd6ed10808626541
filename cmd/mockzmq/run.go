// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/mockzmq/src/cli"
	"github.com/H0llyW00dzZ/mockzmq/src/logger"
	verpkg "github.com/H0llyW00dzZ/mockzmq/src/version"
)

var version string // set by ldflags or defaults to imported version

// shutdownGrace bounds the wait for a cancelled command. A bench run stops at
// its next batch boundary and releases its native memory on the way out; a
// read blocked on stdin never returns, hence the cap.
const shutdownGrace = 5 * time.Second

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	// Diagnostics go to stderr; stdout carries payloads and reports.
	log := logger.NewCLILogger()
	log.SetOutput(os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Error: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		log.Println("Operation cancelled by signal. Exiting...")
		if !awaitShutdown(done, shutdownGrace) {
			log.Println("Command did not stop in time; native memory is left to the OS.")
		}
		os.Exit(130) // Standard exit code for SIGINT
	}

	if cli.OperationPerformed && cli.OperationPerformedSuccessfully {
		log.Println("mockzmq finished.")
	}
}

// awaitShutdown waits up to grace for the command to return and reports
// whether it did.
func awaitShutdown(done <-chan error, grace time.Duration) bool {
	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}
