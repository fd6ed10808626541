// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the mock messaging stub.
// It implements a Cobra-based CLI with one subcommand per stub operation
// (send, recv, transform) and a bench subcommand that runs the scenario
// harness and prints its report as a markdown table, JSON or YAML.
//
// The package handles file I/O, context cancellation and configuration, and
// integrates with the logger package for progress and error reporting.
package cli
