// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable command-line output and JSONLogger for one-object-per-line
// structured logs. Both implementations are thread-safe; JSONLogger assembles
// each line in a pooled buffer to keep allocation low under concurrency.
package logger
