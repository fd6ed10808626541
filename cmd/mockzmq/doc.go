// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// mockzmq is a command-line front end for the mock messaging stub and its
// buffer transfer benchmark.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/mockzmq/cmd/mockzmq@latest
//
// Build with CGO_ENABLED=1 to get the cgo backend alongside the pure Go one.
//
// # Usage
//
//	mockzmq send [FILE]                       print the checksum of FILE or stdin
//	mockzmq recv --size N [-o OUTPUT_FILE]    write N pattern bytes
//	mockzmq transform [FILE] [-o OUTPUT_FILE] XOR every byte with 0xAA
//	mockzmq bench [FLAGS]                     run the benchmark harness
//
// # Bench Flags
//
//	-c, --config          JSON or YAML configuration (or MOCKZMQ_CONFIG_FILE)
//	    --sizes           Buffer sizes in bytes, comma separated
//	-s, --scenario        Scenario names or groups (send, recv, transform, ...)
//	-b, --backend         Backends (go, cgo)
//	-t, --threads         Goroutines per case
//	    --warmup          Untimed iterations
//	    --iterations      Timed iterations
//	    --iteration-time  Wall time per iteration (Go duration)
//	-f, --format          Report format: table, json or yaml
//	    --log-format      Progress log format: text or json
//	-o, --output          Destination file (default: stdout)
//
// # Examples
//
// Checksum a file:
//
//	mockzmq send payload.bin
//
// Round trip through the transform:
//
//	mockzmq transform payload.bin | mockzmq transform | cmp - payload.bin
//
// Compare send strategies at 1 MiB as JSON:
//
//	mockzmq bench -s send --sizes 1048576 -f json -o send.json
//
// An interrupted run exits with status 130.
package main
