// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bench measures the overhead that surrounds the [mockzmq] stub when
// data has to move between Go memory and native memory.
//
// A case is one scenario run at one buffer size on one backend:
//
//   - Scenarios describe how the buffer reaches the stub. "Direct" scenarios
//     hand the Go slice straight to the stub (zero copy); the others stage the
//     bytes in a native segment first, allocate per call, or go through a
//     pooled buffer. Allocation, copy-only and chunked-transfer baselines put
//     the stub costs in context.
//   - Backends decide how the stub is called: "go" is a plain function call,
//     "cgo" crosses into C for every operation.
//
// Every case is verified once before it is timed, so a broken backend or
// scenario can never produce numbers. Timing follows a warmup/measurement
// iteration model: untimed warmup iterations, then measurement iterations of
// fixed wall time whose per-operation latencies are averaged.
//
// Cases are queued in a [Plan] and executed by a [Runner], which produces a
// [Report] that renders as a markdown table, JSON or YAML.
//
// [mockzmq]: https://pkg.go.dev/github.com/H0llyW00dzZ/mockzmq/src/mockzmq
package bench
