// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cshim implements the stub operations in C and calls them through cgo.
//
// The loops are the same as in [mockzmq]; only the calling convention differs.
// Comparing this backend with [mockzmq.Direct] isolates the cost of crossing
// the Go/C boundary. Slices are passed as a pointer to their first element
// plus a length, without copying.
//
// When cgo is disabled the package still builds: [Available] is false and the
// functions fall back to the pure Go implementation.
//
// [mockzmq]: https://pkg.go.dev/github.com/H0llyW00dzZ/mockzmq/src/mockzmq
package cshim
