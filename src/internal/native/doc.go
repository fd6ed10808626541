// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package native provides byte regions that live outside the Go heap.
//
// A [Segment] is backed by an anonymous private memory mapping on Linux and
// macOS and by an ordinary heap slice elsewhere. An [Arena] owns a set of
// segments and releases them together, mirroring the confined and shared
// arenas that managed runtimes use for foreign memory.
//
// Segments are the "native side" of the interop harness: data staged in a
// segment has to be copied in from, or out to, a Go slice, which is exactly
// the overhead the harness measures.
package native
