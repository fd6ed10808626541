// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mockzmq provides a stateless byte buffer stub that mimics the
// send, receive and transform operations of a messaging socket.
//
// It exists to exercise a foreign-function boundary (for example a managed
// runtime calling native code) without any protocol, state or real I/O:
//
//   - [Send] sums every byte of a buffer into a 64-bit checksum.
//   - [Receive] fills a buffer with the pattern position mod 256.
//   - [Transform] XORs every byte with [TransformMask] in place.
//
// Each operation is a single bounded loop over a caller-owned buffer. Nothing
// is allocated, stored or retained past the call.
//
// # Declared lengths
//
// The native contract passes a pointer and a length. The N and Ptr variants
// ([SendN], [SendPtr], and friends) keep that shape and reject a declared
// length that does not match the backing storage with [ErrInvalidBufferLength]
// instead of trusting it. Zero-length buffers are always valid.
//
// # Concurrency
//
// All functions are safe to call concurrently on distinct buffers. Calls that
// touch the same buffer at the same time race exactly as the caller's own
// memory accesses would; the package takes no locks and gives no atomicity
// across bytes. Coordinating shared buffers is the caller's responsibility.
package mockzmq
