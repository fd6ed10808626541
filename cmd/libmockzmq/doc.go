// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// libmockzmq builds the mock messaging stub as a C shared library.
//
// # Build
//
//	go build -buildmode=c-shared -o libmockzmq.so ./cmd/libmockzmq
//
// cgo writes libmockzmq.h next to the library. On macOS name the output
// libmockzmq.dylib, on Windows mockzmq.dll.
//
// # Exports
//
//	int64_t mock_send(const uint8_t* data, size_t len);
//	int64_t mock_recv(uint8_t* buf, size_t len);
//	void    mock_transform(uint8_t* data, size_t len);
//
// mock_send returns the sum of the len bytes at data, read as unsigned.
// mock_recv writes i mod 256 to buf[i] and returns len. mock_transform XORs
// every byte with 0xAA in place.
//
// A NULL pointer with a nonzero length, or a length that does not fit in a Go
// int, is rejected: mock_send and mock_recv return -1 and mock_transform
// returns without touching memory. A zero length is always accepted.
//
// The library keeps no state and never retains the caller's pointer, so it is
// safe to call from any number of threads on distinct buffers.
package main
