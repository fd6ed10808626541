// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build cgo

package cshim

/*
#include <stdint.h>
#include <stddef.h>

static int64_t cshim_send(const uint8_t* data, size_t len) {
	int64_t checksum = 0;
	for (size_t i = 0; i < len; i++) {
		checksum += data[i];
	}
	return checksum;
}

static int64_t cshim_recv(uint8_t* buf, size_t len) {
	for (size_t i = 0; i < len; i++) {
		buf[i] = (uint8_t)(i & 0xFF);
	}
	return (int64_t)len;
}

static void cshim_transform(uint8_t* data, size_t len) {
	for (size_t i = 0; i < len; i++) {
		data[i] ^= 0xAA;
	}
}
*/
import "C"

import (
	"unsafe"

	"github.com/H0llyW00dzZ/mockzmq/src/mockzmq"
)

// Available reports whether the C backend is compiled in.
const Available = true

// first returns a C pointer to the first element of b, or nil for an empty slice.
func first(b []byte) *C.uint8_t {
	if len(b) == 0 {
		return nil
	}
	return (*C.uint8_t)(unsafe.Pointer(&b[0]))
}

// Send calls the C checksum loop on data.
func Send(data []byte) int64 {
	return int64(C.cshim_send(first(data), C.size_t(len(data))))
}

// Receive calls the C pattern fill loop on buf.
func Receive(buf []byte) int64 {
	return int64(C.cshim_recv(first(buf), C.size_t(len(buf))))
}

// Transform calls the C XOR loop on data.
func Transform(data []byte) {
	C.cshim_transform(first(data), C.size_t(len(data)))
}

// Ops is the [mockzmq.Ops] implementation backed by this package.
type Ops struct{}

var _ mockzmq.Ops = Ops{}

// Send calls [Send].
func (Ops) Send(data []byte) int64 { return Send(data) }

// Receive calls [Receive].
func (Ops) Receive(buf []byte) int64 { return Receive(buf) }

// Transform calls [Transform].
func (Ops) Transform(data []byte) { Transform(data) }
