// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build cgo

package main

/*
#include <stddef.h>
#include <stdint.h>
*/
import "C"

import "unsafe"

//export mock_send
func mock_send(data *C.uint8_t, n C.size_t) C.int64_t {
	return C.int64_t(send(unsafe.Pointer(data), uint64(n)))
}

//export mock_recv
func mock_recv(buf *C.uint8_t, n C.size_t) C.int64_t {
	return C.int64_t(recv(unsafe.Pointer(buf), uint64(n)))
}

//export mock_transform
func mock_transform(data *C.uint8_t, n C.size_t) {
	transform(unsafe.Pointer(data), uint64(n))
}
