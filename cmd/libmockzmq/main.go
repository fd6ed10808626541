// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"math"
	"unsafe"

	"github.com/H0llyW00dzZ/mockzmq/src/mockzmq"
)

// rejected is what send and recv return to C on misuse.
const rejected int64 = -1

// length converts a C size to an int, reporting whether it fits.
func length(n uint64) (int, bool) {
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func send(p unsafe.Pointer, n uint64) int64 {
	l, ok := length(n)
	if !ok {
		return rejected
	}
	sum, err := mockzmq.SendPtr(p, l)
	if err != nil {
		return rejected
	}
	return sum
}

func recv(p unsafe.Pointer, n uint64) int64 {
	l, ok := length(n)
	if !ok {
		return rejected
	}
	written, err := mockzmq.ReceivePtr(p, l)
	if err != nil {
		return rejected
	}
	return written
}

func transform(p unsafe.Pointer, n uint64) {
	if l, ok := length(n); ok {
		_ = mockzmq.TransformPtr(p, l)
	}
}

// Required by -buildmode=c-shared.
func main() {}
