// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestSend(t *testing.T) {
	data := []byte{1, 2, 3, 4, 0xFF}
	assert.Equal(t, int64(265), send(unsafe.Pointer(&data[0]), uint64(len(data))))
	assert.Equal(t, int64(3), send(unsafe.Pointer(&data[0]), 2))
	assert.Equal(t, int64(0), send(nil, 0))
}

func TestRecv(t *testing.T) {
	buf := make([]byte, 300)
	assert.Equal(t, int64(300), recv(unsafe.Pointer(&buf[0]), uint64(len(buf))))
	assert.Equal(t, byte(255), buf[255])
	assert.Equal(t, byte(43), buf[299])
	assert.Equal(t, int64(0), recv(nil, 0))
}

func TestTransform(t *testing.T) {
	data := []byte{0x00, 0xFF, 0xAA}
	transform(unsafe.Pointer(&data[0]), uint64(len(data)))
	assert.Equal(t, []byte{0xAA, 0x55, 0x00}, data)
	transform(unsafe.Pointer(&data[0]), uint64(len(data)))
	assert.Equal(t, []byte{0x00, 0xFF, 0xAA}, data)
}

func TestMisuse(t *testing.T) {
	data := []byte{1, 2, 3}
	p := unsafe.Pointer(&data[0])

	tests := []struct {
		name string
		p    unsafe.Pointer
		n    uint64
	}{
		{name: "null with length", p: nil, n: 8},
		{name: "length overflows int", p: p, n: math.MaxInt + 1},
		{name: "largest size_t", p: p, n: math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, rejected, send(tt.p, tt.n))
			assert.Equal(t, rejected, recv(tt.p, tt.n))

			transform(tt.p, tt.n)
			assert.Equal(t, []byte{1, 2, 3}, data)
		})
	}
}
