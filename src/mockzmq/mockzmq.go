// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mockzmq

// TransformMask is the fixed XOR mask applied by [Transform].
const TransformMask byte = 0xAA

// Send reads data and returns the sum of its bytes, each treated as an
// unsigned value, accumulated into an int64. An empty buffer yields 0.
//
// Send never modifies data.
func Send(data []byte) int64 {
	var checksum int64
	for _, b := range data {
		checksum += int64(b)
	}
	return checksum
}

// Receive overwrites every byte of buf with its position mod 256 and returns
// the number of bytes written, which is always len(buf).
//
// The previous contents of buf are never read.
func Receive(buf []byte) int64 {
	for i := range buf {
		buf[i] = byte(i)
	}
	return int64(len(buf))
}

// Transform XORs every byte of data with [TransformMask] in place.
//
// Transform is its own inverse: applying it twice restores the original
// contents.
func Transform(data []byte) {
	for i := range data {
		data[i] ^= TransformMask
	}
}
