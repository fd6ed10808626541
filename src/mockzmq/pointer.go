// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mockzmq

import (
	"fmt"
	"unsafe"
)

// view turns a raw pointer and length into a slice over the same memory.
//
// A zero length is valid for any pointer, including nil. A negative length,
// or a nil pointer paired with a positive length, is rejected.
//
// The caller must guarantee that p addresses at least length bytes that stay
// valid for the duration of the call. That part of the contract cannot be
// checked here.
func view(p unsafe.Pointer, length int) ([]byte, error) {
	switch {
	case length < 0:
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidBufferLength, length)
	case length == 0:
		return nil, nil
	case p == nil:
		return nil, fmt.Errorf("%w: nil pointer with length %d", ErrInvalidBufferLength, length)
	}
	return unsafe.Slice((*byte)(p), length), nil
}

// SendPtr is [Send] over length bytes starting at p.
func SendPtr(p unsafe.Pointer, length int) (int64, error) {
	data, err := view(p, length)
	if err != nil {
		return 0, err
	}
	return Send(data), nil
}

// ReceivePtr is [Receive] over length bytes starting at p.
func ReceivePtr(p unsafe.Pointer, length int) (int64, error) {
	buf, err := view(p, length)
	if err != nil {
		return 0, err
	}
	return Receive(buf), nil
}

// TransformPtr is [Transform] over length bytes starting at p.
func TransformPtr(p unsafe.Pointer, length int) error {
	data, err := view(p, length)
	if err != nil {
		return err
	}
	Transform(data)
	return nil
}
