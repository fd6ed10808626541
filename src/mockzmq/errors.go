// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mockzmq

import (
	"errors"
	"fmt"
)

// ErrInvalidBufferLength is returned when a declared buffer length does not
// match the storage actually provided.
var ErrInvalidBufferLength = errors.New("mockzmq: invalid buffer length")

// checkLength reports ErrInvalidBufferLength, annotated with both sizes, when
// length is negative or differs from have.
func checkLength(length, have int) error {
	if length < 0 || length != have {
		return fmt.Errorf("%w: declared %d, have %d", ErrInvalidBufferLength, length, have)
	}
	return nil
}
