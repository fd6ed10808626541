// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mockzmq

// SendN is [Send] with an explicit declared length.
// It returns [ErrInvalidBufferLength] if length != len(data).
func SendN(data []byte, length int) (int64, error) {
	if err := checkLength(length, len(data)); err != nil {
		return 0, err
	}
	return Send(data), nil
}

// ReceiveN is [Receive] with an explicit declared length.
// On a mismatch buf is left untouched and [ErrInvalidBufferLength] is returned.
func ReceiveN(buf []byte, length int) (int64, error) {
	if err := checkLength(length, len(buf)); err != nil {
		return 0, err
	}
	return Receive(buf), nil
}

// TransformN is [Transform] with an explicit declared length.
// On a mismatch data is left untouched and [ErrInvalidBufferLength] is returned.
func TransformN(data []byte, length int) error {
	if err := checkLength(length, len(data)); err != nil {
		return err
	}
	Transform(data)
	return nil
}
