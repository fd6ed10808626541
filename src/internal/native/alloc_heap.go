// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !linux && !darwin

package native

// allocRegion falls back to the Go heap on platforms without the mmap path.
func allocRegion(size int) ([]byte, bool, error) {
	return make([]byte, size), false, nil
}

// freeRegion is a no-op; heap regions are reclaimed by the garbage collector.
func freeRegion([]byte) error { return nil }
