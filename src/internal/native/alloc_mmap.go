// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build linux || darwin

package native

import "golang.org/x/sys/unix"

// allocRegion maps size bytes of anonymous private memory. If the mapping
// fails the region comes from the Go heap instead.
func allocRegion(size int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return make([]byte, size), false, nil
	}
	return data, true, nil
}

// freeRegion unmaps a region returned by allocRegion.
func freeRegion(data []byte) error {
	return unix.Munmap(data)
}
