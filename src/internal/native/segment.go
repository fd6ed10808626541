// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package native

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrInvalidSize is returned when a negative allocation size is requested.
	ErrInvalidSize = errors.New("native: invalid segment size")
	// ErrArenaClosed is returned when allocating from an arena that was closed.
	ErrArenaClosed = errors.New("native: arena closed")
)

// Segment is a fixed-size byte region.
//
// The bytes returned by [Segment.Bytes] are only valid until [Segment.Free].
// A Segment is not safe for concurrent Free; concurrent reads and writes of
// distinct bytes follow ordinary Go memory rules.
type Segment struct {
	mu     sync.Mutex
	data   []byte
	mapped bool
	freed  bool
}

// Alloc returns a zeroed segment of size bytes.
//
// A size of 0 yields an empty segment that owns no memory.
func Alloc(size int) (*Segment, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if size == 0 {
		return &Segment{}, nil
	}

	data, mapped, err := allocRegion(size)
	if err != nil {
		return nil, fmt.Errorf("native: allocate %d bytes: %w", size, err)
	}
	return &Segment{data: data, mapped: mapped}, nil
}

// Bytes returns the segment's memory, or nil after Free.
func (s *Segment) Bytes() []byte { return s.data }

// Len returns the segment size in bytes.
func (s *Segment) Len() int { return len(s.data) }

// Native reports whether the segment is backed by memory outside the Go heap.
func (s *Segment) Native() bool { return s.mapped }

// CopyFrom copies src into the start of the segment and returns the number of
// bytes copied.
func (s *Segment) CopyFrom(src []byte) int { return copy(s.data, src) }

// CopyTo copies the start of the segment into dst and returns the number of
// bytes copied.
func (s *Segment) CopyTo(dst []byte) int { return copy(dst, s.data) }

// Free releases the segment's memory. It is safe to call more than once.
func (s *Segment) Free() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.freed {
		return nil
	}
	s.freed = true

	data, mapped := s.data, s.mapped
	s.data = nil
	if mapped {
		if err := freeRegion(data); err != nil {
			return fmt.Errorf("native: release %d bytes: %w", len(data), err)
		}
	}
	return nil
}
