// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package native

import (
	"errors"
	"sync"
)

// Arena owns segments and frees them all on Close.
//
// Arena is safe for concurrent use by multiple goroutines.
type Arena struct {
	mu       sync.Mutex
	segments []*Segment
	closed   bool
}

// NewArena returns an empty, open arena.
func NewArena() *Arena { return &Arena{} }

// Allocate returns a new segment owned by the arena.
func (a *Arena) Allocate(size int) (*Segment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil, ErrArenaClosed
	}

	seg, err := Alloc(size)
	if err != nil {
		return nil, err
	}
	a.segments = append(a.segments, seg)
	return seg, nil
}

// Len returns the number of live segments owned by the arena.
func (a *Arena) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.segments)
}

// Close frees every segment. Closing an already closed arena is a no-op.
func (a *Arena) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	for _, seg := range a.segments {
		if err := seg.Free(); err != nil {
			errs = append(errs, err)
		}
	}
	a.segments = nil
	return errors.Join(errs...)
}
