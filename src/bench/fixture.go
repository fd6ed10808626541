// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"github.com/H0llyW00dzZ/mockzmq/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/mockzmq/src/internal/native"
	"github.com/H0llyW00dzZ/mockzmq/src/mockzmq"
)

// fixture is the state one goroutine needs to run a case. Nothing in it is
// shared with other goroutines except the pool, which is concurrency safe.
type fixture struct {
	ops  mockzmq.Ops
	size int
	pool gc.Pool

	heap  []byte          // Go-side buffer, holds the receive pattern after setup
	seg   *native.Segment // reused native segment of size bytes
	dst   *native.Segment // second native segment for native-to-native copies
	chunk *native.Segment // staging segment of at most chunkSize bytes
	arena *native.Arena

	scratch []byte // keeps heap allocations observable
	sink    int64  // accumulates results so calls cannot be elided
	err     error  // first allocation failure inside a timed loop
}

// newFixture allocates every buffer a case may touch.
func newFixture(ops mockzmq.Ops, size int, pool gc.Pool) (*fixture, error) {
	f := &fixture{
		ops:   ops,
		size:  size,
		pool:  pool,
		heap:  make([]byte, size),
		arena: native.NewArena(),
	}
	mockzmq.Receive(f.heap)

	var err error
	if f.seg, err = f.arena.Allocate(size); err != nil {
		f.arena.Close()
		return nil, err
	}
	if f.dst, err = f.arena.Allocate(size); err != nil {
		f.arena.Close()
		return nil, err
	}
	if f.chunk, err = f.arena.Allocate(min(size, chunkSize)); err != nil {
		f.arena.Close()
		return nil, err
	}
	return f, nil
}

// alloc allocates a per-call segment, recording the first failure.
func (f *fixture) alloc() (*native.Segment, bool) {
	seg, err := native.Alloc(f.size)
	if err != nil {
		f.fail(err)
		return nil, false
	}
	return seg, true
}

// free releases a per-call segment, recording the first failure.
func (f *fixture) free(seg *native.Segment) {
	if err := seg.Free(); err != nil {
		f.fail(err)
	}
}

// fail records err unless an earlier failure is already recorded.
func (f *fixture) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

// close releases the fixture's native memory.
func (f *fixture) close() error {
	return f.arena.Close()
}
