// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	WriteTo(w io.Writer) (int64, error)
	ReadFrom(r io.Reader) (int64, error)
	Bytes() []byte
	String() string
	Len() int
	Set(p []byte)
	SetString(s string)
	Reset()
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return p.p.Get() }

// Put returns a buffer to the pool. Buffers that did not come from a
// [bytebufferpool.Pool] are dropped.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.p.Put(buf)
	}
}

// New returns an independent pool. Pools calibrate their default buffer size
// from observed usage, so workloads with very different sizes (log lines and
// megabyte payloads) should not share one.
func New() Pool { return &pool{p: &bytebufferpool.Pool{}} }

// Default is the default buffer pool used for efficient memory reuse in I/O operations.
//
// Example usage for reading a payload before checksumming it:
//
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	if _, err := buf.ReadFrom(file); err != nil {
//		return 0, fmt.Errorf("error reading payload: %w", err)
//	}
//
//	return mockzmq.Send(buf.Bytes()), nil
//
// Example usage for staging a heap slice in a pooled buffer:
//
//	buf := gc.Default.Get()
//	buf.Set(payload) // copies payload into pooled storage
//	mockzmq.Transform(buf.Bytes())
//	copy(payload, buf.Bytes())
//	buf.Reset()
//	gc.Default.Put(buf)
var Default Pool = New()
