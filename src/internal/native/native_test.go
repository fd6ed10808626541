// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package native_test

import (
	"runtime"
	"sync"
	"testing"

	"github.com/H0llyW00dzZ/mockzmq/src/internal/native"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlloc(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{name: "zero", size: 0},
		{name: "small", size: 64},
		{name: "page", size: 4096},
		{name: "large", size: 1 << 20},
		{name: "negative", size: -1, wantErr: native.ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := native.Alloc(tt.size)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, seg)
				return
			}
			require.NoError(t, err)
			defer seg.Free()

			assert.Equal(t, tt.size, seg.Len())
			for i, b := range seg.Bytes() {
				if b != 0 {
					t.Fatalf("byte %d not zeroed: %d", i, b)
				}
			}
		})
	}
}

func TestSegment_MappedOnUnix(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("mmap path only on linux and darwin")
	}

	seg, err := native.Alloc(4096)
	require.NoError(t, err)
	defer seg.Free()

	assert.True(t, seg.Native())
}

func TestSegment_Copy(t *testing.T) {
	seg, err := native.Alloc(8)
	require.NoError(t, err)
	defer seg.Free()

	n := seg.CopyFrom([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	assert.Equal(t, 8, n, "copy is bounded by the segment size")

	out := make([]byte, 4)
	assert.Equal(t, 4, seg.CopyTo(out))
	assert.Equal(t, []byte{1, 2, 3, 4}, out)
}

func TestSegment_FreeTwice(t *testing.T) {
	seg, err := native.Alloc(128)
	require.NoError(t, err)

	require.NoError(t, seg.Free())
	assert.NoError(t, seg.Free())
	assert.Nil(t, seg.Bytes())
	assert.Zero(t, seg.Len())
}

func TestArena(t *testing.T) {
	arena := native.NewArena()

	a, err := arena.Allocate(64)
	require.NoError(t, err)
	b, err := arena.Allocate(1024)
	require.NoError(t, err)
	assert.Equal(t, 2, arena.Len())

	require.NoError(t, arena.Close())
	assert.Nil(t, a.Bytes())
	assert.Nil(t, b.Bytes())
	assert.Zero(t, arena.Len())

	_, err = arena.Allocate(16)
	assert.ErrorIs(t, err, native.ErrArenaClosed)
	assert.NoError(t, arena.Close(), "second close is a no-op")
}

func TestArena_Concurrent(t *testing.T) {
	arena := native.NewArena()
	defer arena.Close()

	const workers = 16
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			seg, err := arena.Allocate(256)
			if !assert.NoError(t, err) {
				return
			}
			for i := range seg.Bytes() {
				seg.Bytes()[i] = byte(w)
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers, arena.Len())
}

func BenchmarkAlloc(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		seg, err := native.Alloc(65536)
		if err != nil {
			b.Fatal(err)
		}
		seg.Free()
	}
}
