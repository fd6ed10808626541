// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/mockzmq/src/internal/native"
	"github.com/H0llyW00dzZ/mockzmq/src/mockzmq"
)

var (
	// ErrUnknownScenario is returned for a scenario name or group that matches nothing.
	ErrUnknownScenario = errors.New("bench: unknown scenario")
	// ErrUnknownBackend is returned for a backend name that is not available in this build.
	ErrUnknownBackend = errors.New("bench: unknown backend")
	// ErrVerification is returned when a case produces wrong results before timing.
	ErrVerification = errors.New("bench: verification failed")
)

// Op groups scenarios by the stub operation (or baseline) they exercise.
type Op string

// Scenario groups. The names double as filters for [SelectScenarios].
const (
	OpSend      Op = "send"
	OpReceive   Op = "recv"
	OpTransform Op = "transform"
	OpBaseline  Op = "baseline"
	OpAlloc     Op = "alloc"
	OpCopy      Op = "copy"
	OpTransfer  Op = "transfer"
)

// chunkSize is the staging size of the chunked transfer scenario.
const chunkSize = 4096

// arenaSegments is how many segments alloc_ArenaMultiple splits a buffer into.
const arenaSegments = 10

// Scenario is one way of getting a buffer to the stub.
type Scenario struct {
	Name        string
	Op          Op
	Description string

	run    func(f *fixture)
	verify func(s Scenario, f *fixture) error
}

// catalogue lists every scenario in report order.
var catalogue = []Scenario{
	{
		Name: "send_Direct", Op: OpSend,
		Description: "send on the Go slice itself, no copy",
		run:         func(f *fixture) { f.sink += f.ops.Send(f.heap) },
		verify:      verifySend,
	},
	{
		Name: "send_HeapCopyToNative", Op: OpSend,
		Description: "copy into a reused native segment, then send",
		run: func(f *fixture) {
			f.seg.CopyFrom(f.heap)
			f.sink += f.ops.Send(f.seg.Bytes())
		},
		verify: verifySend,
	},
	{
		Name: "send_AllocateAndCopy", Op: OpSend,
		Description: "allocate a native segment per call, copy, send, free",
		run: func(f *fixture) {
			seg, ok := f.alloc()
			if !ok {
				return
			}
			seg.CopyFrom(f.heap)
			f.sink += f.ops.Send(seg.Bytes())
			f.free(seg)
		},
		verify: verifySend,
	},
	{
		Name: "send_PooledCopy", Op: OpSend,
		Description: "stage in a pooled heap buffer, then send",
		run: func(f *fixture) {
			buf := f.pool.Get()
			buf.Set(f.heap)
			f.sink += f.ops.Send(buf.Bytes())
			buf.Reset()
			f.pool.Put(buf)
		},
		verify: verifySend,
	},
	{
		Name: "recv_Direct", Op: OpReceive,
		Description: "receive straight into the Go slice",
		run:         func(f *fixture) { f.sink += f.ops.Receive(f.heap) },
		verify:      verifyReceive,
	},
	{
		Name: "recv_NativeCopyToHeap", Op: OpReceive,
		Description: "receive into a reused native segment, copy out",
		run: func(f *fixture) {
			f.sink += f.ops.Receive(f.seg.Bytes())
			f.seg.CopyTo(f.heap)
		},
		verify: verifyReceive,
	},
	{
		Name: "recv_AllocateAndCopy", Op: OpReceive,
		Description: "allocate a native segment per call, receive, copy out, free",
		run: func(f *fixture) {
			seg, ok := f.alloc()
			if !ok {
				return
			}
			f.sink += f.ops.Receive(seg.Bytes())
			seg.CopyTo(f.heap)
			f.free(seg)
		},
		verify: verifyReceive,
	},
	{
		Name: "transform_Direct", Op: OpTransform,
		Description: "transform the Go slice in place",
		run:         func(f *fixture) { f.ops.Transform(f.heap) },
		verify:      verifyTransform,
	},
	{
		Name: "transform_RoundTripCopy", Op: OpTransform,
		Description: "copy in, transform in a reused native segment, copy out",
		run: func(f *fixture) {
			f.seg.CopyFrom(f.heap)
			f.ops.Transform(f.seg.Bytes())
			f.seg.CopyTo(f.heap)
		},
		verify: verifyTransform,
	},
	{
		Name: "transform_AllocateAndRoundTrip", Op: OpTransform,
		Description: "allocate per call, copy in, transform, copy out, free",
		run: func(f *fixture) {
			seg, ok := f.alloc()
			if !ok {
				return
			}
			seg.CopyFrom(f.heap)
			f.ops.Transform(seg.Bytes())
			seg.CopyTo(f.heap)
			f.free(seg)
		},
		verify: verifyTransform,
	},
	{
		Name: "baseline_CopyOnly", Op: OpBaseline,
		Description: "copy into a reused native segment without calling the stub",
		run:         func(f *fixture) { f.seg.CopyFrom(f.heap) },
		verify: func(s Scenario, f *fixture) error {
			clear(f.seg.Bytes())
			s.run(f)
			if !bytes.Equal(f.seg.Bytes(), f.heap) {
				return fmt.Errorf("%w: %s: segment differs from source", ErrVerification, s.Name)
			}
			return nil
		},
	},
	{
		Name: "alloc_Native", Op: OpAlloc,
		Description: "allocate and free a native segment",
		run: func(f *fixture) {
			if seg, ok := f.alloc(); ok {
				f.free(seg)
			}
		},
		verify: verifyNoError,
	},
	{
		Name: "alloc_NativeWithInit", Op: OpAlloc,
		Description: "allocate a native segment, fill it with the receive pattern, free",
		run: func(f *fixture) {
			seg, ok := f.alloc()
			if !ok {
				return
			}
			f.sink += f.ops.Receive(seg.Bytes())
			f.free(seg)
		},
		verify: verifyNoError,
	},
	{
		Name: "alloc_Heap", Op: OpAlloc,
		Description: "allocate a Go slice of the same size",
		run:         func(f *fixture) { f.scratch = make([]byte, f.size) },
		verify:      verifyNoError,
	},
	{
		Name: "alloc_ArenaMultiple", Op: OpAlloc,
		Description: "allocate ten tenth-size segments from one arena, then close it",
		run: func(f *fixture) {
			arena := native.NewArena()
			for range arenaSegments {
				if _, err := arena.Allocate(f.size / arenaSegments); err != nil {
					f.fail(err)
					break
				}
			}
			if err := arena.Close(); err != nil {
				f.fail(err)
			}
		},
		verify: verifyNoError,
	},
	{
		Name: "copy_NativeToNative", Op: OpCopy,
		Description: "copy between two native segments",
		run:         func(f *fixture) { f.dst.CopyFrom(f.seg.Bytes()) },
		verify: func(s Scenario, f *fixture) error {
			mockzmq.Receive(f.seg.Bytes())
			clear(f.dst.Bytes())
			s.run(f)
			if !bytes.Equal(f.dst.Bytes(), f.seg.Bytes()) {
				return fmt.Errorf("%w: %s: destination differs from source", ErrVerification, s.Name)
			}
			return nil
		},
	},
	{
		Name: "copy_PartialHeapToNative", Op: OpCopy,
		Description: "copy the first half of the Go slice into a reused native segment",
		run:         func(f *fixture) { f.seg.CopyFrom(f.heap[:f.size/2]) },
		verify: func(s Scenario, f *fixture) error {
			mockzmq.Receive(f.heap)
			clear(f.seg.Bytes())
			s.run(f)

			half := f.size / 2
			if !bytes.Equal(f.seg.Bytes()[:half], f.heap[:half]) {
				return fmt.Errorf("%w: %s: copied half differs from source", ErrVerification, s.Name)
			}
			for i, b := range f.seg.Bytes()[half:] {
				if b != 0 {
					return fmt.Errorf("%w: %s: byte %d beyond the copied half is %d", ErrVerification, s.Name, half+i, b)
				}
			}
			return nil
		},
	},
	{
		Name: "transfer_Chunked", Op: OpTransfer,
		Description: "send the buffer in 4 KiB chunks through a native staging segment",
		run: func(f *fixture) {
			stage := f.chunk.Bytes()
			for off := 0; off < len(f.heap); off += len(stage) {
				n := copy(stage, f.heap[off:])
				f.sink += f.ops.Send(stage[:n])
			}
		},
		verify: verifySend,
	},
}

// Scenarios returns every scenario in report order.
func Scenarios() []Scenario {
	return append([]Scenario(nil), catalogue...)
}

// SelectScenarios returns the scenarios matching filters, in report order.
// A filter matches a scenario name exactly or an [Op] group ("send", "alloc").
// No filters selects everything.
func SelectScenarios(filters []string) ([]Scenario, error) {
	if len(filters) == 0 {
		return Scenarios(), nil
	}

	want := make(map[string]bool, len(filters))
	for _, name := range filters {
		want[name] = true
	}

	var out []Scenario
	matched := make(map[string]bool, len(filters))
	for _, s := range catalogue {
		switch {
		case want[s.Name]:
			matched[s.Name] = true
		case want[string(s.Op)]:
			matched[string(s.Op)] = true
		default:
			continue
		}
		out = append(out, s)
	}

	for _, name := range filters {
		if !matched[name] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
		}
	}
	return out, nil
}

// check runs s once on f and compares its effect with the reference
// implementation in [mockzmq].
func (s Scenario) check(f *fixture) error {
	if err := s.verify(s, f); err != nil {
		return err
	}
	return f.err
}

func verifySend(s Scenario, f *fixture) error {
	mockzmq.Receive(f.heap)
	want := mockzmq.Send(f.heap)

	f.sink = 0
	s.run(f)
	if f.sink != want {
		return fmt.Errorf("%w: %s: checksum %d, want %d", ErrVerification, s.Name, f.sink, want)
	}
	return nil
}

func verifyReceive(s Scenario, f *fixture) error {
	for i := range f.heap {
		f.heap[i] = 0xEE
	}

	f.sink = 0
	s.run(f)
	if f.sink != int64(f.size) {
		return fmt.Errorf("%w: %s: reported %d bytes written, want %d", ErrVerification, s.Name, f.sink, f.size)
	}
	for i, b := range f.heap {
		if b != byte(i) {
			return fmt.Errorf("%w: %s: byte %d is %d, want %d", ErrVerification, s.Name, i, b, byte(i))
		}
	}
	return nil
}

func verifyTransform(s Scenario, f *fixture) error {
	mockzmq.Receive(f.heap)
	orig := bytes.Clone(f.heap)

	s.run(f)
	for i, b := range f.heap {
		if b != orig[i]^mockzmq.TransformMask {
			return fmt.Errorf("%w: %s: byte %d is %#x, want %#x", ErrVerification, s.Name, i, b, orig[i]^mockzmq.TransformMask)
		}
	}

	s.run(f)
	if !bytes.Equal(f.heap, orig) {
		return fmt.Errorf("%w: %s: second transform did not restore the buffer", ErrVerification, s.Name)
	}
	return nil
}

func verifyNoError(s Scenario, f *fixture) error {
	s.run(f)
	return f.err
}
