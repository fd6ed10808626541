// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sync"
	"time"
)

// Options controls how each case is timed.
type Options struct {
	// Threads is the number of goroutines running the case at once, each with
	// its own fixture.
	Threads int
	// Warmup is the number of untimed iterations.
	Warmup int
	// Measurement is the number of timed iterations.
	Measurement int
	// IterationTime is the wall time of one iteration.
	IterationTime time.Duration
}

// DefaultOptions returns 3 warmup and 5 measurement iterations of one second
// on a single thread.
func DefaultOptions() Options {
	return Options{
		Threads:       1,
		Warmup:        3,
		Measurement:   5,
		IterationTime: time.Second,
	}
}

func (o Options) validate() error {
	switch {
	case o.Threads < 1:
		return errors.New("bench: threads must be at least 1")
	case o.Warmup < 0:
		return errors.New("bench: warmup iterations must not be negative")
	case o.Measurement < 1:
		return errors.New("bench: measurement iterations must be at least 1")
	case o.IterationTime <= 0:
		return errors.New("bench: iteration time must be positive")
	}
	return nil
}

// sample is the outcome of one timed iteration across all threads.
type sample struct {
	ops     int64
	elapsed time.Duration
	mallocs uint64
	bytes   uint64
}

// stats summarizes the measurement iterations of one case.
type stats struct {
	ops         int64
	nsPerOp     float64
	stdDevNs    float64
	allocsPerOp float64
	bytesPerOp  float64
	elapsed     time.Duration
}

// maxBatch caps how many operations run between clock reads.
const maxBatch = 1 << 16

// spin runs fn on f until d has elapsed, reading the clock only between
// batches. Batches start at one operation and double while they are short
// compared to d, so slow operations do not overshoot and fast ones are not
// dominated by clock reads.
func spin(ctx context.Context, f *fixture, fn func(*fixture), d time.Duration) (int64, time.Duration, error) {
	var ops int64
	batch := 1
	start := time.Now()
	deadline := start.Add(d)

	for {
		for range batch {
			fn(f)
		}
		ops += int64(batch)

		now := time.Now()
		if !now.Before(deadline) {
			return ops, now.Sub(start), nil
		}
		if err := ctx.Err(); err != nil {
			return ops, now.Sub(start), err
		}
		if batch < maxBatch && now.Sub(start) < d/64 {
			batch *= 2
		}
	}
}

// iterate runs one iteration on every fixture concurrently.
func iterate(ctx context.Context, fixtures []*fixture, fn func(*fixture), d time.Duration) (sample, error) {
	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		s    sample
		errs []error
	)
	for _, f := range fixtures {
		wg.Add(1)
		go func(f *fixture) {
			defer wg.Done()
			ops, elapsed, err := spin(ctx, f, fn, d)

			mu.Lock()
			defer mu.Unlock()
			s.ops += ops
			s.elapsed = max(s.elapsed, elapsed)
			if err != nil {
				errs = append(errs, err)
			}
		}(f)
	}
	wg.Wait()

	runtime.ReadMemStats(&after)
	s.mallocs = after.Mallocs - before.Mallocs
	s.bytes = after.TotalAlloc - before.TotalAlloc

	if len(errs) > 0 {
		return s, errs[0]
	}
	for _, f := range fixtures {
		if f.err != nil {
			return s, f.err
		}
	}
	return s, nil
}

// measure runs the warmup and measurement iterations of one case.
func measure(ctx context.Context, opts Options, fixtures []*fixture, fn func(*fixture)) (stats, error) {
	for range opts.Warmup {
		if _, err := iterate(ctx, fixtures, fn, opts.IterationTime); err != nil {
			return stats{}, err
		}
	}

	threads := float64(len(fixtures))
	perOp := make([]float64, 0, opts.Measurement)
	var st stats
	var mallocs, bytes uint64
	for range opts.Measurement {
		s, err := iterate(ctx, fixtures, fn, opts.IterationTime)
		if err != nil {
			return stats{}, err
		}
		// Latency per operation as seen by one thread.
		perOp = append(perOp, float64(s.elapsed.Nanoseconds())*threads/float64(s.ops))
		st.ops += s.ops
		st.elapsed += s.elapsed
		mallocs += s.mallocs
		bytes += s.bytes
	}

	st.nsPerOp, st.stdDevNs = meanStdDev(perOp)
	st.allocsPerOp = float64(mallocs) / float64(st.ops)
	st.bytesPerOp = float64(bytes) / float64(st.ops)
	return st, nil
}

// meanStdDev returns the mean and sample standard deviation of xs.
func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) == 0 {
		return 0, 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	if len(xs) == 1 {
		return mean, 0
	}

	var sq float64
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	return mean, math.Sqrt(sq / float64(len(xs)-1))
}
