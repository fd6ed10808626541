// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/H0llyW00dzZ/mockzmq/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/mockzmq/src/logger"
)

// Result is the measured outcome of one case.
type Result struct {
	Scenario    string  `json:"scenario" yaml:"scenario"`
	Op          Op      `json:"op" yaml:"op"`
	Backend     string  `json:"backend" yaml:"backend"`
	Size        int     `json:"size" yaml:"size"`
	Threads     int     `json:"threads" yaml:"threads"`
	Ops         int64   `json:"ops" yaml:"ops"`
	NsPerOp     float64 `json:"nsPerOp" yaml:"nsPerOp"`
	StdDevNs    float64 `json:"stdDevNs" yaml:"stdDevNs"`
	AllocsPerOp float64 `json:"allocsPerOp" yaml:"allocsPerOp"`
	BytesPerOp  float64 `json:"bytesPerOp" yaml:"bytesPerOp"`
	MBPerSec    float64 `json:"mbPerSec" yaml:"mbPerSec"`
}

// Runner executes plans.
type Runner struct {
	opts Options
	log  logger.Logger
	pool gc.Pool
}

// NewRunner returns a runner that times cases with opts and reports progress
// to log. A nil log discards progress.
func NewRunner(opts Options, log logger.Logger) (*Runner, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewJSONLogger(nil, true)
	}
	return &Runner{opts: opts, log: log, pool: gc.New()}, nil
}

// Run executes every pending case of plan in order and returns the report.
//
// Cancelling ctx stops the run between cases or at the next batch boundary
// inside an iteration; the partial report is returned alongside ctx's error.
// A verification failure stops the run with [ErrVerification].
func (r *Runner) Run(ctx context.Context, plan *Plan) (*Report, error) {
	report := &Report{
		Environment: CollectEnvironment(),
		Settings:    settingsOf(r.opts),
		Results:     make([]Result, 0, plan.Len()),
	}

	start := time.Now()
	done := 0
	for {
		c, ok := plan.Next()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		done++
		r.log.Printf("[%d/%d] %s", done, plan.Total(), c)

		res, err := r.runCase(ctx, c)
		if err != nil {
			return report, fmt.Errorf("case %s: %w", c, err)
		}
		report.Results = append(report.Results, res)
		r.log.Printf("[%d/%d] %s: %.1f ns/op ± %.1f, %.2f allocs/op", done, plan.Total(), c, res.NsPerOp, res.StdDevNs, res.AllocsPerOp)
	}

	r.log.Printf("completed %d cases in %s", done, time.Since(start).Round(time.Millisecond))
	return report, nil
}

// runCase verifies and then measures one case.
func (r *Runner) runCase(ctx context.Context, c Case) (Result, error) {
	fixtures := make([]*fixture, 0, r.opts.Threads)
	defer func() {
		for _, f := range fixtures {
			f.close()
		}
	}()

	for range r.opts.Threads {
		f, err := newFixture(c.Backend.Ops, c.Size, r.pool)
		if err != nil {
			return Result{}, err
		}
		fixtures = append(fixtures, f)
	}

	if err := c.Scenario.check(fixtures[0]); err != nil {
		return Result{}, err
	}

	st, err := measure(ctx, r.opts, fixtures, c.Scenario.run)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("measure: %w", err)
	}

	res := Result{
		Scenario:    c.Scenario.Name,
		Op:          c.Scenario.Op,
		Backend:     c.Backend.Name,
		Size:        c.Size,
		Threads:     r.opts.Threads,
		Ops:         st.ops,
		NsPerOp:     st.nsPerOp,
		StdDevNs:    st.stdDevNs,
		AllocsPerOp: st.allocsPerOp,
		BytesPerOp:  st.bytesPerOp,
	}
	if st.elapsed > 0 {
		res.MBPerSec = float64(st.ops) * float64(c.Size) / st.elapsed.Seconds() / 1e6
	}
	return res, nil
}
