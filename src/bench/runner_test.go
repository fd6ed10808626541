// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/mockzmq/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quickOptions() Options {
	return Options{Threads: 1, Warmup: 0, Measurement: 2, IterationTime: time.Millisecond}
}

func TestNewRunner_InvalidOptions(t *testing.T) {
	_, err := NewRunner(Options{}, nil)
	assert.Error(t, err)
}

func TestRunner_Run(t *testing.T) {
	plan, err := NewPlan([]string{"send_Direct", "transfer_Chunked", "alloc_Heap"}, []string{BackendGo}, []int{0, 4096})
	require.NoError(t, err)

	var logs bytes.Buffer
	r, err := NewRunner(quickOptions(), logger.NewJSONLogger(&logs, false))
	require.NoError(t, err)

	report, err := r.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, report.Results, 6)

	first := report.Results[0]
	assert.Equal(t, "send_Direct", first.Scenario)
	assert.Equal(t, OpSend, first.Op)
	assert.Equal(t, BackendGo, first.Backend)
	assert.Equal(t, 0, first.Size)
	assert.Equal(t, 1, first.Threads)
	assert.Positive(t, first.Ops)
	assert.Zero(t, first.MBPerSec)

	second := report.Results[1]
	assert.Equal(t, 4096, second.Size)
	assert.Positive(t, second.MBPerSec)

	// Cases follow catalogue order, not filter order.
	got := make([]string, len(report.Results))
	for i, res := range report.Results {
		got[i] = fmt.Sprintf("%s/%d", res.Scenario, res.Size)
	}
	assert.Equal(t, []string{
		"send_Direct/0", "send_Direct/4096",
		"alloc_Heap/0", "alloc_Heap/4096",
		"transfer_Chunked/0", "transfer_Chunked/4096",
	}, got)

	heap := report.Results[3]
	assert.Equal(t, "alloc_Heap", heap.Scenario)
	assert.Equal(t, 4096, heap.Size)
	assert.Positive(t, heap.AllocsPerOp)

	chunked := report.Results[5]
	assert.Equal(t, "transfer_Chunked", chunked.Scenario)
	assert.Equal(t, OpTransfer, chunked.Op)

	assert.Equal(t, "1ms", report.Settings.IterationTime)
	assert.Contains(t, logs.String(), "[1/6] send_Direct/go/0")
	assert.Contains(t, logs.String(), "completed 6 cases")
}

func TestRunner_RunThreads(t *testing.T) {
	plan, err := NewPlan([]string{"recv_NativeCopyToHeap"}, []string{BackendGo}, []int{512})
	require.NoError(t, err)

	opts := quickOptions()
	opts.Threads = 4
	r, err := NewRunner(opts, nil)
	require.NoError(t, err)

	report, err := r.Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, 4, report.Results[0].Threads)
}

func TestRunner_RunCancelled(t *testing.T) {
	plan, err := NewPlan([]string{"send"}, nil, []int{64})
	require.NoError(t, err)

	r, err := NewRunner(quickOptions(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := r.Run(ctx, plan)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Empty(t, report.Results)
}

func TestCollectEnvironment(t *testing.T) {
	env := CollectEnvironment()
	assert.NotEmpty(t, env.GoVersion)
	assert.Positive(t, env.NumCPU)
	assert.True(t, strings.Contains(env.Library, "mockzmq"))
	assert.NotEmpty(t, env.Timestamp)
}
