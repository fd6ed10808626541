// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bench

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleReport() *Report {
	return &Report{
		Environment: Environment{Version: "0.1.0", GoVersion: "go1.25.5", GOOS: "linux", GOARCH: "amd64", NumCPU: 8},
		Settings:    Settings{Threads: 1, Warmup: 3, Measurement: 5, IterationTime: "1s"},
		Results: []Result{
			{Scenario: "send_Direct", Op: OpSend, Backend: BackendGo, Size: 1048576, Threads: 1, Ops: 5000, NsPerOp: 31250.31, StdDevNs: 12.5, MBPerSec: 33554.4},
			{Scenario: "alloc_Heap", Op: OpAlloc, Backend: BackendGo, Size: 64, Threads: 1, Ops: 90000, NsPerOp: 18.4, AllocsPerOp: 1, BytesPerOp: 64},
		},
	}
}

func TestReport_WriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteTable(&buf))

	out := buf.String()
	assert.Contains(t, out, "mockzmq 0.1.0, go1.25.5 linux/amd64, 8 CPUs")
	assert.Contains(t, out, "1 thread(s), 3 warmup + 5 measurement iterations of 1s")
	assert.Contains(t, out, "send_Direct")
	assert.Contains(t, out, "1,048,576")
	assert.Contains(t, out, "31,250.3")
	assert.Contains(t, out, "alloc_Heap")
	assert.Contains(t, out, "|")
}

func TestReport_WriteTableEmpty(t *testing.T) {
	r := sampleReport()
	r.Results = nil

	var buf bytes.Buffer
	require.NoError(t, r.WriteTable(&buf))
	assert.Contains(t, buf.String(), "No results")
}

func TestReport_WriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteJSON(&buf))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sampleReport(), got)
	assert.Contains(t, buf.String(), `"nsPerOp": 31250.31`)
}

func TestReport_WriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleReport().WriteYAML(&buf))

	var got Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *sampleReport(), got)
	assert.Contains(t, buf.String(), "scenario: send_Direct")
}
