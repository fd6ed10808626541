// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultSizes, cfg.Bench.Sizes)
	assert.Equal(t, DefaultThreads, cfg.Bench.Threads)
	assert.Equal(t, DefaultWarmupIterations, cfg.Bench.WarmupIterations)
	assert.Equal(t, DefaultMeasurementIterations, cfg.Bench.MeasurementIterations)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "text", cfg.Output.Log)

	d, err := cfg.IterationDuration()
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}

func TestLoad_Formats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "JSON",
			file: "bench.json",
			content: `{
  "bench": {"sizes": [16, 32], "backends": ["go"], "threads": 2, "iterationTime": "50ms"},
  "output": {"format": "json"}
}`,
		},
		{
			name: "YAML",
			file: "bench.yaml",
			content: `bench:
  sizes: [16, 32]
  backends: [go]
  threads: 2
  iterationTime: 50ms
output:
  format: json
`,
		},
		{
			name: "YML uppercase extension",
			file: "bench.YML",
			content: `bench:
  sizes: [16, 32]
  backends: [go]
  threads: 2
  iterationTime: 50ms
output:
  format: json
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, []int{16, 32}, cfg.Bench.Sizes)
			assert.Equal(t, []string{"go"}, cfg.Bench.Backends)
			assert.Equal(t, 2, cfg.Bench.Threads)
			assert.Equal(t, "50ms", cfg.Bench.IterationTime)
			assert.Equal(t, "json", cfg.Output.Format)
			// Untouched fields keep their defaults.
			assert.Equal(t, DefaultWarmupIterations, cfg.Bench.WarmupIterations)
			assert.Equal(t, "text", cfg.Output.Log)
		})
	}
}

func TestLoad_EnvironmentVariable(t *testing.T) {
	path := writeConfig(t, "env.yaml", "bench:\n  sizes: [8]\n")
	t.Setenv(EnvConfigFile, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []int{8}, cfg.Bench.Sizes)
}

func TestLoad_Fallbacks(t *testing.T) {
	path := writeConfig(t, "zero.json", `{"bench": {"sizes": [], "threads": 0, "warmupIterations": -1, "measurementIterations": 0, "iterationTime": ""}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultSizes, cfg.Bench.Sizes)
	assert.Equal(t, DefaultThreads, cfg.Bench.Threads)
	assert.Equal(t, DefaultWarmupIterations, cfg.Bench.WarmupIterations)
	assert.Equal(t, DefaultMeasurementIterations, cfg.Bench.MeasurementIterations)
	assert.Equal(t, DefaultIterationTime, cfg.Bench.IterationTime)
}

func TestLoad_ZeroWarmupIsKept(t *testing.T) {
	cfg, err := Load(writeConfig(t, "nowarm.yaml", "bench:\n  warmupIterations: 0\n"))
	require.NoError(t, err)
	assert.Zero(t, cfg.Bench.WarmupIterations)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{name: "negative size", file: "c.json", content: `{"bench": {"sizes": [64, -1]}}`},
		{name: "unknown backend", file: "c.yaml", content: "bench:\n  backends: [jni]\n"},
		{name: "unknown format", file: "c.yaml", content: "output:\n  format: csv\n"},
		{name: "unknown log format", file: "c.yaml", content: "output:\n  log: xml\n"},
		{name: "bad duration", file: "c.yaml", content: "bench:\n  iterationTime: soon\n"},
		{name: "negative duration", file: "c.yaml", content: "bench:\n  iterationTime: -1s\n"},
		{name: "too many threads", file: "c.json", content: `{"bench": {"threads": 5000}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.file, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_Unreadable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "bad.json", `{"bench": `))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON config file")

	_, err = Load(writeConfig(t, "bad.yaml", "bench: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML config file")
}

func TestDetectConfigFormat(t *testing.T) {
	assert.Equal(t, configFormatYAML, detectConfigFormat("a.yaml"))
	assert.Equal(t, configFormatYAML, detectConfigFormat("a.YML"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("a.json"))
	assert.Equal(t, configFormatJSON, detectConfigFormat("noext"))
}

func TestValidate_AfterOverrides(t *testing.T) {
	cfg := Default()
	cfg.Bench.Backends = []string{"go", "cgo"}
	require.NoError(t, Validate(cfg))

	cfg.Output.Format = "xml"
	assert.ErrorIs(t, Validate(cfg), ErrInvalidConfig)
}
