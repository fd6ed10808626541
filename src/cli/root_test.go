// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/mockzmq/src/bench"
	"github.com/H0llyW00dzZ/mockzmq/src/cli"
	"github.com/H0llyW00dzZ/mockzmq/src/internal/native"
	"github.com/H0llyW00dzZ/mockzmq/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

// run executes the command tree with args and stdin, returning stdout and stderr.
func run(t *testing.T, stdin []byte, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(version, logger.NewCLILogger())
	cmd.SetArgs(args)
	cmd.SetIn(bytes.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, nil, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestSend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.bin")
	require.NoError(t, os.WriteFile(path, []byte{0xFF, 0xFF, 0x01}, 0644))

	tests := []struct {
		name  string
		stdin []byte
		args  []string
		want  string
	}{
		{name: "stdin", stdin: []byte{1, 2, 3, 4}, args: []string{"send"}, want: "10\n"},
		{name: "dash means stdin", stdin: []byte{7}, args: []string{"send", "-"}, want: "7\n"},
		{name: "empty stdin", args: []string{"send"}, want: "0\n"},
		{name: "file", args: []string{"send", path}, want: "511\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSend_Errors(t *testing.T) {
	_, _, err := run(t, nil, "send", filepath.Join(t.TempDir(), "missing.bin"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = run(t, nil, "send", "--backend", "jni")
	assert.ErrorIs(t, err, bench.ErrUnknownBackend)

	_, _, err = run(t, nil, "send", "a", "b")
	assert.Error(t, err)
}

func TestRecv(t *testing.T) {
	out, _, err := run(t, nil, "recv", "--size", "300")
	require.NoError(t, err)
	require.Len(t, out, 300)
	assert.Equal(t, byte(0), out[0])
	assert.Equal(t, byte(255), out[255])
	assert.Equal(t, byte(0), out[256])
	assert.Equal(t, byte(43), out[299])

	path := filepath.Join(t.TempDir(), "recv.bin")
	out, _, err = run(t, nil, "recv", "-n", "4", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3}, data)

	out, _, err = run(t, nil, "recv", "--size", "0")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRecv_Errors(t *testing.T) {
	_, _, err := run(t, nil, "recv", "--size", "-1")
	assert.ErrorIs(t, err, native.ErrInvalidSize)

	_, _, err = run(t, nil, "recv")
	assert.Error(t, err)
}

func TestTransform_RoundTrip(t *testing.T) {
	in := []byte{0x00, 0xFF, 0xAA, 'h', 'i'}

	once, _, err := run(t, in, "transform")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0x55, 0x00, 'h' ^ 0xAA, 'i' ^ 0xAA}, []byte(once))

	dir := t.TempDir()
	src := filepath.Join(dir, "once.bin")
	dst := filepath.Join(dir, "twice.bin")
	require.NoError(t, os.WriteFile(src, []byte(once), 0644))

	_, _, err = run(t, nil, "transform", src, "-o", dst)
	require.NoError(t, err)

	twice, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, in, twice)
}

func TestOperationFlags(t *testing.T) {
	cli.OperationPerformed = false
	cli.OperationPerformedSuccessfully = false

	_, _, err := run(t, []byte{1}, "send")
	require.NoError(t, err)
	assert.True(t, cli.OperationPerformed)
	assert.True(t, cli.OperationPerformedSuccessfully)
}
