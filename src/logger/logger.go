// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/H0llyW00dzZ/mockzmq/src/internal/helper/gc"
)

// Logger defines the interface for logging operations.
// It provides methods for formatted output and for redirecting it.
//
// Both the human-readable CLI logger and the structured JSON logger satisfy it,
// so commands and the benchmark runner never care which one is active.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// linePool holds the buffers JSON lines are assembled in. It is separate from
// [gc.Default] so small log lines do not skew the pool's size calibration for
// large payloads.
var linePool = gc.New()

// JSONLogger implements Logger with one JSON object per line:
//
//	{"level":"info","message":"..."}
//
// It can be silenced entirely, which keeps stdout clean when a command's
// real output (a report, a payload) is written there.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu      sync.Mutex
	writer  io.Writer
	silent  bool
	dropped atomic.Uint64
}

// NewJSONLogger creates a new structured logger writing to writer.
// A nil writer discards output.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs a structured message.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message.
// Output is suppressed if silent mode is enabled.
//
// Operands are joined with spaces like [fmt.Sprintln], without the trailing
// newline.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	msg := fmt.Sprintln(v...)
	j.write(msg[:len(msg)-1])
}

// write encodes msg as a JSON line in a pooled buffer and emits it in a single
// Write call so concurrent lines never interleave.
func (j *JSONLogger) write(msg string) {
	quoted, err := json.Marshal(msg)
	if err != nil {
		// Strings always marshal; keep the line well-formed regardless.
		quoted = []byte(`""`)
	}

	buf := linePool.Get()
	defer func() {
		buf.Reset()
		linePool.Put(buf)
	}()

	buf.WriteString(`{"level":"info","message":`)
	buf.Write(quoted)
	buf.WriteString("}\n")

	j.mu.Lock()
	_, err = j.writer.Write(buf.Bytes())
	j.mu.Unlock()

	// Logging never fails the caller; failed lines are only counted.
	if err != nil {
		j.dropped.Add(1)
	}
}

// Dropped returns how many lines were lost to write errors.
func (j *JSONLogger) Dropped() uint64 { return j.dropped.Load() }

// SetOutput sets the output destination for the JSON logger.
// A nil writer discards output.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
