package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	baseLogger = nil
	initBaseLoggerOnce = sync.Once{}
}

// initBuffered initializes the logger writing into a buffer and returns it.
func initBuffered(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	resetLogger()

	buf := new(bytes.Buffer)
	require.NoError(t, Init(level, WithOutput(buf)))
	return buf
}

// lines decodes every JSON log line written to buf.
func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestInit(t *testing.T) {
	t.Run("should initialize with valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			resetLogger()
			require.NoError(t, Init(level))
			assert.NotNil(t, baseLogger)
		}
	})

	t.Run("should fail with an invalid level", func(t *testing.T) {
		resetLogger()
		assert.Error(t, Init("loud"))
		assert.Nil(t, baseLogger)
	})

	t.Run("should only initialize once", func(t *testing.T) {
		resetLogger()
		require.NoError(t, Init("debug"))
		first := baseLogger

		require.NoError(t, Init("error"))
		assert.Equal(t, first, baseLogger)
	})
}

func TestLevels(t *testing.T) {
	t.Run("should drop entries below the configured level", func(t *testing.T) {
		buf := initBuffered(t, "warn")
		ctx := t.Context()

		Debug(ctx, "debug message")
		Info(ctx, "info message")
		Warn(ctx, "warn message", "wallet.identity", "alice")
		Error(ctx, "error message", "error", "boom")

		entries := lines(t, buf)
		require.Len(t, entries, 2)
		assert.Equal(t, "warn message", entries[0]["msg"])
		assert.Equal(t, "alice", entries[0]["wallet.identity"])
		assert.Equal(t, "error", entries[1]["level"])
	})
}

func TestDerive(t *testing.T) {
	t.Run("should attach fields to every later entry", func(t *testing.T) {
		buf := initBuffered(t, "debug")

		ctx := Derive(t.Context(), "transfer.id", "abc")
		ctx = Derive(ctx, "block.index", 3)
		Info(ctx, "transfer committed")

		entries := lines(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "abc", entries[0]["transfer.id"])
		assert.EqualValues(t, 3, entries[0]["block.index"])
	})

	t.Run("should store a sugared logger in the context", func(t *testing.T) {
		initBuffered(t, "debug")

		derivedCtx := Derive(t.Context())
		l, ok := derivedCtx.Value(ctxKey).(*zap.SugaredLogger)
		assert.True(t, ok)
		assert.NotNil(t, l)
	})

	t.Run("should stamp trace and span ids from a valid span context", func(t *testing.T) {
		buf := initBuffered(t, "debug")

		traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
		spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
		ctx := trace.ContextWithSpanContext(t.Context(), trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: traceID,
			SpanID:  spanID,
		}))

		Info(ctx, "with trace")

		entries := lines(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entries[0]["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", entries[0]["span_id"])
	})

	t.Run("should skip ids for an invalid span context", func(t *testing.T) {
		buf := initBuffered(t, "debug")

		ctx := trace.ContextWithSpanContext(t.Context(), trace.SpanContext{})
		Info(ctx, "without trace")

		entries := lines(t, buf)
		require.Len(t, entries, 1)
		assert.NotContains(t, entries[0], "trace_id")
	})
}

func TestUninitialized(t *testing.T) {
	t.Run("should not panic before Init", func(t *testing.T) {
		resetLogger()

		assert.NotPanics(t, func() {
			Info(t.Context(), "dropped", "key", "value")
			_ = Derive(t.Context(), "key", "value")
			_ = Sync()
		})
	})
}

func TestEdgeCases(t *testing.T) {
	initBuffered(t, "debug")

	t.Run("should tolerate odd key-value pairs", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Info(t.Context(), "test message", "key1", "value1", "key2")
		})
	})

	t.Run("should tolerate complex values", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Info(t.Context(), "test message", "complex", map[string]any{"array": []int{1, 2, 3}})
		})
	})
}

func TestFatal(t *testing.T) {
	t.Run("fatal exits with code 1", func(t *testing.T) {
		if os.Getenv("TEST_FATAL_SUBPROCESS") == "1" {
			_ = Init("debug")
			Fatal(context.Background(), "fatal error for test", "key", "value")
			return
		}

		cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
		cmd.Env = append(os.Environ(), "TEST_FATAL_SUBPROCESS=1")

		var stdout bytes.Buffer
		cmd.Stdout = &stdout

		err := cmd.Run()
		exitErr, ok := err.(*exec.ExitError)
		require.True(t, ok, "the subprocess should exit with a non-zero status")
		assert.Equal(t, 1, exitErr.ExitCode())
		assert.Contains(t, stdout.String(), `"level":"fatal"`)
	})
}
