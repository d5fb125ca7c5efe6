package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates text logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelInfo, Format: LogFormatText, Output: &buf})
		require.NotNil(t, logger)

		logger.Info("test message", "key", "value")
		output := buf.String()

		assert.Contains(t, output, "test message")
		assert.Contains(t, output, "key=value")
		assert.Contains(t, output, "service=tasker")
	})

	t.Run("creates JSON logger", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelInfo, Format: LogFormatJSON, Output: &buf, ServiceVersion: "1.2.3"})

		logger.Info("test message", "key", "value")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "test message", entry["msg"])
		assert.Equal(t, "value", entry["key"])
		assert.Equal(t, "tasker", entry["service"])
		assert.Equal(t, "1.2.3", entry["version"])
	})

	t.Run("respects log level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelWarn, Output: &buf})

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("adds correlation data from context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelDebug, Format: LogFormatJSON, Output: &buf})

		ctx := WithCommand(WithCorrelationID(context.Background(), "corr-1"), "tasker add")
		logger.DebugContext(ctx, "working")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "corr-1", entry[CorrelationIDKey])
		assert.Equal(t, "tasker add", entry[CommandKey])
	})

	t.Run("keeps default attributes on derived loggers", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelInfo, Output: &buf}).With("component", "store").WithGroup("g")

		logger.Info("derived", "k", "v")

		assert.Contains(t, buf.String(), "component=store")
		assert.Contains(t, buf.String(), "service=tasker")
	})
}

func TestParseLevel(t *testing.T) {
	tests := map[LogLevel]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelWarn,
		"":        slog.LevelWarn,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestDefaultLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()
	assert.Equal(t, LogLevelWarn, cfg.Level)
	assert.Equal(t, LogFormatText, cfg.Format)
	assert.NotNil(t, cfg.Output)
}

func TestCorrelationContext(t *testing.T) {
	t.Run("generates id when empty", func(t *testing.T) {
		ctx := WithCorrelationID(context.Background(), "")
		assert.Len(t, CorrelationIDFromContext(ctx), 36)
	})

	t.Run("missing values are empty", func(t *testing.T) {
		assert.Empty(t, CorrelationIDFromContext(context.Background()))
		assert.Empty(t, CommandFromContext(context.Background()))
	})

	t.Run("new command context", func(t *testing.T) {
		ctx := NewCommandContext(context.Background(), "tasker list")
		assert.NotEmpty(t, CorrelationIDFromContext(ctx))
		assert.Equal(t, "tasker list", CommandFromContext(ctx))
	})
}

func TestTimer(t *testing.T) {
	t.Run("logs completion at debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelDebug, Output: &buf})

		d := StartTimer("save").WithLogger(logger).Stop(context.Background(), nil)

		assert.GreaterOrEqual(t, int64(d), int64(0))
		assert.Contains(t, buf.String(), "operation completed")
		assert.Contains(t, buf.String(), "operation=save")
	})

	t.Run("logs failure at warn", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(LogConfig{Level: LogLevelWarn, Output: &buf})

		StartTimer("save").WithLogger(logger).Stop(context.Background(), errors.New("boom"))

		assert.Contains(t, buf.String(), "operation failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("without logger only measures", func(t *testing.T) {
		timer := StartTimer("noop")
		assert.GreaterOrEqual(t, int64(timer.Stop(context.Background(), nil)), int64(0))
		assert.GreaterOrEqual(t, int64(timer.Elapsed()), int64(0))
	})
}
