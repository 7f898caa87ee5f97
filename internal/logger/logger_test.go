package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"listing-marketplace/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) {
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})
	logger.SetLogger(slog.New(handler))
}

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	newBufferLogger(&buf, slog.LevelInfo)

	logger.Info("test message",
		slog.String("key", "value"),
		slog.Int("count", 42),
	)

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key")
	assert.Contains(t, output, "value")
	assert.Contains(t, output, "42")
}

func TestLogger_WarnContext(t *testing.T) {
	var buf bytes.Buffer
	newBufferLogger(&buf, slog.LevelWarn)

	logger.InfoContext(context.Background(), "filtered out")
	logger.WarnContext(context.Background(), "store recovered", slog.String("key", "electro_listings_v3"))

	output := buf.String()
	assert.NotContains(t, output, "filtered out")
	assert.Contains(t, output, "store recovered")
	assert.Contains(t, output, "electro_listings_v3")
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	newBufferLogger(&buf, slog.LevelError)

	logger.Error("error occurred", slog.String("error", "test error"))

	output := buf.String()
	assert.Contains(t, output, "error occurred")
	assert.Contains(t, output, "test error")
}

func TestLogger_WithRequestID(t *testing.T) {
	var buf bytes.Buffer
	newBufferLogger(&buf, slog.LevelInfo)

	logger.WithRequestID("req-123").Info("processing request")

	output := buf.String()
	assert.Contains(t, output, "request_id")
	assert.Contains(t, output, "req-123")
}

func TestLogger_ContextRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger.SetLogger(slog.New(logger.NewHandler(slog.NewJSONHandler(&buf, nil))))

	ctx := logger.ContextWithRequestID(context.Background(), "req-789")
	logger.ErrorContext(ctx, "append failed")
	logger.Info("no context")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"request_id":"req-789"`)
	assert.NotContains(t, string(lines[1]), "request_id")
	assert.Equal(t, "req-789", logger.RequestIDFromContext(ctx))
	assert.Empty(t, logger.RequestIDFromContext(context.Background()))
}

func TestLogger_WithTaskID(t *testing.T) {
	var buf bytes.Buffer
	newBufferLogger(&buf, slog.LevelInfo)

	logger.WithTaskID("task-456").Info("enhancement finished")

	output := buf.String()
	assert.Contains(t, output, "task_id")
	assert.Contains(t, output, "task-456")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestInit_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	closer := logger.Init("debug", logger.FileOptions{Path: path, MaxSizeMB: 1})
	logger.Debug("to the file")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to the file")
	require.NotNil(t, logger.GetLogger())
}
