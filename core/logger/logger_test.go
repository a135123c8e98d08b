package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploads/core/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m))
	return m
}

func TestNewProductionJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithProduction("uploads"), logger.WithOutput(&buf))

	log.Debug("hidden")
	assert.Zero(t, buf.Len())

	log.Info("stored", logger.Component("upload"), logger.Error(nil), logger.Filename("storage_name", "a.png"))

	entry := decode(t, &buf)
	assert.Equal(t, "stored", entry["msg"])
	assert.Equal(t, "uploads", entry["service"])
	assert.Equal(t, "upload", entry["component"])
	assert.Equal(t, "a.png", entry["storage_name"])
	assert.NotContains(t, entry, "error")
}

func TestNewDevelopmentText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithDevelopment("uploads"), logger.WithOutput(&buf))

	log.Debug("visible", logger.Error(errors.New("boom")))

	out := buf.String()
	assert.Contains(t, out, "msg=visible")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "service=uploads")
}

func TestWithContextValue(t *testing.T) {
	t.Parallel()

	type requestIDKey struct{}

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithContextValue("request_id", requestIDKey{}),
	).With(logger.Component("test"))

	ctx := context.WithValue(context.Background(), requestIDKey{}, "req-1")
	log.InfoContext(ctx, "hello")

	entry := decode(t, &buf)
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "test", entry["component"])

	buf.Reset()
	log.InfoContext(context.Background(), "no id")
	assert.NotContains(t, decode(t, &buf), "request_id")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, logger.ParseLevel(in), in)
	}
}

func TestAttrHelpers(t *testing.T) {
	t.Parallel()

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
	assert.True(t, logger.Query("").Equal(slog.Attr{}))
	assert.True(t, logger.Key("k", nil).Equal(slog.Attr{}))
	assert.Equal(t, "status_code", logger.StatusCode(200).Key)
	assert.Equal(t, int64(10), logger.BytesIn(10).Value.Int64())
	assert.Equal(t, "remote_addr", logger.RemoteAddr("127.0.0.1:1").Key)

	g := logger.Group("req", logger.Method("GET"), logger.Path("/"))
	assert.Len(t, g.Value.Group(), 2)
}

func TestWithTextFormatterAndAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithProduction("uploads"),
		logger.WithTextFormatter(),
		logger.WithAttr(slog.String("env", "staging")),
		logger.WithOutput(&buf),
	)

	log.Info("started")

	out := buf.String()
	assert.Contains(t, out, "msg=started")
	assert.Contains(t, out, "env=staging")
	assert.Contains(t, out, "service=uploads")
	assert.NotContains(t, out, "{")
}
