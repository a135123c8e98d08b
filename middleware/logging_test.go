package middleware_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploads/core/handler"
	"github.com/dmitrymomot/uploads/core/response"
	"github.com/dmitrymomot/uploads/core/router"
	"github.com/dmitrymomot/uploads/middleware"
)

// testLogHandler captures log entries for testing
type testLogHandler struct {
	mu      sync.Mutex
	entries []map[string]any
}

func (h *testLogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *testLogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	r.Attrs(func(a slog.Attr) bool {
		entry[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()
	return nil
}

func (h *testLogHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *testLogHandler) WithGroup(string) slog.Handler      { return h }

func (h *testLogHandler) completed(t *testing.T) map[string]any {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, e := range h.entries {
		if e["msg"] == "HTTP request completed" {
			return e
		}
	}
	require.FailNow(t, "no completion entry logged")
	return nil
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	logHandler := &testLogHandler{}
	r := router.New[*router.Context](router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]))
	r.Use(
		middleware.RequestID[*router.Context](),
		middleware.LoggingWithLogger[*router.Context](slog.New(logHandler)),
	)
	r.Get("/ok", func(ctx *router.Context) handler.Response {
		return response.String("hello")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok?x=1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	entry := logHandler.completed(t)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, int64(http.StatusOK), entry["status_code"])
	assert.Equal(t, int64(5), entry["bytes_out"])
	assert.Equal(t, "/ok", entry["path"])
	assert.Equal(t, w.Header().Get("X-Request-ID"), entry["request_id"])
	assert.NotContains(t, entry, "error")
}

func TestLoggingDefaultConfigPassesResponseThrough(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.Logging[*router.Context]())
	r.Get("/ok", func(ctx *router.Context) handler.Response {
		return response.StringWithStatus("created", http.StatusCreated)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "created", w.Body.String())
}

func TestLoggingMiddlewareErrorStatus(t *testing.T) {
	t.Parallel()

	logHandler := &testLogHandler{}
	r := router.New[*router.Context](router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]))
	r.Use(middleware.LoggingWithLogger[*router.Context](slog.New(logHandler)))
	r.Post("/user", func(ctx *router.Context) handler.Response {
		return response.Error(response.ErrBadRequest.WithMessage("missing extension"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/user", nil))
	require.Equal(t, http.StatusBadRequest, w.Code)

	entry := logHandler.completed(t)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, int64(http.StatusBadRequest), entry["status_code"])
	assert.Contains(t, entry, "error")
}

func TestLoggingMiddlewareSkip(t *testing.T) {
	t.Parallel()

	logHandler := &testLogHandler{}
	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
		Logger: slog.New(logHandler),
		Skip:   func(ctx handler.Context) bool { return true },
	}))
	r.Get("/skip", func(ctx *router.Context) handler.Response { return response.OK() })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/skip", nil))

	assert.Empty(t, logHandler.entries)
}

func TestLoggingMiddlewareRedactsHeaders(t *testing.T) {
	t.Parallel()

	logHandler := &testLogHandler{}
	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
		Logger:     slog.New(logHandler),
		LogHeaders: true,
	}))
	r.Get("/h", func(ctx *router.Context) handler.Response { return response.OK() })

	req := httptest.NewRequest(http.MethodGet, "/h", nil)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("Accept", "text/plain")
	r.ServeHTTP(httptest.NewRecorder(), req)

	logHandler.mu.Lock()
	defer logHandler.mu.Unlock()
	require.NotEmpty(t, logHandler.entries)
	headers, ok := logHandler.entries[0]["request_headers"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "[REDACTED]", headers["Authorization"])
	assert.Equal(t, "text/plain", headers["Accept"])
}
