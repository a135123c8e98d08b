package response_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploads/core/response"
)

func TestString(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	require.NoError(t, response.String("READY")(w, req))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "READY", w.Body.String())
}

func TestOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()

	require.NoError(t, response.OK()(w, req))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHandler(t *testing.T) {
	t.Parallel()

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()

	require.NoError(t, response.Handler(h)(w, req))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestJSONWithStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		value          any
		status         int
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "explicit status",
			value:          map[string]string{"status": "success"},
			status:         http.StatusCreated,
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"status":"success"}` + "\n",
		},
		{
			name:           "zero status with value",
			value:          map[string]int{"n": 1},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"n":1}` + "\n",
		},
		{
			name:           "zero status with nil",
			value:          nil,
			expectedStatus: http.StatusNoContent,
			expectedBody:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()

			require.NoError(t, response.JSONWithStatus(tt.value, tt.status)(w, req))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestWithHeaders(t *testing.T) {
	t.Parallel()

	resp := response.WithHeaders(response.OK(), map[string]string{"Location": "/image/a.png"})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	w := httptest.NewRecorder()
	require.NoError(t, resp(w, req))

	assert.Equal(t, "/image/a.png", w.Header().Get("Location"))
	assert.Nil(t, response.WithHeaders(nil, map[string]string{"A": "b"}))
}

func TestContent(t *testing.T) {
	t.Parallel()

	body := strings.NewReader("0123456789")
	resp := response.Content("digits.txt", time.Now(), body, "text/plain; charset=utf-8")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Range", "bytes=2-4")
	w := httptest.NewRecorder()
	require.NoError(t, resp(w, req))

	assert.Equal(t, http.StatusPartialContent, w.Code)
	assert.Equal(t, "234", w.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}
