package uploads_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploads/app/uploads"
	"github.com/dmitrymomot/uploads/core/server"
	"github.com/dmitrymomot/uploads/core/storage"
	"github.com/dmitrymomot/uploads/core/upload"
)

var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\xff\xff\xff\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

func testConfig(t *testing.T) uploads.Config {
	t.Helper()
	srv := server.DefaultConfig()
	srv.Addr = "127.0.0.1:0"
	return uploads.Config{
		Server:         srv,
		Storage:        storage.Config{Dir: filepath.Join(t.TempDir(), "storage"), CreateDir: true},
		Upload:         upload.Config{MaxExtensionLength: upload.DefaultMaxExtensionLength},
		AppName:        "uploads-test",
		Env:            "test",
		LogLevel:       "error",
		MetricsEnabled: true,
	}
}

func newTestServer(t *testing.T, cfg uploads.Config) *httptest.Server {
	t.Helper()
	app, err := uploads.NewApp(
		uploads.WithConfig(cfg),
		uploads.WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.NoError(t, err)

	ts := httptest.NewServer(app.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postUpload(t *testing.T, url, name, filename string, data []byte) *http.Response {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("name", name))
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(url+"/user", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestApp_UploadAndRetrieve(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	ts := newTestServer(t, cfg)

	resp := postUpload(t, ts.URL, "Alice", "pixel.gif", gifBytes)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	location := resp.Header.Get("Location")
	require.True(t, strings.HasPrefix(location, "/image/"), location)
	stored := strings.TrimPrefix(location, "/image/")
	assert.True(t, strings.HasSuffix(stored, ".gif"))

	onDisk, err := os.ReadFile(filepath.Join(cfg.Storage.Dir, stored))
	require.NoError(t, err)
	assert.Equal(t, gifBytes, onDisk)

	img, body := get(t, ts.URL+location)
	assert.Equal(t, http.StatusOK, img.StatusCode)
	assert.Equal(t, "image/gif", img.Header.Get("Content-Type"))
	assert.Equal(t, string(gifBytes), body)

	listing, body := get(t, ts.URL+"/images/")
	assert.Equal(t, http.StatusOK, listing.StatusCode)
	assert.Contains(t, body, stored)

	redirect, _ := get(t, ts.URL+"/images")
	assert.Equal(t, http.StatusMovedPermanently, redirect.StatusCode)
	assert.Equal(t, "/images/", redirect.Header.Get("Location"))
}

func TestApp_UploadErrors(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, testConfig(t))

	tests := []struct {
		name     string
		filename string
		status   int
		code     string
	}{
		{name: "missing extension", filename: "README", status: http.StatusBadRequest, code: "missing_extension"},
		{name: "invalid extension", filename: "photo.p_g", status: http.StatusBadRequest, code: "invalid_extension"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postUpload(t, ts.URL, "Bob", tt.filename, []byte("data"))
			assert.Equal(t, tt.status, resp.StatusCode)

			var body map[string]any
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.code, body["code"])
		})
	}

	t.Run("not multipart", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/user", "application/json", strings.NewReader("{}"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	})
}

func TestApp_Endpoints(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, testConfig(t))

	t.Run("check", func(t *testing.T) {
		resp, body := get(t, ts.URL+"/api/check")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"success","message":"100% healthy"}`, body)
	})

	t.Run("ready", func(t *testing.T) {
		resp, body := get(t, ts.URL+"/api/ready")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "READY", body)
	})

	t.Run("missing image", func(t *testing.T) {
		resp, body := get(t, ts.URL+"/image/nope.png")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, `"not_found"`)
	})

	t.Run("unknown route", func(t *testing.T) {
		resp, body := get(t, ts.URL+"/nowhere")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
		assert.Contains(t, body, `"not_found"`)
	})

	t.Run("metrics", func(t *testing.T) {
		postUpload(t, ts.URL, "Carol", "a.txt", []byte("hello"))

		resp, body := get(t, ts.URL+"/metrics")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "uploads_total")
		assert.Contains(t, body, "upload_size_bytes")
	})
}

func TestApp_MetricsDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.MetricsEnabled = false
	ts := newTestServer(t, cfg)

	resp, _ := get(t, ts.URL+"/metrics")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestNewApp_InvalidStorage(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	cfg.Storage.Dir = file

	_, err := uploads.NewApp(
		uploads.WithConfig(cfg),
		uploads.WithLogger(slog.New(slog.DiscardHandler)),
	)
	require.ErrorIs(t, err, storage.ErrNotDirectory)
}

func TestNewApp_NilOptions(t *testing.T) {
	t.Parallel()

	_, err := uploads.NewApp(uploads.WithLogger(nil))
	require.Error(t, err)

	_, err = uploads.NewApp(uploads.WithConfig(uploads.Config{}))
	require.Error(t, err)
}
