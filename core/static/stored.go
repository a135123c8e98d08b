package static

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/dmitrymomot/uploads/core/handler"
	"github.com/dmitrymomot/uploads/core/response"
	"github.com/dmitrymomot/uploads/core/storage"
)

const octetStream = "application/octet-stream"

// Opener opens stored files by name.
type Opener interface {
	Open(name string) (storage.File, error)
}

// Stored creates a handler that serves the stored file named by the path
// parameter param. The content type is detected from the file bytes and
// falls back to the extension. Range and conditional requests are supported.
func Stored[C handler.Context](store Opener, param string) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		name := ctx.Param(param)

		f, err := store.Open(name)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrInvalidPath):
				return response.Error(response.ErrBadRequest.WithMessage("invalid file name"))
			case errors.Is(err, storage.ErrFileNotFound):
				return response.Error(response.ErrNotFound.WithMessage("file not found"))
			}
			return response.Error(err)
		}

		info, err := f.Stat()
		if err != nil {
			_ = f.Close()
			return response.Error(err)
		}

		contentType, err := detectContentType(f, name)
		if err != nil {
			_ = f.Close()
			return response.Error(err)
		}

		return func(w http.ResponseWriter, r *http.Request) error {
			defer f.Close()
			w.Header().Set("X-Content-Type-Options", "nosniff")
			return response.Content(name, info.ModTime(), f, contentType)(w, r)
		}
	}
}

// detectContentType sniffs the file header and rewinds f.
func detectContentType(f io.ReadSeeker, name string) (string, error) {
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	if mt.Is(octetStream) {
		if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
			return byExt, nil
		}
	}
	return mt.String(), nil
}
