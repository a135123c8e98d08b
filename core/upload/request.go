package upload

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
)

// maxBoundaryLength is the RFC 2046 limit.
const maxBoundaryLength = 70

// Reader checks that r carries a multipart/form-data body and returns a
// streaming reader over its parts. Nothing is read from the body yet.
func Reader(r *http.Request) (*Stream, error) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return nil, fmt.Errorf("%w: missing content type", ErrUnsupportedMediaType)
	}

	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedMediaType, err)
	}
	if mediaType != "multipart/form-data" {
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedMediaType, mediaType)
	}

	boundary := params["boundary"]
	if !validBoundary(boundary) {
		return nil, fmt.Errorf("%w: invalid boundary", ErrDecode)
	}

	return NewStream(r.Body, boundary), nil
}

func validBoundary(boundary string) bool {
	if boundary == "" || len(boundary) > maxBoundaryLength {
		return false
	}
	return !strings.ContainsAny(boundary, "\x00\r\n")
}
