package upload

import (
	"errors"
	"net/http"
)

// Error is an upload failure with a stable machine-readable code and the
// HTTP status it maps to. Causes are attached with fmt.Errorf("%w: %w").
type Error struct {
	code    string
	status  int
	message string
}

func (e *Error) Error() string     { return e.message }
func (e *Error) StatusCode() int   { return e.status }
func (e *Error) ErrorCode() string { return e.code }

var (
	ErrDecode               = &Error{code: "decode_error", status: http.StatusInternalServerError, message: "malformed multipart body"}
	ErrUnsupportedMediaType = &Error{code: "unsupported_media_type", status: http.StatusUnsupportedMediaType, message: "expected multipart/form-data"}
	ErrMissingFilename      = &Error{code: "missing_filename", status: http.StatusBadRequest, message: "file field has no filename"}
	ErrMissingExtension     = &Error{code: "missing_extension", status: http.StatusBadRequest, message: "filename has no extension"}
	ErrInvalidExtension     = &Error{code: "invalid_extension", status: http.StatusBadRequest, message: "filename extension is not allowed"}
	ErrStorage              = &Error{code: "storage_error", status: http.StatusInternalServerError, message: "failed to store file"}
	ErrInsufficientStorage  = &Error{code: "insufficient_storage", status: http.StatusInsufficientStorage, message: "not enough space to store file"}
)

// ErrUnterminated is the cause attached to ErrDecode when the body ends
// before the closing multipart delimiter.
var ErrUnterminated = errors.New("multipart body ended before closing delimiter")
