package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/uploads/core/handler"
)

// statusCode is implemented by errors that carry their own HTTP status.
type statusCode interface {
	StatusCode() int
}

// codedError is implemented by errors that carry a machine-readable code.
type codedError interface {
	ErrorCode() string
}

// convertToHTTPError converts any error to an HTTPError.
// Errors exposing StatusCode/ErrorCode keep their status, code and message;
// anything else becomes a 500 with the cause attached.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	var ce codedError
	if errors.As(err, &ce) {
		baseErr.Code = ce.ErrorCode()
		return baseErr.WithMessage(err.Error())
	}

	return baseErr.WithError(err)
}

// writtenTracker is implemented by response writers that know whether the
// status line has already been sent.
type writtenTracker interface {
	Written() bool
}

func alreadyWritten(w http.ResponseWriter) bool {
	wt, ok := w.(writtenTracker)
	return ok && wt.Written()
}

// ErrorHandler writes errors as plain text.
func ErrorHandler[C handler.Context](ctx C, err error) {
	if alreadyWritten(ctx.ResponseWriter()) {
		return
	}
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler writes errors as {"code","message","details"} JSON.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	if alreadyWritten(ctx.ResponseWriter()) {
		return
	}
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}
