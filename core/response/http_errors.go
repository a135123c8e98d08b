package response

import "net/http"

// HTTPError is a structured error response that implements the error interface.
type HTTPError struct {
	Status  int            `json:"-"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for the error.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// WithDetails returns a copy of the error with additional details.
func (e HTTPError) WithDetails(details map[string]any) HTTPError {
	e.Details = details
	return e
}

// WithError returns a copy of the error with the cause recorded in details.
func (e HTTPError) WithError(err error) HTTPError {
	details := make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details["cause"] = err.Error()
	e.Details = details
	return e
}

func newHTTPError(status int, code string) HTTPError {
	return HTTPError{
		Status:  status,
		Code:    code,
		Message: http.StatusText(status),
	}
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	ErrBadRequest           = newHTTPError(http.StatusBadRequest, "bad_request")
	ErrNotFound             = newHTTPError(http.StatusNotFound, "not_found")
	ErrMethodNotAllowed     = newHTTPError(http.StatusMethodNotAllowed, "method_not_allowed")
	ErrUnsupportedMediaType = newHTTPError(http.StatusUnsupportedMediaType, "unsupported_media_type")
	ErrInternalServerError  = newHTTPError(http.StatusInternalServerError, "internal_server_error")
	ErrServiceUnavailable   = newHTTPError(http.StatusServiceUnavailable, "service_unavailable")
	ErrInsufficientStorage  = newHTTPError(http.StatusInsufficientStorage, "insufficient_storage")
)

var httpErrorsByStatus = map[int]HTTPError{
	http.StatusBadRequest:           ErrBadRequest,
	http.StatusNotFound:             ErrNotFound,
	http.StatusMethodNotAllowed:     ErrMethodNotAllowed,
	http.StatusUnsupportedMediaType: ErrUnsupportedMediaType,
	http.StatusInternalServerError:  ErrInternalServerError,
	http.StatusServiceUnavailable:   ErrServiceUnavailable,
	http.StatusInsufficientStorage:  ErrInsufficientStorage,
}
