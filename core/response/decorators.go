package response

import (
	"net/http"

	"github.com/dmitrymomot/uploads/core/handler"
)

// WithHeaders wraps a response with custom HTTP headers.
// Headers are set before the wrapped response is rendered.
func WithHeaders(resp handler.Response, headers map[string]string) handler.Response {
	if resp == nil {
		return nil
	}
	if len(headers) == 0 {
		return resp
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		for k, v := range headers {
			w.Header().Set(k, v)
		}
		return resp(w, r)
	}
}
