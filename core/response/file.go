package response

import (
	"io"
	"net/http"
	"time"

	"github.com/dmitrymomot/uploads/core/handler"
)

// Content serves a seekable body with http.ServeContent, which handles
// Range, If-Modified-Since and If-None-Match. When contentType is empty
// ServeContent sniffs it from the name and the first bytes.
func Content(name string, modTime time.Time, content io.ReadSeeker, contentType string) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		http.ServeContent(w, r, name, modTime, content)
		return nil
	}
}
