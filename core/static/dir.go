package static

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/dmitrymomot/uploads/core/handler"
	"github.com/dmitrymomot/uploads/core/response"
)

// dirConfig holds configuration for directory serving
type dirConfig struct {
	stripPrefix string
	listing     bool
}

// DirOption configures directory serving behavior
type DirOption func(*dirConfig)

// WithStripPrefix removes the given prefix from the URL path before serving files.
// Requests for the bare prefix are redirected to prefix + "/".
func WithStripPrefix(prefix string) DirOption {
	return func(c *dirConfig) {
		c.stripPrefix = strings.TrimSuffix(prefix, "/")
	}
}

// WithListing enables HTML directory listings.
func WithListing(enabled bool) DirOption {
	return func(c *dirConfig) {
		c.listing = enabled
	}
}

// Dir creates a handler that serves files from fsys.
// Entries whose name starts with a dot are never listed or served.
// Directory listing is disabled unless WithListing(true) is given.
func Dir[C handler.Context](fsys http.FileSystem, opts ...DirOption) handler.HandlerFunc[C] {
	config := &dirConfig{}
	for _, opt := range opts {
		opt(config)
	}

	filtered := hiddenFilter{fs: fsys, listing: config.listing}
	fileServer := http.FileServer(filtered)

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			upath := r.URL.Path
			if config.stripPrefix != "" {
				rest, ok := strings.CutPrefix(upath, config.stripPrefix)
				switch {
				case !ok, rest != "" && rest[0] != '/':
					return response.ErrNotFound
				case rest == "":
					http.Redirect(w, r, config.stripPrefix+"/", http.StatusMovedPermanently)
					return nil
				}
				upath = rest
			}

			// Fail through the error handler instead of the file server's plain 404.
			f, err := filtered.Open(path.Clean(upath))
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return response.ErrNotFound
				}
				return err
			}
			_ = f.Close()

			r2 := new(http.Request)
			*r2 = *r
			r2.URL = new(url.URL)
			*r2.URL = *r.URL
			r2.URL.Path = upath
			r2.URL.RawPath = ""

			fileServer.ServeHTTP(w, r2)
			return nil
		}
	}
}
