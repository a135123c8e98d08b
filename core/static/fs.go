package static

import (
	"io/fs"
	"net/http"
	"strings"
)

// hiddenFilter wraps http.FileSystem so dot-prefixed entries (in-flight
// temporary uploads) are invisible, and directories are only reachable when
// listing is enabled.
type hiddenFilter struct {
	fs      http.FileSystem
	listing bool
}

// Open implements http.FileSystem.
func (h hiddenFilter) Open(name string) (http.File, error) {
	if hasHiddenElement(name) {
		return nil, fs.ErrNotExist
	}

	f, err := h.fs.Open(name)
	if err != nil {
		return nil, err
	}

	s, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}

	if s.IsDir() {
		if !h.listing {
			_ = f.Close()
			return nil, fs.ErrNotExist
		}
		return filteredDir{File: f}, nil
	}

	return f, nil
}

// filteredDir drops hidden entries from directory reads.
type filteredDir struct {
	http.File
}

func (d filteredDir) Readdir(count int) ([]fs.FileInfo, error) {
	entries, err := d.File.Readdir(count)
	visible := entries[:0]
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), ".") {
			visible = append(visible, e)
		}
	}
	return visible, err
}

func hasHiddenElement(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != ".." {
			return true
		}
	}
	return false
}
