package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/spf13/afero"

	"github.com/dmitrymomot/uploads/core/logger"
)

// tempPattern names in-flight writes. The leading dot keeps them out of listings.
const tempPattern = ".upload-*"

// File is a stored file opened for reading.
type File interface {
	io.ReadSeekCloser
	Stat() (fs.FileInfo, error)
}

// LocalStorage stores flat files in a single directory.
// Writes go to a temporary file that is renamed into place, so a file is
// either absent or complete under its final name.
type LocalStorage struct {
	base       afero.Fs
	fs         afero.Fs
	dir        string
	filePerm   fs.FileMode
	dirPerm    fs.FileMode
	createDirs bool
	sync       bool
	logger     *slog.Logger
}

// NewLocalStorage creates storage rooted at dir.
func NewLocalStorage(dir string, opts ...Option) (*LocalStorage, error) {
	s := &LocalStorage{
		base:     afero.NewOsFs(),
		dir:      dir,
		filePerm: 0o644,
		dirPerm:  0o755,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("%w: directory is required", ErrInvalidConfig)
	}

	info, err := s.base.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) && s.createDirs {
		if err := s.base.MkdirAll(dir, s.dirPerm); err != nil {
			return nil, classify("mkdir", dir, err)
		}
		info, err = s.base.Stat(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, classify("stat", dir, err))
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	s.fs = afero.NewBasePathFs(s.base, dir)
	return s, nil
}

// Dir returns the storage root as configured.
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes data under name, replacing any existing file.
func (s *LocalStorage) Save(ctx context.Context, name string, data []byte) (err error) {
	if err := ValidateName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return classify("save", name, err)
	}

	tmp, err := afero.TempFile(s.fs, "/", tempPattern)
	if err != nil {
		return classify("create temp", name, err)
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			if rmErr := s.fs.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				s.logger.WarnContext(ctx, "failed to remove temp file",
					logger.Component("storage"),
					logger.Filename("temp_name", tmpName),
					logger.Error(rmErr),
				)
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return classify("write", name, err)
	}
	if s.sync {
		if err = tmp.Sync(); err != nil {
			_ = tmp.Close()
			return classify("sync", name, err)
		}
	}
	if err = tmp.Close(); err != nil {
		return classify("close", name, err)
	}
	if err = s.fs.Chmod(tmpName, s.filePerm); err != nil {
		return classify("chmod", name, err)
	}

	// Last point where cancellation leaves nothing behind.
	if err = ctx.Err(); err != nil {
		return classify("save", name, err)
	}

	if err = s.fs.Rename(tmpName, "/"+name); err != nil {
		return classify("rename", name, err)
	}

	s.logger.DebugContext(ctx, "file stored",
		logger.Component("storage"),
		logger.Filename("storage_name", name),
		logger.BytesIn(int64(len(data))),
	)
	return nil
}

// Open opens a stored file for reading.
func (s *LocalStorage) Open(name string) (File, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	f, err := s.fs.Open("/" + name)
	if err != nil {
		return nil, classify("open", name, err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, classify("stat", name, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, name)
	}
	return f, nil
}

// Stat returns file info for a stored file.
func (s *LocalStorage) Stat(name string) (fs.FileInfo, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	info, err := s.fs.Stat("/" + name)
	if err != nil {
		return nil, classify("stat", name, err)
	}
	return info, nil
}

// FileSystem exposes the storage root as an http.FileSystem.
func (s *LocalStorage) FileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir("/")
}

// Healthcheck reports whether the storage root is still a usable directory.
func (s *LocalStorage) Healthcheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return classify("healthcheck", s.dir, err)
	}
	info, err := s.base.Stat(s.dir)
	if err != nil {
		return classify("healthcheck", s.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, s.dir)
	}
	return nil
}

// ValidateName accepts a single, visible path element.
func ValidateName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidPath, name)
	case strings.ContainsAny(name, "/\\\x00"):
		return fmt.Errorf("%w: %q contains a separator", ErrInvalidPath, name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q is hidden", ErrInvalidPath, name)
	case path.Base(name) != name:
		return fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	return nil
}

// IsHidden reports whether a stored entry must not be exposed.
func IsHidden(name string) bool {
	return strings.HasPrefix(path.Base(name), ".")
}
