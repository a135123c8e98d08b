package storage

import (
	"io/fs"
	"log/slog"

	"github.com/spf13/afero"
)

// Option configures LocalStorage.
type Option func(*LocalStorage)

// WithFs sets the underlying filesystem. Tests use afero.NewMemMapFs().
func WithFs(fsys afero.Fs) Option {
	return func(s *LocalStorage) {
		if fsys != nil {
			s.base = fsys
		}
	}
}

// WithFilePerm sets the permission bits of stored files (default 0644).
func WithFilePerm(perm fs.FileMode) Option {
	return func(s *LocalStorage) {
		s.filePerm = perm
	}
}

// WithDirPerm sets the permission bits used when creating the root directory (default 0755).
func WithDirPerm(perm fs.FileMode) Option {
	return func(s *LocalStorage) {
		s.dirPerm = perm
	}
}

// WithCreateDirs creates the root directory when it does not exist.
func WithCreateDirs(create bool) Option {
	return func(s *LocalStorage) {
		s.createDirs = create
	}
}

// WithSync flushes file contents to stable storage before the rename.
func WithSync(sync bool) Option {
	return func(s *LocalStorage) {
		s.sync = sync
	}
}

// WithLogger sets the logger for storage events.
func WithLogger(log *slog.Logger) Option {
	return func(s *LocalStorage) {
		if log != nil {
			s.logger = log
		}
	}
}
