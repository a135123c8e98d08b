package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrInsufficientSpace = errors.New("insufficient storage space")
	ErrInvalidPath       = errors.New("invalid file path")
	ErrOperationCanceled = errors.New("storage operation canceled")
	ErrInvalidConfig     = errors.New("invalid storage configuration")
	ErrNotDirectory      = errors.New("storage root is not a directory")
	ErrIO                = errors.New("storage i/o error")
)

// classify wraps a filesystem error with the matching sentinel while keeping
// the original error in the chain.
func classify(op, name string, err error) error {
	if err == nil {
		return nil
	}

	sentinel := ErrIO
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		sentinel = ErrOperationCanceled
	case errors.Is(err, fs.ErrNotExist):
		sentinel = ErrFileNotFound
	case errors.Is(err, fs.ErrPermission):
		sentinel = ErrAccessDenied
	case errors.Is(err, syscall.ENOSPC), errors.Is(err, syscall.EDQUOT):
		sentinel = ErrInsufficientSpace
	}

	return fmt.Errorf("%w: %s %q: %w", sentinel, op, name, err)
}
