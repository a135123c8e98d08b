// Package storage persists uploaded files in a single local directory.
//
// LocalStorage is backed by afero, so production code runs on the OS
// filesystem and tests can swap in an in-memory one:
//
//	store, err := storage.NewLocalStorage("./storage",
//		storage.WithCreateDirs(true),
//		storage.WithSync(true),
//	)
//	if err != nil {
//		return err
//	}
//	if err := store.Save(ctx, "9b2c...e1.png", data); err != nil {
//		switch {
//		case errors.Is(err, storage.ErrInsufficientSpace):
//			// disk full
//		case errors.Is(err, storage.ErrOperationCanceled):
//			// request went away before the rename
//		}
//	}
//
// Save writes to a hidden temporary file in the same directory and renames it
// over the final name, so readers never observe a partially written file.
// Names must be a single visible path element; anything else is rejected
// with ErrInvalidPath.
//
// Filesystem failures are wrapped with one of the package sentinels and keep
// the underlying error in the chain for errors.Is and errors.As.
package storage
