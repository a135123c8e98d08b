package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/uploads/core/logger"
	"github.com/dmitrymomot/uploads/core/storage"
)

// Storage persists a stored file under its final name.
type Storage interface {
	Save(ctx context.Context, name string, data []byte) error
}

// Result describes a processed upload request.
type Result struct {
	// Name is the text of the "name" field, empty when absent or not UTF-8.
	Name string
	// StorageName is empty when the request carried no file field.
	StorageName    string
	ClientFilename string
	Size           int
}

// Service runs the upload pipeline for one request at a time; it holds no
// per-request state and is safe for concurrent use.
type Service struct {
	store     Storage
	newID     func() string
	maxExtLen int
	logger    *slog.Logger
	metrics   *Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithIdentifier replaces the identifier generator.
func WithIdentifier(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// WithMaxExtensionLength bounds accepted extensions.
func WithMaxExtensionLength(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxExtLen = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithMetrics records outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New creates an upload Service writing to store.
func New(store Storage, opts ...Option) *Service {
	s := &Service{
		store:     store,
		newID:     NewIdentifier,
		maxExtLen: DefaultMaxExtensionLength,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process reads the whole multipart stream, then stores the last file field
// under a fresh identifier. Nothing is written when any part fails to decode
// or validate, or when the body ends before its closing delimiter.
func (s *Service) Process(ctx context.Context, mr *Stream) (Result, error) {
	start := time.Now()
	id := s.newID()

	data, err := s.readForm(ctx, mr, id)
	if err != nil {
		return Result{}, s.fail(ctx, err, start)
	}

	res := Result{
		Name:           data.Name,
		StorageName:    data.StorageName,
		ClientFilename: data.ClientFilename,
		Size:           len(data.File),
	}

	if data.HasFile {
		if err := s.store.Save(ctx, data.StorageName, data.File); err != nil {
			sentinel := ErrStorage
			if errors.Is(err, storage.ErrInsufficientSpace) {
				sentinel = ErrInsufficientStorage
			}
			return Result{}, s.fail(ctx, fmt.Errorf("%w: %w", sentinel, err), start)
		}
	}

	s.metrics.observe("success", res.Size, data.HasFile)
	s.logger.InfoContext(ctx, "upload processed",
		logger.Component("upload"),
		logger.Result("success"),
		logger.Key("name", res.Name),
		logger.Filename("client_filename", res.ClientFilename),
		logger.Filename("storage_name", res.StorageName),
		logger.BytesIn(int64(res.Size)),
		logger.Duration(time.Since(start)),
	)
	return res, nil
}

func (s *Service) fail(ctx context.Context, err error, start time.Time) error {
	code := "error"
	var ue *Error
	if errors.As(err, &ue) {
		code = ue.ErrorCode()
	}

	level := slog.LevelWarn
	if ue == nil || ue.StatusCode() >= 500 {
		level = slog.LevelError
	}

	s.metrics.observe(code, 0, false)
	s.logger.LogAttrs(ctx, level, "upload failed",
		logger.Component("upload"),
		logger.Result(code),
		logger.Error(err),
		logger.Duration(time.Since(start)),
	)
	return err
}
