package uploads

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/uploads/core/config"
	"github.com/dmitrymomot/uploads/core/logger"
	"github.com/dmitrymomot/uploads/core/router"
	"github.com/dmitrymomot/uploads/core/server"
	"github.com/dmitrymomot/uploads/core/storage"
	"github.com/dmitrymomot/uploads/core/upload"
	"github.com/dmitrymomot/uploads/middleware"
)

type App struct {
	config   Config
	router   router.Router[*router.Context]
	server   *server.Server
	store    *storage.LocalStorage
	uploads  *upload.Service
	registry *prometheus.Registry
	logger   *slog.Logger
}

type AppOption func(*App) error

// NewApp wires storage, the upload service and the HTTP routes.
// Configuration is loaded from the environment unless WithConfig is given.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == (Config{}) {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}

	if app.logger == nil {
		app.logger = NewLogger(app.config)
	}

	if app.store == nil {
		store, err := storage.NewFromConfig(app.config.Storage,
			storage.WithLogger(app.logger),
		)
		if err != nil {
			return nil, err
		}
		app.store = store
	}

	var metrics *upload.Metrics
	if app.config.MetricsEnabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m, err := upload.NewMetrics(app.registry)
		if err != nil {
			return nil, err
		}
		metrics = m
	}

	uploadOpts := []upload.Option{
		upload.WithLogger(app.logger),
		upload.WithMetrics(metrics),
	}
	if app.config.Upload.MaxExtensionLength > 0 {
		uploadOpts = append(uploadOpts, upload.WithMaxExtensionLength(app.config.Upload.MaxExtensionLength))
	}
	app.uploads = upload.New(app.store, uploadOpts...)

	if app.router == nil {
		app.router = newRouter(app.logger)
	}
	app.routes()

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	app.logger.Info("application initialized",
		logger.Component("app"),
		slog.String("storage_dir", app.store.Dir()),
		slog.String("addr", app.config.Server.Addr),
		slog.Bool("metrics", app.config.MetricsEnabled),
	)

	return app, nil
}

// Handler returns the HTTP handler with all routes registered.
func (a *App) Handler() http.Handler {
	return a.router
}

// Run returns an errgroup-compatible function serving HTTP until ctx is canceled.
func (a *App) Run(ctx context.Context) func() error {
	return a.server.Run(ctx, a.router)
}

// NewLogger builds the service logger for cfg. Records carry the request id
// when one is present in the context.
func NewLogger(cfg Config) *slog.Logger {
	opts := []logger.Option{}
	if cfg.IsDevelopment() {
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	} else {
		opts = append(opts, logger.WithProduction(cfg.AppName))
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	opts = append(opts, logger.WithContextExtractors(requestIDAttr))
	return logger.New(opts...)
}

func requestIDAttr(ctx context.Context) (slog.Attr, bool) {
	id, ok := middleware.RequestIDFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return logger.RequestID(id), true
}

func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		if cfg == (Config{}) {
			return errors.New("config cannot be empty")
		}
		app.config = cfg
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithRouter(router router.Router[*router.Context]) AppOption {
	return func(app *App) error {
		if router == nil {
			return errors.New("router cannot be nil")
		}
		app.router = router
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

func WithStorage(store *storage.LocalStorage) AppOption {
	return func(app *App) error {
		if store == nil {
			return errors.New("storage cannot be nil")
		}
		app.store = store
		return nil
	}
}
