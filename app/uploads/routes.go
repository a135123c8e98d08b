package uploads

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/uploads/core/handler"
	"github.com/dmitrymomot/uploads/core/health"
	"github.com/dmitrymomot/uploads/core/response"
	"github.com/dmitrymomot/uploads/core/router"
	"github.com/dmitrymomot/uploads/core/static"
	"github.com/dmitrymomot/uploads/core/upload"
	"github.com/dmitrymomot/uploads/middleware"
)

const (
	titleParam   = "title"
	imagesPrefix = "/images"
)

func newRouter(log *slog.Logger) router.Router[*router.Context] {
	return router.New[*router.Context](
		router.WithLogger[*router.Context](log),
		router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]),
		router.WithMiddleware[*router.Context](
			middleware.RequestID[*router.Context](),
			middleware.LoggingWithLogger[*router.Context](log),
		),
	)
}

func (a *App) routes() {
	r := a.router

	r.Get("/api/check", health.Check[*router.Context])
	r.Get("/api/ready", health.Readiness[*router.Context](a.logger, a.store.Healthcheck))

	r.Post("/user", upload.Handler[*router.Context](a.uploads))
	r.Get(upload.LocationPrefix+"{"+titleParam+"}", static.Stored[*router.Context](a.store, titleParam))
	r.Mount(imagesPrefix, static.Dir[*router.Context](a.store.FileSystem(),
		static.WithStripPrefix(imagesPrefix),
		static.WithListing(true),
	), "GET", "HEAD")

	if a.registry != nil {
		metrics := promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})
		r.Get("/metrics", func(*router.Context) handler.Response {
			return response.Handler(metrics)
		})
	}
}
