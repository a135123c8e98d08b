package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/uploads/core/handler"
	"github.com/dmitrymomot/uploads/core/logger"
	"github.com/dmitrymomot/uploads/core/response"
)

// Readiness verifies all service dependencies are functioning.
// Returns "READY" if all checks pass, 503 Service Unavailable if any fail.
//
// Example:
//
//	r.Get("/api/ready", health.Readiness[*router.Context](log, store.Healthcheck))
func Readiness[C handler.Context](log *slog.Logger, fn ...func(context.Context) error) handler.HandlerFunc[C] {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(ctx C) handler.Response {
		for _, f := range fn {
			if err := f(ctx); err != nil {
				log.ErrorContext(ctx, "Readiness check failed",
					logger.Component("health"),
					logger.Error(err),
				)
				return response.Error(response.ErrServiceUnavailable)
			}
		}

		return response.String("READY")
	}
}
