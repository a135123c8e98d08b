// Package health provides HTTP handlers for service health monitoring.
//
// Handlers:
//   - Check: process is serving; fixed JSON body, no dependency checks
//   - Readiness: all dependencies are available
//
// Usage:
//
//	r.Get("/api/check", health.Check[*router.Context])
//	r.Get("/api/ready", health.Readiness[*router.Context](log, store.Healthcheck))
//
// Dependency checks must follow func(context.Context) error signature.
package health
