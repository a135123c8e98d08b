// Package router provides a generic HTTP router built on gorilla/mux.
//
// Handlers use the handler package types, so any context type implementing
// handler.Context can be routed; *Context is used when no factory is given:
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler[*router.Context](response.JSONErrorHandler[*router.Context]),
//	)
//	r.Get("/image/{title}", func(ctx *router.Context) handler.Response {
//		return response.String(ctx.Param("title"))
//	})
//
// Unknown paths and method mismatches are reported to the error handler as
// ErrNotFound and ErrMethodNotAllowed, which carry 404 and 405 status codes.
// Panics in handlers are recovered and reported as PanicError values.
package router
