package router

import (
	"net/http"

	"github.com/dmitrymomot/uploads/core/handler"
)

// Router is the main routing interface for handling HTTP requests.
type Router[C handler.Context] interface {
	http.Handler
	Routes

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Head(pattern string, h handler.HandlerFunc[C])

	// Handle registers h for every method on pattern.
	Handle(pattern string, h handler.HandlerFunc[C])
	// Method registers h for the listed methods on pattern.
	Method(pattern string, h handler.HandlerFunc[C], methods ...string)
	// Mount registers h for prefix and every path below it.
	Mount(prefix string, h handler.HandlerFunc[C], methods ...string)

	// Use appends middleware. It must be called before any route is added.
	Use(middlewares ...handler.Middleware[C])
}

// Routes provides route introspection for debugging and tests.
type Routes interface {
	Routes() []Route
}

// Route describes a single registered route.
type Route struct {
	Method  string
	Pattern string
}

// New creates a new router with the given options.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
