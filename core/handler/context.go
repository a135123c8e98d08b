package handler

import (
	"context"
	"net/http"
)

// Context is the request context passed to every handler.
// It is a context.Context bound to the request lifetime, so it can be handed
// directly to blocking calls such as storage writes.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
