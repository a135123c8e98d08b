package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	gmux "github.com/gorilla/mux"

	"github.com/dmitrymomot/uploads/core/handler"
)

var knownMethods = map[string]bool{
	http.MethodGet:     true,
	http.MethodHead:    true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
	http.MethodConnect: true,
	http.MethodOptions: true,
	http.MethodTrace:   true,
}

// mux implements Router on top of gorilla/mux. Route matching and path
// variables come from gorilla; context creation, middleware, panic recovery
// and error rendering follow the handler package contract.
type mux[C handler.Context] struct {
	router       *gmux.Router
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request, map[string]string) C
	logger       *slog.Logger
	routes       []Route
}

func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		router:       gmux.NewRouter(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request, params map[string]string) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r, params)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.router.NotFoundHandler = m.errorEndpoint(ErrNotFound)
	m.router.MethodNotAllowedHandler = m.errorEndpoint(ErrMethodNotAllowed)

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.router.ServeHTTP(w, r)
}

func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodGet)
}

func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodPost)
}

func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodPut)
}

func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodDelete)
}

func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodPatch)
}

func (m *mux[C]) Head(pattern string, h handler.HandlerFunc[C]) {
	m.Method(pattern, h, http.MethodHead)
}

func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	validatePattern(pattern)
	m.router.Handle(pattern, m.endpoint(h))
	m.routes = append(m.routes, Route{Method: "*", Pattern: pattern})
}

func (m *mux[C]) Method(pattern string, h handler.HandlerFunc[C], methods ...string) {
	validatePattern(pattern)
	upper := normalizeMethods(methods)
	m.router.Handle(pattern, m.endpoint(h)).Methods(upper...)
	for _, method := range upper {
		m.routes = append(m.routes, Route{Method: method, Pattern: pattern})
	}
}

func (m *mux[C]) Mount(prefix string, h handler.HandlerFunc[C], methods ...string) {
	validatePattern(prefix)
	route := m.router.PathPrefix(prefix).Handler(m.endpoint(h))
	method := "*"
	if len(methods) > 0 {
		upper := normalizeMethods(methods)
		route.Methods(upper...)
		method = strings.Join(upper, ",")
	}
	m.routes = append(m.routes, Route{Method: method, Pattern: prefix + "*"})
}

func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if len(m.routes) > 0 {
		panic(ErrLateMiddleware)
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	routes := make([]Route, len(m.routes))
	copy(routes, m.routes)
	return routes
}

// endpoint adapts a HandlerFunc to http.Handler.
func (m *mux[C]) endpoint(h handler.HandlerFunc[C]) http.Handler {
	fn := h
	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, h)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		ctx := m.newContext(ww, r, gmux.Vars(r))

		defer m.recoverPanic(ctx, ww, r)

		resp := fn(ctx)
		if resp == nil {
			m.errorHandler(ctx, ErrNilResponse)
			return
		}

		if err := resp(ww, ctx.Request()); err != nil {
			m.errorHandler(ctx, err)
		}
	})
}

// errorEndpoint renders err through the error handler; used for 404 and 405.
func (m *mux[C]) errorEndpoint(err error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := newResponseWriter(w)
		m.errorHandler(m.newContext(ww, r, nil), err)
	})
}

func (m *mux[C]) recoverPanic(ctx C, ww *responseWriter, r *http.Request) {
	p := recover()
	if p == nil {
		return
	}

	// http.ErrAbortHandler is the documented way to abort a response.
	if p == http.ErrAbortHandler {
		panic(p)
	}

	panicErr := &panicError{value: p, stack: debug.Stack()}

	if ww.Written() {
		m.logger.Error("panic after response written",
			"value", panicErr.value,
			"stack", string(panicErr.stack),
			"path", r.URL.Path,
			"method", r.Method,
			"status", ww.Status(),
		)
		return
	}

	m.errorHandler(ctx, panicErr)
}

func validatePattern(pattern string) {
	if len(pattern) == 0 || pattern[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, pattern))
	}
}

func normalizeMethods(methods []string) []string {
	if len(methods) == 0 {
		panic(fmt.Errorf("%w: no methods provided", ErrInvalidMethod))
	}

	seen := make(map[string]bool, len(methods))
	upper := make([]string, 0, len(methods))
	for _, method := range methods {
		mt := strings.ToUpper(method)
		if !knownMethods[mt] {
			panic(fmt.Errorf("%w: %s", ErrInvalidMethod, method))
		}
		if seen[mt] {
			continue
		}
		seen[mt] = true
		upper = append(upper, mt)
	}
	return upper
}
