package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/uploads/core/handler"
)

// routeError is a router error that carries its HTTP status.
type routeError struct {
	msg    string
	status int
}

func (e *routeError) Error() string   { return e.msg }
func (e *routeError) StatusCode() int { return e.status }

var (
	ErrNotFound         error = &routeError{msg: "not found", status: http.StatusNotFound}
	ErrMethodNotAllowed error = &routeError{msg: "method not allowed", status: http.StatusMethodNotAllowed}

	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilResponse      = errors.New("nil response")
	ErrInvalidMethod    = errors.New("invalid http method")
	ErrInvalidPattern   = errors.New("invalid route path pattern")
	ErrLateMiddleware   = errors.New("middlewares must be defined before routes")
)

// statusCode is implemented by errors that provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler writes the error as plain text.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError lets error handlers detect recovered panics.
type PanicError interface {
	error
	Value() any
	Stack() []byte
}

type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
