// Package middleware provides HTTP middleware for the uploads service.
//
// All middleware is generic over handler.Context and follows the same shape:
// a default constructor and a WithConfig constructor taking a config struct
// with an optional Skip function.
//
//	r := router.New[*router.Context]()
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//	)
//
// RequestID stores an identifier in the request context and echoes it in the
// X-Request-ID response header. Logging reads it back so request and response
// records can be correlated; RequestIDFromContext lets a logger attach it to
// any record logged with the request context.
package middleware
