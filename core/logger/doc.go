// Package logger builds slog loggers and provides attribute helpers so log
// keys stay consistent across the service.
//
//	log := logger.New(
//		logger.WithProduction("uploads"),
//		logger.WithLevel(logger.ParseLevel("debug")),
//	)
//
//	log.Info("file stored",
//		logger.Component("upload"),
//		logger.Filename("storage_name", name),
//		logger.Duration(time.Since(start)),
//	)
//
// Attribute helpers return an empty slog.Attr for empty input where that
// makes sense, and slog drops empty attributes, so callers need no nil checks.
//
// WithContextValue and WithContextExtractors copy request-scoped values (such
// as the request id) from the context into every record logged through the
// *Context methods.
package logger
