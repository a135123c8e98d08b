// Package response builds handler.Response values: plain text, JSON, empty
// status responses and seekable file content, plus the structured HTTPError
// type and the error handlers that render it.
//
// Handlers signal failures by returning response.Error(err); the router then
// calls its error handler, which for this service is JSONErrorHandler:
//
//	return response.Error(response.ErrNotFound.WithMessage("file not found"))
//	// 404 {"code":"not_found","message":"file not found"}
//
// Errors that are not HTTPError values are converted using their optional
// StatusCode() int and ErrorCode() string methods.
package response
