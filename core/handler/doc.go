// Package handler defines the types shared by the router, middleware and
// request handlers of the uploads service.
//
// A handler receives a typed context and returns a Response; the Response is
// rendered by the router, and any error it returns is routed to the
// configured ErrorHandler:
//
//	func hello(ctx *router.Context) handler.Response {
//		return response.String("hello " + ctx.Param("name"))
//	}
//
// Middleware composes around HandlerFunc values and may decorate the returned
// Response, which is how request logging observes the final status code.
package handler
