package health

import (
	"github.com/dmitrymomot/uploads/core/handler"
	"github.com/dmitrymomot/uploads/core/response"
)

// Status is the body of the liveness check.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

var healthy = Status{Status: "success", Message: "100% healthy"}

// Check reports that the process is serving requests.
// It never consults dependencies, so it answers 200 even when storage is gone.
//
// Example:
//
//	r.Get("/api/check", health.Check[*router.Context])
func Check[C handler.Context](C) handler.Response {
	return response.JSON(healthy)
}
