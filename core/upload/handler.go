package upload

import (
	"time"

	"github.com/dmitrymomot/uploads/core/handler"
	"github.com/dmitrymomot/uploads/core/response"
)

// LocationPrefix is prepended to the storage name in the Location header.
const LocationPrefix = "/image/"

// Handler accepts a multipart upload and answers 200 with an empty body.
// When a file was stored, its retrieval path is sent in the Location header.
func Handler[C handler.Context](svc *Service) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		mr, err := Reader(ctx.Request())
		if err != nil {
			return response.Error(svc.fail(ctx, err, time.Now()))
		}

		res, err := svc.Process(ctx, mr)
		if err != nil {
			return response.Error(err)
		}

		if res.StorageName == "" {
			return response.OK()
		}
		return response.WithHeaders(response.OK(), map[string]string{
			"Location": LocationPrefix + res.StorageName,
		})
	}
}
