package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-Id"

// RequestID tags every request with a correlation id. A client-supplied
// X-Request-Id is kept, otherwise a fresh UUID is generated; either way the
// id is echoed back in the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := ctx.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			ctx.Response().Header().Set(requestIDHeader, id)
			return next(ctx)
		}
	}
}
