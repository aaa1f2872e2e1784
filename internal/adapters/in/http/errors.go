package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ordersapp/internal/pkg/errs"
)

// statusFor maps the error taxonomy onto HTTP status codes: validation
// failures are 400, missing objects 404, optimistic-version conflicts 409,
// everything else 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the uniform error body. Internal errors are logged in
// full server-side and reported to the client with a generic message only.
func respondError(ctx echo.Context, err error) error {
	status := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = "internal server error"
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}

// respondBadRequest is for malformed input detected before any command runs.
func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
