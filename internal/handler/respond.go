package handler

import (
	"github.com/labstack/echo/v4"

	"wishcart/internal/errors"
)

// respondError converts a service error into an echo HTTP error. The underlying
// error is kept as the internal cause so the error handler can log it.
func respondError(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// SuccessResponse is the acknowledgement body for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
