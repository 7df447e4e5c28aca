package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gatehouse/gatehouse/internal/core/domain"
)

// apology is the data rendered into the apology page: the HTTP status on
// top, the human-readable reason on the bottom.
type apology struct {
	Top    int
	Bottom string
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders every failure as the apology page.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if renderErr := c.Render(code, "apology.html", apology{Top: code, Bottom: msg}); renderErr != nil {
			_ = c.String(code, msg)
		}
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (validation failures, 404 from the router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors carry user-facing texts and map to fixed codes.
	switch {
	case errors.Is(err, domain.ErrMissingName),
		errors.Is(err, domain.ErrMissingEmail),
		errors.Is(err, domain.ErrMissingPassword),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrMissingCredentials),
		errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
