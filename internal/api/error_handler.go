package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/classflow/gateway/internal/core/domain"
	"github.com/classflow/gateway/internal/infrastructure/backend"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Passes backend-reported application errors through with their status
//     and message, so the view layer decides presentation.
//   - Maps transport failures to 502 without leaking details.
//   - Logs unexpected errors internally and renders a consistent JSON
//     envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Backend-reported application error: status and message pass through.
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status, apiErr.Message
	}

	// Transport failure talking to the backend.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		log.Warn().Err(err).Str("path", c.Path()).Msg("backend unreachable")
		return http.StatusBadGateway, "backend unavailable"
	}

	// Known domain errors.
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, "session expired"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
