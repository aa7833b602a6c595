package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pixelnova/projecthub/internal/core/domain"
	"github.com/pixelnova/projecthub/internal/infrastructure/store"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
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

	// Known domain errors → deterministic HTTP codes. Credential and token
	// failures collapse to a single generic message so responses cannot be
	// used to enumerate accounts or probe token internals.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "email already registered"
	case errors.Is(err, domain.ErrTokenMalformed),
		errors.Is(err, domain.ErrTokenBadSignature),
		errors.Is(err, domain.ErrTokenExpired):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, domain.ErrProjectNameRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound, "project not found"
	case errors.Is(err, domain.ErrUnknownAction), errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrUpstream):
		log.Error().Err(err).Str("path", c.Path()).Msg("AI upstream failure")
		return http.StatusBadGateway, "AI generation failed"
	case errors.Is(err, store.ErrCorrupt):
		log.Error().Err(err).Str("path", c.Path()).Msg("storage corruption")
		return http.StatusInternalServerError, "internal server error"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
