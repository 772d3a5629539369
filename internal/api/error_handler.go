package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/talentia/contracts-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes, so
//     callers can tell domain-rule rejections (never retry) apart from
//     persistence failures (maybe retry).
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

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrContractNotFound):
		return http.StatusNotFound, "contract not found"
	case errors.Is(err, domain.ErrMilestoneNotFound):
		return http.StatusNotFound, "milestone not found"
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, "notification not found"
	case errors.Is(err, domain.ErrAlreadySigned):
		return http.StatusConflict, "you have already signed this contract"
	case errors.Is(err, domain.ErrContractClosed):
		return http.StatusConflict, "contract is completed or cancelled"
	case errors.Is(err, domain.ErrContractFullySigned):
		return http.StatusConflict, "contract is already fully signed"
	case errors.Is(err, domain.ErrMilestoneApproved):
		return http.StatusUnprocessableEntity, "approved milestone cannot be modified"
	case errors.Is(err, domain.ErrInvalidMilestoneState):
		return http.StatusUnprocessableEntity, "invalid milestone status"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
