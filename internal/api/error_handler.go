package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/taskboard/task-manager/internal/core/domain"
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

	// Known domain errors → deterministic HTTP codes. The duplicate-email
	// conflict maps to 400 because the endpoint contract pins that code.
	switch {
	case errors.Is(err, domain.ErrEmailExists):
		return http.StatusBadRequest, "Email already exists"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusUnprocessableEntity, "Role must be one of: admin, manager, team member"
	case errors.Is(err, domain.ErrTitleNotCapitalized):
		return http.StatusUnprocessableEntity, "Title must be capitalized"
	case errors.Is(err, domain.ErrInvalidPriority):
		return http.StatusUnprocessableEntity, "Priority must be one of: low, medium, high"
	case errors.Is(err, domain.ErrAssignedUserNotFound):
		return http.StatusNotFound, "Assigned user not found"
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "Task not found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
