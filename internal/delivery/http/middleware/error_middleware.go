package middleware

import (
	"log/slog"
	"net/http"

	"moviedb/internal/delivery/http/response"
	domainerrors "moviedb/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Domain errors map to their status code and message; everything else is
// logged and collapsed into a generic localized 500 body.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				"error", err.Error(),
				"details", appErr.Details(),
				"path", c.Request().URL.Path,
				"method", c.Request().Method,
			)
		}

		c.JSON(appErr.HTTPCode(), map[string]string{"error": appErr.Message()})

		return
	}

	// Echo's own HTTPError covers unmatched routes and method mismatches.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			response.Error(c, http.StatusNotFound, domainerrors.ErrRouteNotFound.Message())

			return
		}

		c.JSON(httpErr.Code, map[string]string{"error": http.StatusText(httpErr.Code)})

		return
	}

	// Default to internal error, log the cause server-side, return a generic body.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternal.Message())
}
