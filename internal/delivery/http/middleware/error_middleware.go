package middleware

import (
	"log/slog"
	"net/http"

	"mugclub/internal/delivery/http/response"
	domainerrors "mugclub/internal/domain/errors"

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Client mistakes
// render as "fail" envelopes, everything else as "error".
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		messages := []string{appErr.Message()}
		if appErr.Details() != "" {
			messages = append(messages, appErr.Details())
		}

		if appErr.HTTPCode() < http.StatusInternalServerError {
			_ = response.Fail(c, appErr.HTTPCode(), messages...)

			return
		}

		m.logger.Error("Request failed",
			"error", err.Error(),
			"code", appErr.ErrorCode(),
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
		)
		_ = response.Error(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok {
			message = s
		}

		if httpErr.Code < http.StatusInternalServerError {
			_ = response.Fail(c, httpErr.Code, message)

			return
		}

		_ = response.Error(c, httpErr.Code, message)

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Error(c, http.StatusInternalServerError, "Internal server error")
}
