package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"bookstore/internal/delivery/http/response"
	domainerrors "bookstore/internal/domain/errors"

	"github.com/google/uuid"
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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.writeError(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		m.writeError(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	// Default to internal error: log the cause, return a generic message
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
}

func (m *ErrorMiddleware) writeError(c echo.Context, code int, errorCode, message, details string) {
	if err := c.JSON(code, response.Response{
		Timestamp:     time.Now(),
		CorrelationID: uuid.New().String(),
		Success:       false,
		Code:          code,
		Message:       message,
		Error: &response.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	}); err != nil {
		m.logger.Error("Failed to write error response", slog.String("error", err.Error()))
	}
}
