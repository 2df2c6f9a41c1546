package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/delivery/http/response"
	"bookstore/internal/domain/service"
	"bookstore/internal/errors"
	"bookstore/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the bearer session token on protected routes.
// Validation failures are logged and counted with their specific kind; the
// caller only ever sees a generic "not authenticated".
type AuthMiddleware struct {
	tokenSvc service.TokenService
	recorder metrics.Recorder
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, recorder metrics.Recorder, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, recorder: recorder, logger: logger}
}

// Authenticate is the core middleware function that validates the session token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			kind := tokenFailureKind(err)
			m.recorder.RecordTokenValidationFailure(kind)
			m.logger.Warn("Token validation failed",
				slog.String("kind", kind),
				slog.String("request_id", deliverycontext.GetRequestID(c)),
			)

			return response.Unauthorized(c, "NOT_AUTHENTICATED", "Not authenticated")
		}

		// Set the token subject and role on the context for handlers to use.
		deliverycontext.SetSubject(c, claims.Subject)
		c.Set(string(deliverycontext.KeyRole), claims.Role)

		return next(c)
	}
}

// tokenFailureKind names a token validation failure for logs and metrics.
func tokenFailureKind(err error) string {
	switch {
	case errors.Is(err, service.ErrTokenBadSignature):
		return "bad_signature"
	case errors.Is(err, service.ErrTokenMalformed):
		return "malformed"
	case errors.Is(err, service.ErrTokenExpired):
		return "expired"
	case errors.Is(err, service.ErrTokenUnsupported):
		return "unsupported"
	case errors.Is(err, service.ErrTokenEmptyOrInvalid):
		return "empty_or_invalid"
	default:
		return "unknown"
	}
}
