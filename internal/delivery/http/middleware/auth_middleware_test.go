package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "bookstore/internal/delivery/context"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"
	"bookstore/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/app/books", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newAuthMiddlewareForTest(tokens *mocks.TokenService) *AuthMiddleware {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(tokens, mocks.NoopRecorder{}, logger)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := newAuthMiddlewareForTest(&mocks.TokenService{})
	c, rec := newAuthTestContext(t, "")

	handlerCalled := false
	err := m.Authenticate(func(c echo.Context) error {
		handlerCalled = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.False(t, handlerCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NonBearerHeader(t *testing.T) {
	m := newAuthMiddlewareForTest(&mocks.TokenService{})
	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(c echo.Context) error { return nil })(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Every validation failure kind surfaces as the same generic 401 body.
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	kinds := []error{
		service.ErrTokenBadSignature,
		service.ErrTokenMalformed,
		service.ErrTokenExpired,
		service.ErrTokenUnsupported,
		service.ErrTokenEmptyOrInvalid,
	}

	for _, kindErr := range kinds {
		tokens := &mocks.TokenService{}
		tokens.On("Validate", "bad-token").Return(nil, kindErr)

		m := newAuthMiddlewareForTest(tokens)
		c, rec := newAuthTestContext(t, "Bearer bad-token")

		err := m.Authenticate(func(c echo.Context) error { return nil })(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "NOT_AUTHENTICATED")
		assert.NotContains(t, rec.Body.String(), kindErr.Error(), "failure kind must not leak to the caller")
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := &mocks.TokenService{}
	tokens.On("Validate", "good-token").Return(&service.Claims{
		Subject: "alice@example.com",
		Role:    entity.RoleUser,
	}, nil)

	m := newAuthMiddlewareForTest(tokens)
	c, _ := newAuthTestContext(t, "Bearer good-token")

	err := m.Authenticate(func(c echo.Context) error {
		subject, ok := deliverycontext.GetSubject(c)
		assert.True(t, ok)
		assert.Equal(t, "alice@example.com", subject)

		return c.NoContent(http.StatusOK)
	})(c)

	require.NoError(t, err)
}
