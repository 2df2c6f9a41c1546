package auth

import (
	"testing"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RejectsInvalidConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.TTL = time.Minute

	_, err := NewJWTService(cfg)
	assert.Error(t, err, "empty secret must be rejected")

	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 0

	_, err = NewJWTService(cfg)
	assert.Error(t, err, "non-positive ttl must be rejected")
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 15*time.Minute)

	before := time.Now()
	token, err := svc.Issue("alice@example.com", entity.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Subject)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.False(t, claims.IssuedAt.Before(before.Truncate(time.Second)))
	assert.Equal(t, claims.IssuedAt.Add(15*time.Minute), claims.Expiry)
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Nanosecond)

	token, err := svc.Issue("alice@example.com", entity.RoleUser)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	// Correctly signed but stale; must classify as expired, never as a
	// signature failure.
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
	assert.NotErrorIs(t, err, service.ErrTokenBadSignature)
}

func TestJWTService_Validate_BadSignature(t *testing.T) {
	issuer := newTestJWTService(t, "issuer-secret", 15*time.Minute)
	verifier := newTestJWTService(t, "verifier-secret", 15*time.Minute)

	token, err := issuer.Issue("alice@example.com", entity.RoleUser)
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenBadSignature)
}

func TestJWTService_Validate_Malformed(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 15*time.Minute)

	_, err := svc.Validate("not.a.token")
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_Validate_Empty(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 15*time.Minute)

	_, err := svc.Validate("")
	assert.ErrorIs(t, err, service.ErrTokenEmptyOrInvalid)
}

func TestJWTService_Validate_UnsupportedAlgorithm(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 15*time.Minute)

	now := time.Now()
	claims := sessionClaims{
		Role: entity.RoleUser.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice@example.com",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenUnsupported)
}

func TestJWTService_ExpiresAt(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 30*time.Minute)

	issuedAt := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, issuedAt.Add(30*time.Minute), svc.ExpiresAt(issuedAt))
}
