// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// The signing key and TTL come from configuration at startup and never change
// for the process lifetime.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// sessionClaims is the on-the-wire claim set for session tokens.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.JWT.TTL <= 0 {
		return nil, errors.New("jwt ttl must be positive")
	}

	return &jwtService{
		secret: []byte(cfg.JWT.Secret),
		ttl:    cfg.JWT.TTL,
	}, nil
}

// Issue creates a signed session token bound to the subject email and role.
// Tokens issued within the same second for the same subject carry identical
// claims and therefore identical bytes; callers must not assume uniqueness
// beyond subject+issuedAt+signature.
func (s *jwtService) Issue(subjectEmail string, role entity.Role) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectEmail,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Validate verifies the token's signature and expiry and returns its claims.
// Errors are mapped onto the domain's token failure kinds so the middleware
// can log and count each kind separately.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	if tokenString == "" {
		return nil, service.ErrTokenEmptyOrInvalid
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		// Reject any signing scheme other than the HMAC family.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, service.ErrTokenUnsupported
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid {
		return nil, service.ErrTokenEmptyOrInvalid
	}

	out := &service.Claims{
		Subject: claims.Subject,
		Role:    entity.Role(claims.Role),
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.Expiry = claims.ExpiresAt.Time
	}

	return out, nil
}

// ExpiresAt reports the expiry a token issued at the given instant would carry.
func (s *jwtService) ExpiresAt(issuedAt time.Time) time.Time {
	return issuedAt.Add(s.ttl)
}

// classifyTokenError maps golang-jwt parse errors onto the domain token
// failure kinds. Expiry is checked before signature kinds so that a correctly
// signed but stale token is always reported as expired.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, service.ErrTokenUnsupported):
		return service.ErrTokenUnsupported
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return service.ErrTokenBadSignature
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return service.ErrTokenUnsupported
	default:
		return service.ErrTokenEmptyOrInvalid
	}
}
