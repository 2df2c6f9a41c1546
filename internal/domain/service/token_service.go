package service

import (
	"errors"
	"time"

	"bookstore/internal/domain/entity"
)

// Token validation failure kinds. Each is independently distinguishable so
// callers can log and count them separately; the HTTP layer still surfaces
// all of them as a generic "not authenticated".
var (
	// ErrTokenBadSignature indicates a tampered token or one signed with a different key.
	ErrTokenBadSignature = errors.New("invalid token signature")
	// ErrTokenMalformed indicates a token that cannot be parsed into the expected structure.
	ErrTokenMalformed = errors.New("malformed token")
	// ErrTokenExpired indicates a structurally valid, correctly signed token past its expiry.
	ErrTokenExpired = errors.New("token is expired")
	// ErrTokenUnsupported indicates a structurally valid token using an unrecognized signing scheme.
	ErrTokenUnsupported = errors.New("token is unsupported")
	// ErrTokenEmptyOrInvalid indicates an empty token string or one that is not
	// even parseable as the envelope format.
	ErrTokenEmptyOrInvalid = errors.New("token string is empty or invalid")
)

// Claims is the identity information carried by a validated session token.
type Claims struct {
	Subject  string      // The email of the signed-in user.
	Role     entity.Role // The role the user held at sign-in.
	IssuedAt time.Time
	Expiry   time.Time
}

// TokenService defines the interface for issuing and validating stateless,
// signed, time-bounded session tokens. Validation never mutates state and
// never extends expiry.
type TokenService interface {
	// Issue creates a signed token bound to the subject email and role, with
	// expiry = now + the configured TTL.
	Issue(subjectEmail string, role entity.Role) (string, error)

	// Validate verifies the token's signature and expiry and returns its
	// claims. Failures are one of the ErrToken* kinds above.
	Validate(tokenString string) (*Claims, error)

	// ExpiresAt reports the expiry a token issued at the given instant would
	// carry. Pure; used for display only.
	ExpiresAt(issuedAt time.Time) time.Time
}
