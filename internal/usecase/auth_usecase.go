// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"bookstore/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Role            entity.Role
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the registration receipt: a correlation id for
// tracing, the completion timestamp, and the echoed name.
type RegisterOutput struct {
	CorrelationID string
	Timestamp     time.Time
	Name          string
}

// SignInOutput returns the issued session token and the signed-in identity's
// public details.
type SignInOutput struct {
	UserID    string
	Token     string
	TokenType string
	Name      string
	Roles     []entity.Role
	ExpiresAt time.Time
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new identity after the ordered uniqueness, password
	// and role checks pass.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// SignIn verifies credentials and issues a session token. Every
	// credential failure surfaces as the same bad-credentials error.
	SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error)
}
