// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bookstore/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether a user with the given email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByName reports whether a user with the given display name is registered.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}
