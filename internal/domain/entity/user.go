// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system, representing a registered principal.
// Name and email are globally unique; the id and role never change after
// registration.
type User struct {
	ID           string    // Short prefixed identifier, e.g. "User3f9a1".
	Name         string    // The user's unique display name.
	Email        string    // The user's unique email, used as the login identifier.
	PasswordHash string    // bcrypt hash of the user's password.
	Role         Role      // The user's role, assigned at registration.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this record.
}

// NewUserID generates a short user identifier in the "User" + 5 hex chars form.
func NewUserID() string {
	return "User" + strings.ReplaceAll(uuid.New().String(), "-", "")[:5]
}
