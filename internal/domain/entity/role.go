// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser is the only role allowed to operate on the store.
	RoleUser Role = "USER"
	// RoleNotAdmin exists solely to be rejected at registration and by the
	// mutation guard. It is never granted any capability.
	RoleNotAdmin Role = "NOT_ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleNotAdmin:
		return true
	default:
		return false
	}
}

// CanMutateBooks reports whether this role may insert, update, or delete books.
func (r Role) CanMutateBooks() bool {
	return r == RoleUser
}
