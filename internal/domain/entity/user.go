package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular storefront customer.
	RoleUser Role = "USER"
	// RoleAdmin indicates a back-office administrator.
	RoleAdmin Role = "ADMIN"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// User is an account known to the storefront. Authentication itself is
// handled by an external identity provider; this service only stores the
// account row referenced by orders.
type User struct {
	ID        uuid.UUID // The unique identifier for the user.
	Email     string    // The user's primary contact email, unique across accounts.
	Name      string    // The user's display name. May be empty.
	Role      Role      // Either a regular user or an administrator.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
