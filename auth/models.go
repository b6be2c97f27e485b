// Package auth is responsible for authentication and authorization:
// user registration, login, token issuance and verification, the request
// identity resolver, and the policy engine that gates mutating operations.
package auth

import "time"

// Role is the privilege level of a user. Exactly one role per user.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "USER"
	// RoleAdmin grants access to admin-gated operations and the admin
	// override on owner-or-admin gates.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a user of the application. It doubles as the principal
// attached to authenticated requests. The password hash is never serialized.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"nome"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Do not expose the hash
	Photo          *string   `json:"foto,omitempty"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"creationTimestamp"`
	UpdatedAt      time.Time `json:"updateTimestamp"`
}

// IsAdmin reports whether the user holds the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
