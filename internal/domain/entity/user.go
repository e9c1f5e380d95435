// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents a back-office account. Only users holding the admin role may
// trigger broadcasts; the authenticator confirms the role with a database
// lookup rather than trusting token claims alone.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`      // Login email, unique.
	PasswordHash string    `json:"-"`          // Bcrypt hash of the password.
	Role         string    `json:"role"`       // Account role (admin, user).
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}

// IsAdmin reports whether the user holds the administrator capability.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
