package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import (
	"fmt"
	"time"
)

// Role represents an application's authorization role.
// Keep string form for easy persistence and cookies.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// UnmarshalText validates roles read from persistence or configuration.
func (r *Role) UnmarshalText(text []byte) error {
	candidate := Role(text)
	if !candidate.Valid() {
		return fmt.Errorf("invalid Role: %q (valid options: user, admin)", text)
	}
	*r = candidate
	return nil
}

// Session is the server-side record persisted for an authenticated user.
// ID is an opaque session token delivered to the client in a cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	AvatarURL string    `json:"avatar_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsAdmin returns true if the session belongs to an admin user.
func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }
