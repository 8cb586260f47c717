//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"time"

	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// MinPasswordLen is the minimum accepted password length for registration.
const MinPasswordLen = 6

// User represents a registered account. PasswordHash is opaque and must
// never be logged or rendered.
type User struct {
	ID           string          `json:"id"         db:"id"`
	Name         string          `json:"name"       db:"name"`
	Email        string          `json:"email"      db:"email"`
	PasswordHash string          `json:"-"          db:"password_hash"`
	Role         domainauth.Role `json:"role"       db:"role"`
	AvatarURL    string          `json:"avatar_url" db:"avatar_url"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// RegisterRequest represents parameters submitted by the registration form.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	// Password2 is the confirmation field ("password2" in the form).
	Password2 string `json:"password2"`
}

// Validate checks the registration request and collects every failure
// rather than stopping at the first, so the form can show the whole list.
// Field order matches the form: presence, match, length.
func (r *RegisterRequest) Validate() error {
	var errs apperrors.ValidationErrors

	if r.Name == "" || r.Email == "" || r.Password == "" || r.Password2 == "" {
		errs = append(errs, apperrors.ValidationField("name", "Please fill in all fields."))
	}
	if r.Password != r.Password2 {
		errs = append(errs, apperrors.ValidationField("password2", "Passwords do not match"))
	}
	if len(r.Password) < MinPasswordLen {
		errs = append(errs, apperrors.ValidationField("password", "Password must be at least 6 characters long."))
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateUserParams carries the persisted shape of a new user. The hash is
// produced by the password hasher; the avatar is derived from the email.
type CreateUserParams struct {
	Name         string
	Email        string
	PasswordHash string
	Role         domainauth.Role
	AvatarURL    string
}
