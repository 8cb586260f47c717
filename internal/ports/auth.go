package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
)

// PasswordHasher derives and checks password hashes. Hash respects ctx so a
// slow cost factor cannot hold a request past its deadline.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches hash. It returns false for any
	// malformed hash rather than an error; callers treat all failures the same.
	Verify(hash, password string) bool
}

// CredentialVerifier checks an email/password pair and returns the matching
// user. It is the pluggable strategy behind login; the default implementation
// reads the user store, but tests and alternate backends substitute their own.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (model.User, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
