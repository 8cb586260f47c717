package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkwell-dev/inkwell/internal/data"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	"github.com/inkwell-dev/inkwell/internal/ports"
)

// Sentinel causes for a failed credential check. Handlers must collapse both
// into one generic message so responses never reveal whether an address is
// registered.
var (
	ErrUnknownUser = errors.New("unknown user")
	ErrBadPassword = errors.New("bad password")
)

// UserStore is the slice of the user repository the auth flows need.
type UserStore interface {
	Create(ctx context.Context, params model.CreateUserParams) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// StoreVerifier checks credentials against the user store. It is the default
// CredentialVerifier.
type StoreVerifier struct {
	users  UserStore
	hasher ports.PasswordHasher
}

// NewStoreVerifier constructs a StoreVerifier.
func NewStoreVerifier(users UserStore, hasher ports.PasswordHasher) *StoreVerifier {
	return &StoreVerifier{users: users, hasher: hasher}
}

// Verify looks up the account and checks the password against its stored
// hash. The lookup miss and the hash mismatch return distinct sentinels for
// logging; callers present them identically.
func (v *StoreVerifier) Verify(ctx context.Context, email, password string) (model.User, error) {
	user, err := v.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return model.User{}, ErrUnknownUser
		}
		return model.User{}, fmt.Errorf("lookup user: %w", err)
	}

	if !v.hasher.Verify(user.PasswordHash, password) {
		return model.User{}, ErrBadPassword
	}

	return *user, nil
}

var _ ports.CredentialVerifier = (*StoreVerifier)(nil)
