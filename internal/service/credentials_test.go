package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/domain/model"
	mocks "github.com/inkwell-dev/inkwell/internal/mocks/auth"
)

func TestStoreVerifier_Verify(t *testing.T) {
	users := mocks.NewMemoryUserStore()
	hasher := &mocks.MockPasswordHasher{}
	ctx := context.Background()

	_, err := users.Create(ctx, model.CreateUserParams{
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed:sup3rsecret",
	})
	require.NoError(t, err)

	v := NewStoreVerifier(users, hasher)

	user, err := v.Verify(ctx, "alice@example.com", "sup3rsecret")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = v.Verify(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrBadPassword)

	_, err = v.Verify(ctx, "nobody@example.com", "sup3rsecret")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestStoreVerifier_StoreFailure(t *testing.T) {
	users := mocks.NewMemoryUserStore()
	users.CreateErr = assert.AnError

	v := NewStoreVerifier(&failingUserStore{}, &mocks.MockPasswordHasher{})

	_, err := v.Verify(context.Background(), "alice@example.com", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownUser)
	assert.Contains(t, err.Error(), "lookup user")
}

// failingUserStore errors on every call, simulating a down database.
type failingUserStore struct{}

func (failingUserStore) Create(context.Context, model.CreateUserParams) (*model.User, error) {
	return nil, assert.AnError
}

func (failingUserStore) GetByEmail(context.Context, string) (*model.User, error) {
	return nil, assert.AnError
}
