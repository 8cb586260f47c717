package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/data"
	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
)

func TestMockPasswordHasher_RoundTrip(t *testing.T) {
	h := &MockPasswordHasher{}
	ctx := context.Background()

	hash, err := h.Hash(ctx, "secret1")
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret1", hash)

	assert.True(t, h.Verify(hash, "secret1"))
	assert.False(t, h.Verify(hash, "other"))
}

func TestMockPasswordHasher_ForcedError(t *testing.T) {
	h := &MockPasswordHasher{HashErr: assert.AnError}

	_, err := h.Hash(context.Background(), "secret1")
	assert.ErrorIs(t, err, assert.AnError)
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	sess := domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Role:      domainauth.RoleUser,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess, got)

	require.NoError(t, store.Delete(ctx, "sess-1"))
	_, err = store.Get(ctx, "sess-1")
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryUserStore_DuplicateEmail(t *testing.T) {
	store := NewMemoryUserStore()
	ctx := context.Background()

	_, err := store.Create(ctx, model.CreateUserParams{Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = store.Create(ctx, model.CreateUserParams{Name: "B", Email: "a@example.com"})
	assert.ErrorIs(t, err, data.ErrEmailExists)

	_, err = store.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, data.ErrUserNotFound)
}

func TestMockMailer_Records(t *testing.T) {
	m := &MockMailer{}
	msg := model.ContactMessage{Name: "A", ReplyTo: "a@example.com", Body: "hi"}

	require.NoError(t, m.Send(context.Background(), msg))
	require.Len(t, m.Sent, 1)
	assert.Equal(t, msg, m.Sent[0])
}
