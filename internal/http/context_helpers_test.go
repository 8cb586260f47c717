package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionContextRoundTrip(t *testing.T) {
	session := userSession("s1")
	ctx := SetSessionInContext(t.Context(), &session)

	got, ok := GetUserSessionFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "s1", got.ID)
	assert.False(t, IsAnonymous(ctx))
}

func TestSessionContext_NilSessionLeavesContextUnchanged(t *testing.T) {
	ctx := SetSessionInContext(t.Context(), nil)

	_, ok := GetUserSessionFromContext(ctx)
	assert.False(t, ok)
	assert.Nil(t, GetSessionFromContext(ctx))
	assert.True(t, IsAnonymous(ctx))
}

func TestSafeRedirectPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/dashboard", "/dashboard"},
		{"/posts/abc?x=1", "/posts/abc?x=1"},
		{"https://evil.example.com/", "/"},
		{"//evil.example.com/", "/"},
		{"not-a-path", "/"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, safeRedirectPath(tt.in), "input %q", tt.in)
	}
}
