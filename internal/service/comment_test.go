package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkwell-dev/inkwell/internal/data"
	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// memoryCommentStore is a minimal in-memory CommentStore for unit tests.
type memoryCommentStore struct {
	byPost     map[string][]*model.Comment
	knownPosts map[string]bool
	nextID     int

	err error
}

func newMemoryCommentStore(postIDs ...string) *memoryCommentStore {
	known := make(map[string]bool, len(postIDs))
	for _, id := range postIDs {
		known[id] = true
	}
	return &memoryCommentStore{
		byPost:     make(map[string][]*model.Comment),
		knownPosts: known,
	}
}

func (m *memoryCommentStore) Create(_ context.Context, req *model.CreateCommentRequest) (*model.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	if !m.knownPosts[req.PostID] {
		return nil, data.ErrCommentPostMissing
	}
	m.nextID++
	c := &model.Comment{
		ID:         fmt.Sprintf("comment-%d", m.nextID),
		PostID:     req.PostID,
		AuthorName: req.AuthorName,
		AvatarURL:  req.AvatarURL,
		Body:       req.Body,
	}
	m.byPost[req.PostID] = append(m.byPost[req.PostID], c)
	return c, nil
}

func (m *memoryCommentStore) ListByPost(_ context.Context, postID string) ([]*model.Comment, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byPost[postID], nil
}

func commenterSession() domainauth.Session {
	return domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      domainauth.RoleUser,
		AvatarURL: "https://www.gravatar.com/avatar/abc?s=200",
	}
}

func TestCommentService_Add(t *testing.T) {
	store := newMemoryCommentStore("post-1")
	svc := NewCommentService(store)

	comment, err := svc.Add(context.Background(), commenterSession(), "post-1", "nice post")
	require.NoError(t, err)

	// Identity comes from the session, not the form.
	assert.Equal(t, "Alice", comment.AuthorName)
	assert.Equal(t, commenterSession().AvatarURL, comment.AvatarURL)
	assert.Equal(t, "nice post", comment.Body)
}

func TestCommentService_Add_EmptyBody(t *testing.T) {
	store := newMemoryCommentStore("post-1")
	svc := NewCommentService(store)

	_, err := svc.Add(context.Background(), commenterSession(), "post-1", "   ")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, store.byPost["post-1"])
}

func TestCommentService_Add_MissingPost(t *testing.T) {
	svc := NewCommentService(newMemoryCommentStore())

	_, err := svc.Add(context.Background(), commenterSession(), "post-404", "hello")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCommentService_ForPost(t *testing.T) {
	store := newMemoryCommentStore("post-1")
	svc := NewCommentService(store)
	ctx := context.Background()

	_, err := svc.Add(ctx, commenterSession(), "post-1", "first")
	require.NoError(t, err)
	_, err = svc.Add(ctx, commenterSession(), "post-1", "second")
	require.NoError(t, err)

	comments, err := svc.ForPost(ctx, "post-1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first", comments[0].Body)
	assert.Equal(t, "second", comments[1].Body)
}

func TestCommentService_StoreFailure(t *testing.T) {
	store := newMemoryCommentStore("post-1")
	store.err = assert.AnError
	svc := NewCommentService(store)

	_, err := svc.ForPost(context.Background(), "post-1")
	assert.True(t, apperrors.IsInternal(err))
}
