package service

import (
	"context"
	"errors"

	"github.com/inkwell-dev/inkwell/internal/data"
	domainauth "github.com/inkwell-dev/inkwell/internal/domain/auth"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// CommentStore is the slice of the comment repository the comment service needs.
type CommentStore interface {
	Create(ctx context.Context, req *model.CreateCommentRequest) (*model.Comment, error)
	ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
}

// CommentService provides comment operations over the comment store.
type CommentService struct {
	comments CommentStore
}

// NewCommentService constructs a new CommentService.
func NewCommentService(comments CommentStore) *CommentService {
	return &CommentService{comments: comments}
}

// Add posts a comment as the given session's user. The commenter's name and
// avatar are snapshotted from the session, never from form input.
func (s *CommentService) Add(ctx context.Context, sess domainauth.Session, postID, body string) (*model.Comment, error) {
	req := &model.CreateCommentRequest{
		PostID:     postID,
		AuthorName: sess.Name,
		AvatarURL:  sess.AvatarURL,
		Body:       body,
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	comment, err := s.comments.Create(ctx, req)
	if err != nil {
		if errors.Is(err, data.ErrCommentPostMissing) {
			return nil, apperrors.NotFound("post not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not add comment")
	}
	return comment, nil
}

// ForPost lists a post's comments in reading order.
func (s *CommentService) ForPost(ctx context.Context, postID string) ([]*model.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not load comments")
	}
	return comments, nil
}
