package service

import (
	"context"
	"errors"

	"github.com/inkwell-dev/inkwell/internal/data"
	"github.com/inkwell-dev/inkwell/internal/domain/model"
	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

// PostStore is the slice of the post repository the post service needs.
type PostStore interface {
	Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error)
	GetByID(ctx context.Context, id string) (*model.Post, error)
	ListLatest(ctx context.Context, limit int) ([]*model.Post, error)
	ListAll(ctx context.Context) ([]*model.Post, error)
	Update(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PostService provides blog post operations over the post store.
type PostService struct {
	posts PostStore
}

// NewPostService constructs a new PostService.
func NewPostService(posts PostStore) *PostService {
	return &PostService{posts: posts}
}

// Create publishes a new post.
func (s *PostService) Create(ctx context.Context, req *model.CreatePostRequest) (*model.Post, error) {
	if req == nil {
		return nil, apperrors.Validation("create post request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	post, err := s.posts.Create(ctx, req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not create post")
	}
	return post, nil
}

// Get retrieves a single post.
func (s *PostService) Get(ctx context.Context, id string) (*model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrPostNotFound) {
			return nil, apperrors.NotFound("post not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not load post")
	}
	return post, nil
}

// Latest returns the newest posts for the home page.
func (s *PostService) Latest(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.posts.ListLatest(ctx, model.LatestPostsLimit)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not load posts")
	}
	return posts, nil
}

// All returns every post, newest first.
func (s *PostService) All(ctx context.Context) ([]*model.Post, error) {
	posts, err := s.posts.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not load posts")
	}
	return posts, nil
}

// Update rewrites a post's editable fields.
func (s *PostService) Update(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	post, err := s.posts.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrPostNotFound) {
			return nil, apperrors.NotFound("post not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not update post")
	}
	return post, nil
}

// Delete removes a post and its comments.
func (s *PostService) Delete(ctx context.Context, id string) error {
	ok, err := s.posts.Delete(ctx, id)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "could not delete post")
	}
	if !ok {
		return apperrors.NotFound("post not found")
	}
	return nil
}
