//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
)

// Comment represents a reader comment on a post. Author name and avatar are
// snapshotted from the commenting user's session at creation time.
type Comment struct {
	ID         string    `json:"id"          db:"id"`
	PostID     string    `json:"post_id"     db:"post_id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	AvatarURL  string    `json:"avatar_url"  db:"avatar_url"`
	Body       string    `json:"body"        db:"body"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
}

// CreateCommentRequest represents parameters to create a Comment.
type CreateCommentRequest struct {
	PostID     string `json:"post_id"`
	AuthorName string `json:"author_name"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Body       string `json:"body"`
}

// Validate validates CreateCommentRequest.
func (r *CreateCommentRequest) Validate() error {
	if strings.TrimSpace(r.PostID) == "" {
		return errors.New("post_id is required")
	}
	if strings.TrimSpace(r.AuthorName) == "" {
		return errors.New("author_name is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		return errors.New("body is required and cannot be empty")
	}
	return nil
}
