//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxPostTitleLen = 255
	// LatestPostsLimit is how many posts the sidebar and home page show.
	LatestPostsLimit = 8
)

// Post represents a published blog post.
type Post struct {
	ID        string    `json:"id"                 db:"id"`
	AuthorID  string    `json:"author_id"          db:"author_id"`
	Title     string    `json:"title"              db:"title"`
	Subtitle  string    `json:"subtitle,omitempty" db:"subtitle"`
	ImgURL    string    `json:"img_url,omitempty"  db:"img_url"`
	Body      string    `json:"body"               db:"body"`
	CreatedAt time.Time `json:"created_at"         db:"created_at"`
}

// CreatePostRequest represents parameters to create a Post.
type CreatePostRequest struct {
	AuthorID string `json:"author_id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImgURL   string `json:"img_url,omitempty"`
	Body     string `json:"body"`
}

// UpdatePostRequest represents parameters to update a Post.
type UpdatePostRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
	ImgURL   string `json:"img_url,omitempty"`
	Body     string `json:"body"`
}

// Validate validates CreatePostRequest.
func (r *CreatePostRequest) Validate() error {
	if strings.TrimSpace(r.AuthorID) == "" {
		return errors.New("author_id is required")
	}
	return validatePostFields(r.Title, r.Body)
}

// Validate validates UpdatePostRequest.
func (r *UpdatePostRequest) Validate() error {
	return validatePostFields(r.Title, r.Body)
}

func validatePostFields(title, body string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(title) > maxPostTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	if strings.TrimSpace(body) == "" {
		return errors.New("body is required and cannot be empty")
	}
	return nil
}
