package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// User repository sentinels.
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already registered")

	// Post repository sentinels.
	ErrPostNotFound = errors.New("post not found")

	// Comment repository sentinels.
	ErrCommentPostMissing = errors.New("comment references a missing post")
)
