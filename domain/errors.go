package domain

import "errors"

var (
	// ErrUnauthorized indicates the server refused the action (viewer is not the author).
	ErrUnauthorized = errors.New("not authorized")

	// ErrNotFound indicates the target comment or post no longer exists.
	ErrNotFound = errors.New("not found")

	// ErrEmptyComment indicates the user submitted empty or whitespace-only content.
	ErrEmptyComment = errors.New("comment cannot be empty")
)
