package app

import (
	"context"

	"parishterm/domain"
)

// LikeState is the server's authoritative like state after a toggle.
// The client never computes counts locally.
type LikeState struct {
	Count int
	Liked bool
}

// CommentService reads and mutates comment threads on the parish backend.
type CommentService interface {
	// List returns the flat comment list for a post, oldest first.
	List(ctx context.Context, postID string) ([]domain.Comment, error)

	// Create adds a comment to a post. parentID is empty for top-level
	// comments. The author is inferred server-side from the session.
	Create(ctx context.Context, postID, parentID, content string) (domain.Comment, error)

	// Update replaces a comment's content. Returns domain.ErrUnauthorized
	// when the session user is not the author.
	Update(ctx context.Context, id, content string) (domain.Comment, error)

	// Delete removes a comment by id.
	Delete(ctx context.Context, id string) error

	// ToggleLike flips the viewer's like on a comment and returns the
	// server's new count and liked flag.
	ToggleLike(ctx context.Context, id string) (LikeState, error)
}
