package app

import (
	"context"

	"parishterm/domain"
)

// PostService fetches the community posts that own comment threads.
type PostService interface {
	// List returns posts, newest first.
	List(ctx context.Context, limit int) ([]domain.Post, error)

	// ToggleLike flips the viewer's like on a post.
	ToggleLike(ctx context.Context, id string) (LikeState, error)
}
