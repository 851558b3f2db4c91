package domain

import "time"

// Post is a community post that owns a comment thread.
type Post struct {
	ID            string
	Title         string
	AuthorName    string
	Content       string // Plain text, HTML stripped
	CreatedAt     time.Time
	LikesCount    int
	Liked         bool
	CommentsCount int
}
