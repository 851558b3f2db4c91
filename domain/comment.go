package domain

import "time"

// Comment is a single comment record from the parish backend.
// IDs are strings regardless of how the server encodes them on the
// wire; the API layer normalizes numeric ids before they reach here.
type Comment struct {
	ID         string
	PostID     string // Owning post (the thread's container)
	ParentID   string // Empty for top-level comments
	AuthorID   string
	AuthorName string
	UserPhoto  string    // Avatar URL; empty means placeholder glyph
	Content    string    // Plain text, HTML stripped
	CreatedAt  time.Time // Zero value renders as "just now"
	LikesCount int
	Liked      bool // Whether the viewer has liked this comment
}

// CommentNode is a Comment plus its ordered replies. Reply order
// follows the order replies appeared in the fetched flat list.
type CommentNode struct {
	Comment
	Replies []*CommentNode
}
