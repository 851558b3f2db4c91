package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"parishterm/app"
	"parishterm/domain"
)

// commentService implements app.CommentService against the backend's
// comment endpoints. Ownership is not decided here: the display layer
// derives it from the author id, in one place.
type commentService struct {
	client *Client
}

// NewCommentService creates a CommentService.
func NewCommentService(client *Client) *commentService {
	return &commentService{client: client}
}

// commentPayload is the wire shape of one comment. Ids arrive as JSON
// numbers or strings depending on the serializer variant, so every id
// field is a json.Number and normalized to a string.
type commentPayload struct {
	ID         json.Number `json:"id"`
	Post       json.Number `json:"post"`
	Parent     json.Number `json:"parent"`
	AuthorID   json.Number `json:"author_id"`
	Author     json.Number `json:"author"` // Older serializers send "author" instead of "author_id".
	AuthorName string      `json:"author_name"`
	UserPhoto  string      `json:"user_photo"`
	Content    string      `json:"content"`
	Created    string      `json:"created"`
	LikesCount int         `json:"likes_count"`
	Likes      int         `json:"likes"` // Older serializers send "likes".
	Liked      bool        `json:"liked"`
}

func (s *commentService) List(_ context.Context, postID string) ([]domain.Comment, error) {
	data, err := s.client.Get("/api2/comments/" + postID)
	if err != nil {
		return nil, fmt.Errorf("fetching comments: %w", err)
	}

	var payloads []commentPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parsing comments: %w", err)
	}

	comments := make([]domain.Comment, 0, len(payloads))
	for _, p := range payloads {
		comments = append(comments, s.toDomain(p))
	}
	return comments, nil
}

func (s *commentService) Create(_ context.Context, postID, parentID, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}

	// The author is inferred server-side from the session cookie; the
	// client never claims an author id.
	body := map[string]string{"content": content}
	if parentID != "" {
		body["parent"] = parentID
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return domain.Comment{}, fmt.Errorf("encoding comment: %w", err)
	}

	data, err := s.client.Post("/api2/comments/add/"+postID, bytes.NewReader(encoded))
	if err != nil {
		return domain.Comment{}, fmt.Errorf("posting comment: %w", mapStatus(err))
	}
	return s.parseComment(data)
}

func (s *commentService) Update(_ context.Context, id, content string) (domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Comment{}, domain.ErrEmptyComment
	}

	encoded, err := json.Marshal(map[string]string{"content": content})
	if err != nil {
		return domain.Comment{}, fmt.Errorf("encoding comment: %w", err)
	}

	data, err := s.client.Patch("/api2/comments/update/"+id, bytes.NewReader(encoded))
	if err != nil {
		return domain.Comment{}, fmt.Errorf("updating comment: %w", mapStatus(err))
	}
	return s.parseComment(data)
}

func (s *commentService) Delete(_ context.Context, id string) error {
	if _, err := s.client.Delete("/api2/comments/delete/" + id); err != nil {
		return fmt.Errorf("deleting comment: %w", mapStatus(err))
	}
	return nil
}

// likePayload is the server's authoritative answer to a like toggle.
type likePayload struct {
	LikeCount int  `json:"like_count"`
	Liked     bool `json:"liked"`
}

func (s *commentService) ToggleLike(_ context.Context, id string) (app.LikeState, error) {
	data, err := s.client.Post("/blog/comment/like/"+id+"/", nil)
	if err != nil {
		return app.LikeState{}, fmt.Errorf("toggling like: %w", mapStatus(err))
	}

	var p likePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return app.LikeState{}, fmt.Errorf("parsing like response: %w", err)
	}
	return app.LikeState{Count: p.LikeCount, Liked: p.Liked}, nil
}

func (s *commentService) parseComment(data []byte) (domain.Comment, error) {
	var p commentPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return domain.Comment{}, fmt.Errorf("parsing comment: %w", err)
	}
	return s.toDomain(p), nil
}

func (s *commentService) toDomain(p commentPayload) domain.Comment {
	authorID := p.AuthorID.String()
	if authorID == "" {
		authorID = p.Author.String()
	}
	likes := p.LikesCount
	if likes == 0 {
		likes = p.Likes
	}

	return domain.Comment{
		ID:         p.ID.String(),
		PostID:     p.Post.String(),
		ParentID:   p.Parent.String(),
		AuthorID:   authorID,
		AuthorName: p.AuthorName,
		UserPhoto:  p.UserPhoto,
		Content:    stripHTML(p.Content),
		CreatedAt:  parseCreated(p.Created),
		LikesCount: likes,
		Liked:      p.Liked,
	}
}

// mapStatus converts authorization and not-found responses into the
// domain sentinels the UI distinguishes.
func mapStatus(err error) error {
	switch {
	case IsStatus(err, http.StatusForbidden), IsStatus(err, http.StatusUnauthorized):
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	case IsStatus(err, http.StatusNotFound):
		return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
	default:
		return err
	}
}

// createdLayouts are the timestamp formats the backend has been seen
// emitting. An unparseable or empty value leaves the zero time, which
// the UI renders as "just now".
var createdLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04",
}

func parseCreated(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
