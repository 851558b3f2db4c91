package api

import (
	"context"
	"encoding/json"
	"fmt"

	"parishterm/app"
	"parishterm/domain"
)

// postService implements app.PostService against the backend's blog
// endpoints.
type postService struct {
	client *Client
}

// NewPostService creates a PostService.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

type postPayload struct {
	ID            json.Number `json:"id"`
	Title         string      `json:"title"`
	AuthorName    string      `json:"author_name"`
	Content       string      `json:"content"`
	Created       string      `json:"created"`
	LikesCount    int         `json:"likes_count"`
	Liked         bool        `json:"liked"`
	CommentsCount int         `json:"comments_count"`
}

func (s *postService) List(_ context.Context, limit int) ([]domain.Post, error) {
	data, err := s.client.Get(fmt.Sprintf("/api2/posts?limit=%d", limit))
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}

	var payloads []postPayload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("parsing posts: %w", err)
	}

	posts := make([]domain.Post, 0, len(payloads))
	for _, p := range payloads {
		posts = append(posts, domain.Post{
			ID:            p.ID.String(),
			Title:         p.Title,
			AuthorName:    p.AuthorName,
			Content:       stripHTML(p.Content),
			CreatedAt:     parseCreated(p.Created),
			LikesCount:    p.LikesCount,
			Liked:         p.Liked,
			CommentsCount: p.CommentsCount,
		})
	}
	return posts, nil
}

func (s *postService) ToggleLike(_ context.Context, id string) (app.LikeState, error) {
	data, err := s.client.Post("/blog/like/"+id+"/", nil)
	if err != nil {
		return app.LikeState{}, fmt.Errorf("toggling post like: %w", mapStatus(err))
	}

	var p likePayload
	if err := json.Unmarshal(data, &p); err != nil {
		return app.LikeState{}, fmt.Errorf("parsing like response: %w", err)
	}
	return app.LikeState{Count: p.LikeCount, Liked: p.Liked}, nil
}
