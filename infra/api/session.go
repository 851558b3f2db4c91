package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// sessionService implements app.SessionService.
type sessionService struct {
	client *Client
}

// NewSessionService creates a SessionService.
func NewSessionService(client *Client) *sessionService {
	return &sessionService{client: client}
}

type userPayload struct {
	ID json.Number `json:"id"`
}

// CurrentUserID asks the backend who the session cookie belongs to.
// An unauthenticated session is not an error: the client then browses
// anonymously with authorship-gated actions hidden.
func (s *sessionService) CurrentUserID(_ context.Context) (string, error) {
	data, err := s.client.Get("/api2/users/me")
	if err != nil {
		if IsStatus(err, http.StatusUnauthorized) || IsStatus(err, http.StatusForbidden) {
			return "", nil
		}
		return "", fmt.Errorf("fetching current user: %w", err)
	}

	var p userPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return "", fmt.Errorf("parsing current user: %w", err)
	}
	id := p.ID.String()
	if id == "null" {
		id = ""
	}
	return id, nil
}
