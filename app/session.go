package app

import "context"

// SessionService identifies the authenticated user, if any.
type SessionService interface {
	// CurrentUserID returns the session user's id as a string, or an
	// empty string when browsing anonymously.
	CurrentUserID(ctx context.Context) (string, error)
}
