// Package api speaks the parish backend's JSON endpoints.
package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"parishterm/infra/session"
)

// Client is a thin HTTP wrapper for the parish backend API. It handles
// base URL construction, cookie-based session credentials, and the
// CSRF token header on mutating requests.
type Client struct {
	baseURL string
	cookies session.CookieSource
	http    *http.Client
	log     *zap.Logger
}

// NewClient creates a backend API client.
func NewClient(baseURL string, cookies session.CookieSource, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		cookies: cookies,
		http:    &http.Client{},
		log:     log,
	}
}

// StatusError reports a non-2xx response. Callers use Code to tell
// authorization failures apart from everything else.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Body)
}

// IsStatus reports whether err carries the given HTTP status code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// Get performs a GET request with session credentials.
func (c *Client) Get(path string) ([]byte, error) {
	return c.do(http.MethodGet, path, nil)
}

// Post performs a POST request with session credentials and CSRF token.
func (c *Client) Post(path string, body io.Reader) ([]byte, error) {
	return c.do(http.MethodPost, path, body)
}

// Patch performs a PATCH request with session credentials and CSRF token.
func (c *Client) Patch(path string, body io.Reader) ([]byte, error) {
	return c.do(http.MethodPatch, path, body)
}

// Delete performs a DELETE request with session credentials and CSRF token.
func (c *Client) Delete(path string) ([]byte, error) {
	return c.do(http.MethodDelete, path, nil)
}

func (c *Client) do(method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	cookieHeader, err := c.cookies.CookieHeader()
	if err == nil && cookieHeader != "" {
		req.Header.Set("Cookie", cookieHeader)
	}
	if method != http.MethodGet {
		token, err := c.cookies.CSRFToken()
		if err != nil {
			return nil, fmt.Errorf("csrf token: %w", err)
		}
		req.Header.Set("X-CSRFToken", token)
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Warn("request rejected",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, &StatusError{Code: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}
