// Package session reads the browser-style session credentials the
// parish backend expects: a session cookie identifying the user and a
// CSRF token that must accompany every mutating request.
package session

import (
	"fmt"
	"os"
	"strings"
)

// Cookie names the Django-style backend sets.
const (
	SessionCookieName = "sessionid"
	CSRFCookieName    = "csrftoken"
)

// CookieSource supplies session credentials for API requests.
type CookieSource interface {
	// CookieHeader returns the Cookie header value for a request.
	CookieHeader() (string, error)

	// CSRFToken returns the anti-forgery token.
	CSRFToken() (string, error)
}

// FileCookieSource reads cookies from a file on disk, one "name=value"
// pair per line. Blank lines and lines starting with '#' are ignored.
// The file is re-read on every use so a refreshed login takes effect
// without restarting the client.
type FileCookieSource struct {
	path string
}

// NewFileCookieSource creates a CookieSource backed by the given file.
func NewFileCookieSource(path string) *FileCookieSource {
	return &FileCookieSource{path: path}
}

// Cookie returns the value of a single named cookie, or false when the
// cookie is absent. Pure lookup, no side effects.
func (f *FileCookieSource) Cookie(name string) (string, bool) {
	cookies, err := f.load()
	if err != nil {
		return "", false
	}
	v, ok := cookies[name]
	return v, ok
}

// CookieHeader builds the Cookie header from every pair in the file.
func (f *FileCookieSource) CookieHeader() (string, error) {
	cookies, err := f.load()
	if err != nil {
		return "", err
	}
	if len(cookies) == 0 {
		return "", fmt.Errorf("cookies file %s has no cookies", f.path)
	}
	pairs := make([]string, 0, len(cookies))
	// Session first so the header stays stable for logging and tests.
	if v, ok := cookies[SessionCookieName]; ok {
		pairs = append(pairs, SessionCookieName+"="+v)
	}
	if v, ok := cookies[CSRFCookieName]; ok {
		pairs = append(pairs, CSRFCookieName+"="+v)
	}
	for name, v := range cookies {
		if name == SessionCookieName || name == CSRFCookieName {
			continue
		}
		pairs = append(pairs, name+"="+v)
	}
	return strings.Join(pairs, "; "), nil
}

// CSRFToken returns the csrftoken cookie value.
func (f *FileCookieSource) CSRFToken() (string, error) {
	cookies, err := f.load()
	if err != nil {
		return "", err
	}
	token, ok := cookies[CSRFCookieName]
	if !ok || token == "" {
		return "", fmt.Errorf("cookies file %s has no %s", f.path, CSRFCookieName)
	}
	return token, nil
}

func (f *FileCookieSource) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("reading cookies from %s: %w", f.path, err)
	}

	cookies := make(map[string]string)
	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" {
			continue
		}
		cookies[name] = value
	}
	return cookies, nil
}
