package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCookies(t *testing.T, content string) *FileCookieSource {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cookies")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing cookies file: %v", err)
	}
	return NewFileCookieSource(path)
}

func TestCookie_PureLookup(t *testing.T) {
	src := writeCookies(t, "# login cookies\nsessionid=abc123\ncsrftoken=tok456\n\n")

	if v, ok := src.Cookie("sessionid"); !ok || v != "abc123" {
		t.Fatalf("sessionid lookup: got %q ok=%v", v, ok)
	}
	if _, ok := src.Cookie("missing"); ok {
		t.Fatalf("missing cookie must report false")
	}
}

func TestCookieHeader_SessionAndCSRFFirst(t *testing.T) {
	src := writeCookies(t, "extra=1\ncsrftoken=tok\nsessionid=sid\n")

	header, err := src.CookieHeader()
	if err != nil {
		t.Fatalf("cookie header: %v", err)
	}
	if !strings.HasPrefix(header, "sessionid=sid; csrftoken=tok") {
		t.Fatalf("session and csrf cookies must lead the header: %q", header)
	}
	if !strings.Contains(header, "extra=1") {
		t.Fatalf("extra cookies must be carried: %q", header)
	}
}

func TestCSRFToken_MissingIsAnError(t *testing.T) {
	src := writeCookies(t, "sessionid=sid\n")
	if _, err := src.CSRFToken(); err == nil {
		t.Fatalf("expected error when csrftoken is absent")
	}
}

func TestLoad_MissingFileIsAnError(t *testing.T) {
	src := NewFileCookieSource(filepath.Join(t.TempDir(), "nope"))
	if _, err := src.CookieHeader(); err == nil {
		t.Fatalf("expected error for missing cookies file")
	}
	if _, ok := src.Cookie("sessionid"); ok {
		t.Fatalf("lookup against missing file must report false")
	}
}
