package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_ParsesEnvAndDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PARISHTERM_SERVER", "https://comunidade.example.org/")
	t.Setenv("PARISHTERM_COOKIES", filepath.Join(dir, "cookies"))
	t.Setenv("PARISHTERM_LOG", filepath.Join(dir, "client.log"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ServerURL != "https://comunidade.example.org" {
		t.Fatalf("server URL must be normalized: %q", cfg.ServerURL)
	}
	if cfg.CookiesPath != filepath.Join(dir, "cookies") {
		t.Fatalf("unexpected cookies path: %q", cfg.CookiesPath)
	}
	if cfg.LogPath != filepath.Join(dir, "client.log") {
		t.Fatalf("unexpected log path: %q", cfg.LogPath)
	}
}

func TestLoad_RequiresServer(t *testing.T) {
	t.Setenv("PARISHTERM_SERVER", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PARISHTERM_SERVER is unset")
	}
}

func TestLoad_RejectsRelativeServerURL(t *testing.T) {
	t.Setenv("PARISHTERM_SERVER", "comunidade.example.org")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for URL without scheme")
	}
}

func TestLoad_RejectsNonHTTPScheme(t *testing.T) {
	t.Setenv("PARISHTERM_SERVER", "ftp://files.example.org")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-http scheme")
	}
}
