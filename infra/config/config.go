package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application-level configuration.
type Config struct {
	ServerURL   string // e.g. "https://comunidade.example.org"
	CookiesPath string // Path to the cookies file holding sessionid/csrftoken
	LogPath     string // Path to the debug/error log file
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first, if present (values already in the
// environment win).
//
//	PARISHTERM_SERVER   — backend base URL (required)
//	PARISHTERM_COOKIES  — cookies file (default: ~/.config/parishterm/cookies)
//	PARISHTERM_LOG      — log file (default: ~/.local/state/parishterm/parishterm.log)
func Load() (Config, error) {
	_ = godotenv.Load()

	server := strings.TrimSpace(os.Getenv("PARISHTERM_SERVER"))
	if server == "" {
		return Config{}, fmt.Errorf("PARISHTERM_SERVER is required")
	}
	parsed, err := url.Parse(server)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return Config{}, fmt.Errorf("invalid PARISHTERM_SERVER: must be an absolute URL")
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return Config{}, fmt.Errorf("invalid PARISHTERM_SERVER: scheme must be http or https")
	}
	server = strings.TrimRight(parsed.String(), "/")

	cookiesPath := os.Getenv("PARISHTERM_COOKIES")
	if cookiesPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		cookiesPath = filepath.Join(home, ".config", "parishterm", "cookies")
	}

	logPath := os.Getenv("PARISHTERM_LOG")
	if logPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		logPath = filepath.Join(home, ".local", "state", "parishterm", "parishterm.log")
	}

	return Config{
		ServerURL:   server,
		CookiesPath: cookiesPath,
		LogPath:     logPath,
	}, nil
}
