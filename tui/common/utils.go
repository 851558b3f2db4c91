package common

import (
	"fmt"
	"strings"
	"time"
)

// FormatTimestamp renders a comment timestamp for display. A zero time
// (the server sent no created field, e.g. an optimistic local comment)
// reads as "just now".
func FormatTimestamp(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "just now"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 02, 2006")
	}
}

// Truncate cuts text to at most n runes, appending an ellipsis when
// something was cut.
func Truncate(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	if n <= 1 {
		return "…"
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}

// FirstLine returns text up to the first newline.
func FirstLine(text string) string {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return text[:i]
	}
	return text
}
