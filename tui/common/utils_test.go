package common

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{name: "zero time is just now", t: time.Time{}, want: "just now"},
		{name: "seconds ago", t: now.Add(-20 * time.Second), want: "just now"},
		{name: "minutes ago", t: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours ago", t: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days ago", t: now.Add(-2 * 24 * time.Hour), want: "2d ago"},
		{name: "old date", t: now.Add(-30 * 24 * time.Hour), want: "Jul 31, 2026"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatTimestamp(tc.t, now); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("short text must pass through: %q", got)
	}
	if got := Truncate("uma mensagem comprida", 8); got != "uma men…" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestFirstLine(t *testing.T) {
	if got := FirstLine("a\nb\nc"); got != "a" {
		t.Fatalf("got %q", got)
	}
	if got := FirstLine("single"); got != "single" {
		t.Fatalf("got %q", got)
	}
}
