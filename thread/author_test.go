package thread

import (
	"testing"

	"parishterm/domain"
)

func TestIsAuthor(t *testing.T) {
	tests := []struct {
		name     string
		authorID string
		viewerID string
		want     bool
	}{
		{name: "exact match", authorID: "7", viewerID: "7", want: true},
		{name: "whitespace normalized", authorID: " 7 ", viewerID: "7", want: true},
		{name: "numeric mismatch", authorID: "7", viewerID: "8", want: false},
		{name: "anonymous viewer", authorID: "7", viewerID: "", want: false},
		{name: "null sentinel", authorID: "7", viewerID: "null", want: false},
		{name: "null author null viewer", authorID: "null", viewerID: "null", want: false},
		{name: "padded numeric is not equal", authorID: "7", viewerID: "07", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := domain.Comment{AuthorID: tc.authorID}
			if got := IsAuthor(c, tc.viewerID); got != tc.want {
				t.Fatalf("IsAuthor(%q, %q) = %v, want %v", tc.authorID, tc.viewerID, got, tc.want)
			}
		})
	}
}
