package thread

import (
	"strings"

	"parishterm/domain"
)

// IsAuthor reports whether the viewer wrote the comment. Both ids are
// compared as trimmed strings; an absent viewer id or the literal
// "null" sentinel (what the old web client surfaced for anonymous
// sessions) is never an author. Every authorship-gated affordance must
// route through this one check.
func IsAuthor(c domain.Comment, viewerID string) bool {
	viewer := strings.TrimSpace(viewerID)
	if viewer == "" || viewer == "null" {
		return false
	}
	return strings.TrimSpace(c.AuthorID) == viewer
}
