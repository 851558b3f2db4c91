package api

import (
	"html"
	"regexp"
)

// stripHTML removes HTML tags and decodes entities. Comment content is
// treated as text everywhere downstream; this is for terminal display,
// not a security boundary.
var (
	htmlTagRe   = regexp.MustCompile(`<[^>]*>`)
	lineBreakRe = regexp.MustCompile(`(?i)</p>|<br\s*/?>`)
)

func stripHTML(s string) string {
	// Replace paragraph ends and breaks with newlines
	s = lineBreakRe.ReplaceAllString(s, "\n")
	s = htmlTagRe.ReplaceAllString(s, "")
	return html.UnescapeString(s)
}
