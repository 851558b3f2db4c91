package posts

import (
	"fmt"
	"strings"
	"time"

	"parishterm/tui/common"
)

// View renders the post feed.
func (m Model) View() string {
	var b strings.Builder

	title := common.AppTitleStyle.Render("⛪ parishterm")
	tagline := common.TaglineStyle.Render("<the parish, from your terminal>")
	b.WriteString(title + tagline + "\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + m.spinner.View() + " Loading posts...\n")

	case m.err != nil:
		b.WriteString("  " + common.ErrorStyle.Render("Couldn't load posts. Check your connection and press F5.") + "\n")

	case len(m.items) == 0:
		b.WriteString("  " + common.MetadataStyle.Render("No posts yet.") + "\n")

	default:
		now := time.Now()
		for i, p := range m.items {
			style := common.UnselectedStyle
			if i == m.cursor {
				style = common.SelectedStyle
			}

			var card strings.Builder
			card.WriteString(common.AuthorStyle.Render(p.Title) + "\n")
			card.WriteString(common.MetadataStyle.Render(p.AuthorName) + " " +
				common.TimestampStyle.Render(common.FormatTimestamp(p.CreatedAt, now)) + "\n")
			excerpt := common.Truncate(common.FirstLine(p.Content), 90)
			if excerpt != "" {
				card.WriteString(common.ContentStyle.Render(excerpt) + "\n")
			}

			likeIcon := "♡"
			likeStyle := common.MetadataStyle
			if p.Liked {
				likeIcon = "♥"
				likeStyle = common.LikeActiveStyle
			}
			card.WriteString(common.MetadataStyle.Render(fmt.Sprintf("%s %d  ·  🗨 %d comments",
				likeStyle.Render(likeIcon), p.LikesCount, p.CommentsCount)))

			b.WriteString(style.Width(max(m.width-6, 60)).Render(card.String()) + "\n")
		}
	}

	b.WriteString(common.StatusBarStyle.Render("  enter: comments • l: like • F5: refresh • q: quit"))
	return b.String()
}
