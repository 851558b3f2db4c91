package comments

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"parishterm/thread"
	"parishterm/tui/common"
)

const indentPerDepth = 3

// View renders the thread for the currently open post.
func (m Model) View() string {
	st := m.threads[m.post.ID]

	var b strings.Builder
	title := common.AppTitleStyle.Render("⛪ parishterm")
	crumb := common.TaglineStyle.Render("> " + common.Truncate(m.post.Title, 48))
	b.WriteString(title + crumb + "\n\n")

	switch {
	case st == nil || st.phase == Collapsed:
		b.WriteString("  " + common.MetadataStyle.Render("Comments hidden.") + "\n")

	case st.phase == Loading:
		b.WriteString("  " + m.spinner.View() + " Loading comments...\n")

	case st.phase == Expanded:
		m.renderThread(&b, st)
	}

	if st != nil && st.notice != "" {
		style := common.SuccessStyle
		if st.noticeErr {
			style = common.ErrorStyle
		}
		b.WriteString("\n  " + style.Render(st.notice) + "\n")
	}

	b.WriteString(common.StatusBarStyle.Render(m.hints(st)))
	return b.String()
}

func (m Model) renderThread(b *strings.Builder, st *threadState) {
	frags := thread.Flatten(st.forest, m.viewerID)
	if len(frags) == 0 {
		// The transient "be the first" notice is rendered separately;
		// an expanded empty thread has no comment cards at all.
		return
	}

	now := time.Now()
	start, end := m.visibleWindow(st, len(frags))
	for i := start; i < end; i++ {
		f := frags[i]
		b.WriteString(m.renderFragment(f, st, i == st.cursor, now))
	}
	if end < len(frags) {
		b.WriteString("  " + common.MetadataStyle.Render(fmt.Sprintf("… %d more", len(frags)-end)) + "\n")
	}
}

func (m Model) renderFragment(f thread.Fragment, st *threadState, selected bool, now time.Time) string {
	c := f.Comment

	style := common.UnselectedStyle
	if selected {
		style = common.SelectedStyle
	}

	var card strings.Builder

	// Author line: avatar glyph, name, own badge, timestamp.
	avatar := "○"
	if c.UserPhoto != "" {
		avatar = "◉"
	}
	author := avatar + " " + common.AuthorStyle.Render(c.AuthorName)
	if thread.IsAuthor(c, m.viewerID) {
		author += common.OwnBadgeStyle.Render("(you)")
	}
	card.WriteString(author + " " + common.TimestampStyle.Render(common.FormatTimestamp(c.CreatedAt, now)) + "\n")

	// Body, or the inline editor when this comment is being edited.
	if st.editingID == c.ID {
		card.WriteString(st.editArea.View() + "\n")
		if st.saving {
			card.WriteString(common.MetadataStyle.Render("Saving...") + "\n")
		} else {
			card.WriteString(common.MetadataStyle.Render("ctrl+d: save • esc: cancel") + "\n")
		}
	} else {
		width := max(m.cardWidth(f.Depth)-4, 24)
		card.WriteString(common.ContentStyle.Width(width).Render(c.Content) + "\n")

		likeIcon := "♡"
		likeStyle := common.MetadataStyle
		if c.Liked {
			likeIcon = "♥"
			likeStyle = common.LikeActiveStyle
		}
		actions := fmt.Sprintf("↩ r reply · %s l %d", likeStyle.Render(likeIcon), c.LikesCount)
		if f.CanEdit {
			actions += " · e edit · d delete"
		}
		if st.pending[c.ID] {
			actions += "  " + common.MetadataStyle.Render("(sending...)")
		}
		card.WriteString(common.ActionStyle.Render(actions))
	}

	if st.confirmDeleteID == c.ID {
		card.WriteString("\n" + common.ConfirmStyle.Render("Delete this comment? (y/n)"))
	}

	// Indentation scales with reply depth.
	return lipgloss.NewStyle().
		MarginLeft(f.Depth*indentPerDepth).
		Render(style.Width(m.cardWidth(f.Depth)).Render(card.String())) + "\n"
}

func (m Model) cardWidth(depth int) int {
	w := max(m.width-6, 64)
	return max(w-depth*indentPerDepth, 36)
}

// visibleWindow keeps the cursor inside the rendered slice of
// fragments so long threads scroll instead of overflowing.
func (m Model) visibleWindow(st *threadState, total int) (int, int) {
	slots := max((m.height-10)/6, 3)
	if total <= slots {
		return 0, total
	}
	start := 0
	if st.cursor >= slots {
		start = st.cursor - slots + 1
	}
	end := min(start+slots, total)
	return start, end
}

func (m Model) hints(st *threadState) string {
	if st != nil && st.editingID != "" {
		return "  ctrl+d: save • esc: cancel"
	}
	if st != nil && st.confirmDeleteID != "" {
		return "  y: delete • n: keep"
	}
	base := "  c: comment • r: reply • l: like • F5: refresh • esc: back"
	if !m.loggedIn() {
		base = "  browsing anonymously • " + strings.TrimPrefix(base, "  ")
	}
	return base
}
