package compose

import (
	"fmt"
	"strings"

	"parishterm/tui/common"
)

// View renders the composer based on the active mode.
func (m Model) View() string {
	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("⛪ parishterm"))
		if m.replyToName != "" {
			b.WriteString("  Reply to " + m.replyToName + "\n\n")
		} else {
			b.WriteString("  New comment\n\n")
		}
		b.WriteString(m.textarea.View())
		b.WriteString("\n\n")

		if m.invalid != "" {
			b.WriteString(common.ErrorStyle.Render(m.invalid) + "\n")
		}
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("  ctrl+d: send • esc: cancel • %d/2000 chars",
				len(m.textarea.Value())),
		))

		return b.String()
	}

	return ""
}
