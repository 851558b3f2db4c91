package common

import "github.com/charmbracelet/lipgloss"

var (
	// AppTitleStyle styles the application title. Rendered at call site with content.
	AppTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7287FD")).
			Padding(1, 2, 0, 1)

	// TaglineStyle styles the app's tagline.
	TaglineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Italic(true).
			MarginLeft(1)

	// AuthorStyle styles comment and post author names.
	AuthorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DC4E4"))

	// OwnBadgeStyle highlights comments that belong to the viewer.
	OwnBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true).
			MarginLeft(1)

	// TimestampStyle styles timestamps.
	TimestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ContentStyle styles comment and post body text.
	ContentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CAD3F5"))

	// SelectedStyle highlights the currently selected item.
	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7287FD")).
			Padding(0, 1)

	// UnselectedStyle gives unselected items a subtle greyed-out border.
	UnselectedStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1)

	// ActionStyle styles the per-comment action hints.
	ActionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// LikeActiveStyle styles the liked heart and count.
	LikeActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// MetadataStyle styles secondary counts and labels.
	MetadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D"))

	// ConfirmStyle styles the delete confirmation prompt.
	ConfirmStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true).
			Padding(0, 1)

	// ErrorStyle styles error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ED8796")).
			Bold(true)

	// SuccessStyle styles success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6DA95")).
			Bold(true)

	// StatusBarStyle styles the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E738D")).
			Padding(1, 0, 0, 0)
)
