package common

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines shared key bindings across all views.
type KeyMap struct {
	Quit          key.Binding
	Refresh       key.Binding
	Up            key.Binding
	Down          key.Binding
	Back          key.Binding
	OpenThread    key.Binding // enter — expand/collapse a post's comments
	Comment       key.Binding // c — new top-level comment (inline)
	CommentEditor key.Binding // C — new top-level comment ($EDITOR)
	Reply         key.Binding // r — reply to selected comment (inline)
	ReplyEditor   key.Binding // R — reply to selected comment ($EDITOR)
	Edit          key.Binding // e — inline edit own comment
	Delete        key.Binding // d — delete own comment (with confirmation)
	Like          key.Binding // l — toggle like
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("f5", "ctrl+l"),
			key.WithHelp("F5", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		OpenThread: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "comments"),
		),
		Comment: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "comment"),
		),
		CommentEditor: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "comment ($EDITOR)"),
		),
		Reply: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reply"),
		),
		ReplyEditor: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reply ($EDITOR)"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
	}
}
