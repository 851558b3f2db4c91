package compose

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"parishterm/infra/editor"
)

// --- Mode ---

type mode int

const (
	editorMode mode = iota
	inlineMode
)

// --- Messages ---

// DoneMsg is sent when composing is complete (success or cancel).
// Empty Content means the user cancelled.
type DoneMsg struct {
	PostID   string
	ParentID string // Empty for a top-level comment
	Content  string
	Err      error
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the state for the comment composer.
type Model struct {
	mode        mode
	editor      *editor.EnvEditor
	postID      string
	parentID    string
	replyToName string // Author being replied to, for the header
	status      string
	invalid     string // Validation message shown after an empty submit
	textarea    textarea.Model
	tmpPath     string
	draft       string // Initial content (restored after a failed submit)
}

// NewInline creates a composer with an inline textarea.
func NewInline(postID, parentID, replyToName, draft string) Model {
	ta := textarea.New()
	ta.Placeholder = "Write a comment..."
	ta.CharLimit = 2000
	ta.SetWidth(72)
	ta.SetHeight(6)
	ta.SetValue(draft)
	ta.Focus()

	return Model{
		mode:        inlineMode,
		postID:      postID,
		parentID:    parentID,
		replyToName: replyToName,
		textarea:    ta,
		draft:       draft,
	}
}

// NewEditor creates a composer that opens $EDITOR via tea.Exec.
func NewEditor(ed *editor.EnvEditor, postID, parentID, replyToName, draft string) Model {
	return Model{
		mode:        editorMode,
		editor:      ed,
		postID:      postID,
		parentID:    parentID,
		replyToName: replyToName,
		status:      "Opening editor...",
		draft:       draft,
	}
}

// Init returns the initial command for the active mode.
func (m Model) Init() tea.Cmd {
	switch m.mode {
	case editorMode:
		return m.launchEditor()
	case inlineMode:
		return textarea.Blink
	}
	return nil
}

// launchEditor prepares the editor command and uses tea.Exec to properly
// suspend Bubble Tea's raw terminal mode while the editor runs.
func (m *Model) launchEditor() tea.Cmd {
	cmd, tmpPath, err := m.editor.Cmd(m.draft)
	if err != nil {
		return func() tea.Msg {
			return DoneMsg{PostID: m.postID, ParentID: m.parentID, Err: fmt.Errorf("preparing editor: %w", err)}
		}
	}
	m.tmpPath = tmpPath

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{tmpPath: tmpPath, err: err}
	})
}

// Update handles messages for the composer.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	// --- Editor mode messages ---

	case editorFinishedMsg:
		if msg.err != nil {
			return m, m.done(DoneMsg{PostID: m.postID, ParentID: m.parentID, Err: fmt.Errorf("editor: %w", msg.err)})
		}

		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, m.done(DoneMsg{PostID: m.postID, ParentID: m.parentID, Err: err})
		}
		// Empty file cancels.
		return m, m.done(DoneMsg{PostID: m.postID, ParentID: m.parentID, Content: content})

	// --- Inline mode messages ---

	case tea.KeyMsg:
		if m.mode != inlineMode {
			break
		}

		switch msg.String() {
		case "esc":
			return m, m.done(DoneMsg{PostID: m.postID, ParentID: m.parentID}) // Cancel.

		case "ctrl+d":
			content := strings.TrimSpace(m.textarea.Value())
			if content == "" {
				// Empty content never reaches the network; keep the
				// composer open so the user can type.
				m.invalid = "A comment cannot be empty."
				return m, nil
			}
			return m, m.done(DoneMsg{PostID: m.postID, ParentID: m.parentID, Content: content})
		}

		m.invalid = ""
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	if m.mode == inlineMode {
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) done(msg DoneMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
