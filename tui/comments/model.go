// Package comments is the interactive comment-thread view: it owns the
// per-post expand/collapse state machine and every comment mutation.
package comments

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"parishterm/app"
	"parishterm/domain"
	"parishterm/tui/common"
)

// noticeTTL is how long transient notices (empty-state hint, success
// banner) stay on screen.
const noticeTTLSeconds = 3

// Phase is the lifecycle of one post's comment thread.
type Phase int

const (
	// Collapsed: thread hidden. Content, if any, is kept for display
	// but a re-open always refetches so authorship-gated actions stay
	// correct.
	Collapsed Phase = iota
	// Loading: a fetch for the flat comment list is in flight.
	Loading
	// Expanded: the thread is visible.
	Expanded
)

// --- Messages ---

// LoadedMsg is sent when a thread fetch completes successfully.
type LoadedMsg struct {
	PostID   string
	Comments []domain.Comment
}

// LoadErrorMsg is sent when a thread fetch fails. The thread falls
// back to Collapsed.
type LoadErrorMsg struct {
	PostID string
	Err    error
}

// SubmitMsg asks the thread to create a comment (top-level when
// ParentID is empty). Sent by the root model after composing.
type SubmitMsg struct {
	PostID   string
	ParentID string
	Content  string
}

// CreateResultMsg is sent after a create attempt.
type CreateResultMsg struct {
	PostID   string
	LocalID  string
	ParentID string
	Comment  domain.Comment
	Err      error
}

// RestoreDraftMsg asks the root model to reopen the composer with the
// draft of a failed create, so the user does not lose what they wrote.
type RestoreDraftMsg struct {
	PostID   string
	ParentID string
	Content  string
	Err      error
}

// ComposeRequestMsg asks the root model to open the composer.
type ComposeRequestMsg struct {
	PostID      string
	ParentID    string
	ReplyToName string
	UseEditor   bool
}

// EditResultMsg is sent after an edit save attempt.
type EditResultMsg struct {
	PostID  string
	ID      string
	Comment domain.Comment
	Err     error
}

// DeleteResultMsg is sent after a delete attempt.
type DeleteResultMsg struct {
	PostID string
	ID     string
	Err    error
}

// LikeResultMsg carries the server's authoritative like state.
type LikeResultMsg struct {
	PostID string
	ID     string
	State  app.LikeState
	Err    error
}

// ClosedMsg tells the root model the thread view was left.
type ClosedMsg struct{}

// noticeExpiredMsg dismisses a transient notice. Seq guards against a
// stale timer wiping a newer notice.
type noticeExpiredMsg struct {
	PostID string
	Seq    int
}

// --- State ---

// threadState is the per-post slice of the comment store: the reply
// forest plus everything the view needs to drive it.
type threadState struct {
	phase     Phase
	forest    []*domain.CommentNode
	cursor    int
	notice    string
	noticeErr bool
	noticeSeq int

	editingID string // Comment id in inline edit mode, "" when none
	editArea  textarea.Model
	saving    bool // Edit save in flight; edit inputs disabled

	confirmDeleteID string // Comment id awaiting delete confirmation

	pending map[string]bool // Local ids of optimistic creates in flight
}

// Model holds the comment thread view. Thread state is keyed by post
// id, so collapsing one post and opening another does not discard
// anything.
type Model struct {
	svc      app.CommentService
	viewerID string

	post    domain.Post // Post whose thread is on screen
	threads map[string]*threadState

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
}

// New creates a comment thread model.
func New(svc app.CommentService, viewerID string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7287FD"))

	return Model{
		svc:      svc,
		viewerID: viewerID,
		threads:  make(map[string]*threadState),
		keys:     common.DefaultKeyMap(),
		spinner:  s,
	}
}

// SetViewer records the session user id once it is known.
func (m *Model) SetViewer(id string) {
	m.viewerID = id
}

// SetSize records the terminal dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Post returns the post whose thread is on screen.
func (m Model) Post() domain.Post {
	return m.post
}

// IsEditing reports whether an inline edit is active (the root model
// must not treat esc as "leave view" then).
func (m Model) IsEditing() bool {
	st := m.threads[m.post.ID]
	return st != nil && st.editingID != ""
}

// state returns the thread state for a post, creating it Collapsed.
func (m *Model) state(postID string) *threadState {
	st, ok := m.threads[postID]
	if !ok {
		st = &threadState{pending: make(map[string]bool)}
		m.threads[postID] = st
	}
	return st
}

// Phase exposes a post's thread phase.
func (m Model) Phase(postID string) Phase {
	if st, ok := m.threads[postID]; ok {
		return st.phase
	}
	return Collapsed
}
