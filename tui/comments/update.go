package comments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"parishterm/domain"
	"parishterm/thread"
)

// Open shows a post's thread. Opening always refetches: client-rendered
// authorship-gated actions are only correct when derived from fresh
// data, never from whatever was on screen before.
func (m Model) Open(post domain.Post) (Model, tea.Cmd) {
	m.post = post
	st := m.state(post.ID)
	st.phase = Loading
	st.cursor = 0
	st.editingID = ""
	st.confirmDeleteID = ""
	st.notice = ""
	return m, tea.Batch(m.fetch(post.ID), m.spinner.Tick)
}

// Close collapses the current thread. The forest is kept (pure
// visibility toggle); the next Open refetches anyway.
func (m Model) Close() (Model, tea.Cmd) {
	st := m.state(m.post.ID)
	st.phase = Collapsed
	st.editingID = ""
	st.confirmDeleteID = ""
	return m, func() tea.Msg { return ClosedMsg{} }
}

// fragments returns the current thread's display list.
func (m Model) fragments() []thread.Fragment {
	st := m.threads[m.post.ID]
	if st == nil {
		return nil
	}
	return thread.Flatten(st.forest, m.viewerID)
}

// selected returns the fragment under the cursor.
func (m Model) selected() (thread.Fragment, bool) {
	frags := m.fragments()
	st := m.threads[m.post.ID]
	if st == nil || len(frags) == 0 {
		return thread.Fragment{}, false
	}
	if st.cursor >= len(frags) {
		return frags[len(frags)-1], true
	}
	return frags[st.cursor], true
}

// Update handles messages for the thread view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		st := m.state(msg.PostID)
		st.phase = Expanded
		st.forest = thread.BuildTree(msg.Comments)
		st.cursor = 0
		st.editingID = ""
		st.confirmDeleteID = ""
		if len(msg.Comments) == 0 {
			return m, m.setNotice(st, msg.PostID, "Be the first to comment...", false)
		}
		st.notice = ""
		return m, nil

	case LoadErrorMsg:
		// Silent degradation back to Collapsed; the root surfaces a
		// status line and the failure is logged at the API layer.
		st := m.state(msg.PostID)
		st.phase = Collapsed
		return m, nil

	case SubmitMsg:
		return m.handleSubmit(msg)

	case CreateResultMsg:
		return m.handleCreateResult(msg)

	case EditResultMsg:
		return m.handleEditResult(msg)

	case DeleteResultMsg:
		return m.handleDeleteResult(msg)

	case LikeResultMsg:
		st := m.state(msg.PostID)
		if msg.Err != nil {
			return m, m.setNotice(st, msg.PostID, "Couldn't register your like. Try again.", true)
		}
		// Server truth; stale ids are a no-op.
		thread.SetLike(st.forest, msg.ID, msg.State.Count, msg.State.Liked)
		return m, nil

	case noticeExpiredMsg:
		if st, ok := m.threads[msg.PostID]; ok && st.noticeSeq == msg.Seq {
			st.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	st := m.state(m.post.ID)

	// Inline edit captures the keyboard until saved or cancelled.
	if st.editingID != "" {
		if st.saving {
			// Save in flight; inputs disabled.
			return m, nil
		}
		switch msg.String() {
		case "esc":
			st.editingID = ""
			return m, nil
		case "ctrl+d":
			content := strings.TrimSpace(st.editArea.Value())
			if content == "" {
				return m, m.setNotice(st, m.post.ID, "A comment cannot be empty.", true)
			}
			st.saving = true
			return m, m.saveEdit(st.editingID, content)
		}
		var cmd tea.Cmd
		st.editArea, cmd = st.editArea.Update(msg)
		return m, cmd
	}

	// Delete confirmation.
	if st.confirmDeleteID != "" {
		switch msg.String() {
		case "y":
			id := st.confirmDeleteID
			st.confirmDeleteID = ""
			return m, m.doDelete(id)
		case "n", "esc":
			st.confirmDeleteID = ""
			return m, nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m.Close()

	case key.Matches(msg, m.keys.Refresh):
		return m.Open(m.post)

	case key.Matches(msg, m.keys.Up):
		if st.cursor > 0 {
			st.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if st.cursor < len(m.fragments())-1 {
			st.cursor++
		}

	case key.Matches(msg, m.keys.Comment), key.Matches(msg, m.keys.CommentEditor):
		return m, m.requestCompose("", "", key.Matches(msg, m.keys.CommentEditor))

	case key.Matches(msg, m.keys.Reply), key.Matches(msg, m.keys.ReplyEditor):
		if f, ok := m.selected(); ok {
			return m, m.requestCompose(f.Comment.ID, f.Comment.AuthorName, key.Matches(msg, m.keys.ReplyEditor))
		}

	case key.Matches(msg, m.keys.Edit):
		if f, ok := m.selected(); ok && f.CanEdit {
			ta := textarea.New()
			ta.CharLimit = 2000
			ta.SetWidth(64)
			ta.SetHeight(4)
			ta.SetValue(f.Comment.Content)
			ta.Focus()
			st.editingID = f.Comment.ID
			st.editArea = ta
			st.saving = false
			return m, textarea.Blink
		}

	case key.Matches(msg, m.keys.Delete):
		if f, ok := m.selected(); ok && f.CanDelete {
			st.confirmDeleteID = f.Comment.ID
		}

	case key.Matches(msg, m.keys.Like):
		if !m.loggedIn() {
			return m, m.setNotice(st, m.post.ID, "Log in to like comments.", true)
		}
		if f, ok := m.selected(); ok {
			// The trigger stays enabled during flight; duplicate
			// results are idempotent by id.
			return m, m.toggleLike(f.Comment.ID)
		}
	}

	return m, nil
}

func (m Model) handleSubmit(msg SubmitMsg) (Model, tea.Cmd) {
	st := m.state(msg.PostID)

	localID := "local-" + uuid.NewString()
	local := domain.Comment{
		ID:         localID,
		PostID:     msg.PostID,
		ParentID:   msg.ParentID,
		AuthorID:   m.viewerID,
		AuthorName: "You",
		Content:    msg.Content,
		// Zero CreatedAt renders as "just now".
	}
	st.forest = thread.InsertReply(st.forest, local)
	st.pending[localID] = true
	st.notice = ""
	return m, m.create(msg.PostID, msg.ParentID, msg.Content, localID)
}

func (m Model) handleCreateResult(msg CreateResultMsg) (Model, tea.Cmd) {
	st := m.state(msg.PostID)
	delete(st.pending, msg.LocalID)

	if msg.Err != nil {
		// Roll the optimistic node back and hand the draft to the root
		// so the user keeps what they wrote.
		st.forest, _ = thread.Remove(st.forest, msg.LocalID)
		m.clampCursor(st)
		restore := RestoreDraftMsg{
			PostID:   msg.PostID,
			ParentID: msg.ParentID,
			Content:  msg.Comment.Content,
			Err:      msg.Err,
		}
		return m, func() tea.Msg { return restore }
	}

	// Swap the optimistic node for the canonical comment. When the
	// local node is gone (refetch raced the result), fall back to an
	// id-checked insert so a duplicate result cannot double the node.
	if !thread.Replace(st.forest, msg.LocalID, msg.Comment) {
		if thread.Find(st.forest, msg.Comment.ID) == nil {
			st.forest = thread.InsertReply(st.forest, msg.Comment)
		}
	}
	return m, m.setNotice(st, msg.PostID, "Comment posted.", false)
}

func (m Model) handleEditResult(msg EditResultMsg) (Model, tea.Cmd) {
	st := m.state(msg.PostID)
	st.saving = false

	if msg.Err != nil {
		// The displayed content stays untouched on failure.
		if errors.Is(msg.Err, domain.ErrUnauthorized) {
			return m, m.setNotice(st, msg.PostID, "You are not allowed to edit this comment.", true)
		}
		return m, m.setNotice(st, msg.PostID, "Couldn't save the comment. Try again.", true)
	}

	thread.SetContent(st.forest, msg.ID, msg.Comment.Content)
	st.editingID = ""
	return m, m.setNotice(st, msg.PostID, "Comment updated.", false)
}

func (m Model) handleDeleteResult(msg DeleteResultMsg) (Model, tea.Cmd) {
	st := m.state(msg.PostID)

	if msg.Err != nil {
		if errors.Is(msg.Err, domain.ErrUnauthorized) {
			return m, m.setNotice(st, msg.PostID, "You are not allowed to delete this comment.", true)
		}
		return m, m.setNotice(st, msg.PostID, "Couldn't delete the comment. Try again.", true)
	}

	// Idempotent by id: a duplicate in-flight delete resolves to a no-op.
	st.forest, _ = thread.Remove(st.forest, msg.ID)
	m.clampCursor(st)
	return m, m.setNotice(st, msg.PostID, "Comment deleted.", false)
}

func (m Model) clampCursor(st *threadState) {
	if n := len(thread.Flatten(st.forest, m.viewerID)); st.cursor >= n && st.cursor > 0 {
		st.cursor = max(n-1, 0)
	}
}

func (m Model) loggedIn() bool {
	viewer := strings.TrimSpace(m.viewerID)
	return viewer != "" && viewer != "null"
}

// setNotice shows a transient message that dismisses itself.
func (m Model) setNotice(st *threadState, postID, text string, isErr bool) tea.Cmd {
	st.notice = text
	st.noticeErr = isErr
	st.noticeSeq++
	seq := st.noticeSeq
	return tea.Tick(noticeTTLSeconds*time.Second, func(time.Time) tea.Msg {
		return noticeExpiredMsg{PostID: postID, Seq: seq}
	})
}

func (m Model) requestCompose(parentID, replyToName string, useEditor bool) tea.Cmd {
	req := ComposeRequestMsg{
		PostID:      m.post.ID,
		ParentID:    parentID,
		ReplyToName: replyToName,
		UseEditor:   useEditor,
	}
	return func() tea.Msg { return req }
}

// --- Commands ---

func (m Model) fetch(postID string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		list, err := svc.List(context.Background(), postID)
		if err != nil {
			return LoadErrorMsg{PostID: postID, Err: err}
		}
		return LoadedMsg{PostID: postID, Comments: list}
	}
}

func (m Model) create(postID, parentID, content, localID string) tea.Cmd {
	svc := m.svc
	return func() tea.Msg {
		c, err := svc.Create(context.Background(), postID, parentID, content)
		if err != nil {
			// Carry the draft so it can be restored.
			c = domain.Comment{Content: content}
		}
		return CreateResultMsg{PostID: postID, LocalID: localID, ParentID: parentID, Comment: c, Err: err}
	}
}

func (m Model) saveEdit(id, content string) tea.Cmd {
	svc, postID := m.svc, m.post.ID
	return func() tea.Msg {
		c, err := svc.Update(context.Background(), id, content)
		return EditResultMsg{PostID: postID, ID: id, Comment: c, Err: err}
	}
}

func (m Model) doDelete(id string) tea.Cmd {
	svc, postID := m.svc, m.post.ID
	return func() tea.Msg {
		return DeleteResultMsg{PostID: postID, ID: id, Err: svc.Delete(context.Background(), id)}
	}
}

func (m Model) toggleLike(id string) tea.Cmd {
	svc, postID := m.svc, m.post.ID
	return func() tea.Msg {
		state, err := svc.ToggleLike(context.Background(), id)
		return LikeResultMsg{PostID: postID, ID: id, State: state, Err: err}
	}
}
