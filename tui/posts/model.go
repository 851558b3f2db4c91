package posts

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"parishterm/app"
	"parishterm/domain"
	"parishterm/tui/common"
)

const defaultLimit = 20

// --- Messages ---

// LoadedMsg is sent when the post fetch completes successfully.
type LoadedMsg struct {
	Posts []domain.Post
}

// ErrorMsg is sent when the post fetch fails.
type ErrorMsg struct {
	Err error
}

// OpenThreadMsg asks the root model to open a post's comment thread.
type OpenThreadMsg struct {
	Post domain.Post
}

// LikeResultMsg carries the server's like state after a toggle.
type LikeResultMsg struct {
	ID    string
	State app.LikeState
	Err   error
}

// --- Model ---

// Model holds the state for the post feed view.
type Model struct {
	posts    app.PostService
	viewerID string
	items    []domain.Post
	cursor   int
	loading  bool
	err      error
	keys     common.KeyMap
	spinner  spinner.Model
	width    int
	height   int
}

// New creates a post feed model with injected dependencies.
func New(posts app.PostService) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7287FD"))

	return Model{
		posts:   posts,
		loading: true,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
}

// Init starts the initial post fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPosts(),
		m.spinner.Tick,
	)
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

// SelectedPost returns the currently highlighted post, if any.
func (m Model) SelectedPost() (domain.Post, bool) {
	if len(m.items) == 0 {
		return domain.Post{}, false
	}
	return m.items[m.cursor], true
}

// Update handles messages for the post feed view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case LoadedMsg:
		m.items = msg.Posts
		m.loading = false
		m.err = nil
		if m.cursor >= len(m.items) {
			m.cursor = 0
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case LikeResultMsg:
		if msg.Err != nil {
			return m, nil
		}
		// The server is the source of truth; apply by id, no-op when
		// the post is gone.
		for i := range m.items {
			if m.items[i].ID == msg.ID {
				m.items[i].LikesCount = msg.State.Count
				m.items[i].Liked = msg.State.Liked
				break
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, tea.Batch(m.fetchPosts(), m.spinner.Tick)

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.OpenThread):
			if p, ok := m.SelectedPost(); ok {
				return m, func() tea.Msg { return OpenThreadMsg{Post: p} }
			}

		case key.Matches(msg, m.keys.Like):
			if p, ok := m.SelectedPost(); ok {
				return m, m.toggleLike(p.ID)
			}
		}
	}

	return m, nil
}

func (m Model) fetchPosts() tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		items, err := posts.List(context.Background(), defaultLimit)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return LoadedMsg{Posts: items}
	}
}

func (m Model) toggleLike(id string) tea.Cmd {
	posts := m.posts
	return func() tea.Msg {
		state, err := posts.ToggleLike(context.Background(), id)
		return LikeResultMsg{ID: id, State: state, Err: err}
	}
}
