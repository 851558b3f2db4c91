package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"parishterm/app"
	"parishterm/infra/editor"
	"parishterm/tui/comments"
	"parishterm/tui/common"
	"parishterm/tui/compose"
	"parishterm/tui/posts"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Posts    app.PostService
	Comments app.CommentService
	Session  app.SessionService
	Editor   *editor.EnvEditor
}

type activeView int

const (
	postsView activeView = iota
	threadView
	composeView
)

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps     Deps
	active   activeView
	posts    posts.Model
	comments comments.Model
	compose  compose.Model
	keys     common.KeyMap
	status   string // Transient status message (e.g. "Comment posted!")
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:     deps,
		active:   postsView,
		posts:    posts.New(deps.Posts),
		comments: comments.New(deps.Comments, ""),
		keys:     common.DefaultKeyMap(),
	}
}

// Init starts the post fetch and resolves the session user.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.posts.Init(),
		a.initSession(),
	)
}

func (a App) initSession() tea.Cmd {
	return func() tea.Msg {
		// A failed lookup degrades to an anonymous session; the feed
		// stays readable and authorship-gated actions stay hidden.
		id, _ := a.deps.Session.CurrentUserID(context.Background())
		return sessionMsg{ID: id}
	}
}

type sessionMsg struct {
	ID string
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.posts.SetSize(msg.Width, msg.Height)
		a.comments.SetSize(msg.Width, msg.Height)
		return a, nil

	case sessionMsg:
		// Authorship-gated actions stay hidden until this arrives.
		a.posts.SetViewer(msg.ID)
		a.comments.SetViewer(msg.ID)
		return a, nil

	case tea.KeyMsg:
		// ctrl+c always quits; q only where it cannot be typed text.
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Quit) &&
			(a.active == postsView || (a.active == threadView && !a.comments.IsEditing())) {
			return a, tea.Quit
		}

	case spinner.TickMsg:
		// Spinners tick only in the view that owns them.
		switch a.active {
		case postsView:
			updated, cmd := a.posts.Update(msg)
			a.posts = updated
			return a, cmd
		case threadView:
			updated, cmd := a.comments.Update(msg)
			a.comments = updated
			return a, cmd
		}
		return a, nil

	case posts.OpenThreadMsg:
		a.active = threadView
		a.status = ""
		updated, cmd := a.comments.Open(msg.Post)
		a.comments = updated
		return a, cmd

	case comments.ClosedMsg:
		a.active = postsView
		return a, nil

	case comments.LoadErrorMsg:
		// The thread model collapses itself; surface the failure and
		// return to the feed.
		updated, _ := a.comments.Update(msg)
		a.comments = updated
		a.active = postsView
		a.status = "Couldn't load comments. Try again."
		return a, nil

	case comments.ComposeRequestMsg:
		a.active = composeView
		a.status = ""
		if msg.UseEditor {
			a.compose = compose.NewEditor(a.deps.Editor, msg.PostID, msg.ParentID, msg.ReplyToName, "")
		} else {
			a.compose = compose.NewInline(msg.PostID, msg.ParentID, msg.ReplyToName, "")
		}
		return a, a.compose.Init()

	case comments.RestoreDraftMsg:
		// A failed create hands the draft back so nothing typed is lost.
		a.active = composeView
		a.status = "Couldn't post your comment. Try again."
		a.compose = compose.NewInline(msg.PostID, msg.ParentID, "", msg.Content)
		return a, a.compose.Init()

	case compose.DoneMsg:
		a.active = threadView
		if msg.Err != nil {
			a.status = "Error: " + msg.Err.Error()
			return a, nil
		}
		if msg.Content == "" {
			a.status = "Cancelled."
			return a, nil
		}
		a.status = ""
		submit := comments.SubmitMsg{
			PostID:   msg.PostID,
			ParentID: msg.ParentID,
			Content:  msg.Content,
		}
		updated, cmd := a.comments.Update(submit)
		a.comments = updated
		return a, cmd
	}

	// Delegate to the active sub-model.
	switch a.active {
	case postsView:
		updated, cmd := a.posts.Update(msg)
		a.posts = updated
		return a, cmd
	case threadView:
		updated, cmd := a.comments.Update(msg)
		a.comments = updated
		return a, cmd
	case composeView:
		updated, cmd := a.compose.Update(msg)
		a.compose = updated
		return a, cmd
	}

	return a, nil
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case postsView:
		s = a.posts.View()
	case threadView:
		s = a.comments.View()
	case composeView:
		s = a.compose.View()
	}

	// Append transient status if present.
	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}

	return s
}
