// Package tui implements the interactive task browser launched when
// waggle runs without a subcommand.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/waggle/internal/core/config"
	"github.com/colonyops/waggle/internal/core/task"
	"github.com/colonyops/waggle/internal/data/stores"
	"github.com/colonyops/waggle/internal/waggle"
)

// uiState represents the current input mode of the browser.
type uiState int

const (
	stateBrowse uiState = iota
	stateSearching
)

// bucketCycle is the order the due filter steps through on "f".
var bucketCycle = []task.Bucket{
	task.BucketAll,
	task.BucketOverdue,
	task.BucketToday,
	task.BucketSoon,
	task.BucketFuture,
}

type tasksLoadedMsg struct {
	tasks []task.Task
	now   time.Time
}

type errMsg struct{ err error }

// Model is the bubbletea model for the task browser.
type Model struct {
	app  *waggle.App
	keys keyMap

	state  uiState
	view   string
	due    task.Bucket
	tasks  []task.Task
	cursor int

	// now is snapshotted once per load so every row in a render pass
	// classifies against the same instant.
	now time.Time

	search textinput.Model
	help   help.Model

	width  int
	height int
	err    error
}

// New creates the task browser, restoring view mode and due filter from
// stored preferences.
func New(app *waggle.App) Model {
	ctx := context.Background()

	view := app.Prefs.Get(ctx, stores.PrefViewMode, app.Config.View)
	if view != config.ViewList && view != config.ViewBoard {
		view = config.ViewList
	}

	due, err := task.ParseBucket(app.Prefs.Get(ctx, stores.PrefDueFilter, string(task.BucketAll)))
	if err != nil {
		due = task.BucketAll
	}

	search := textinput.New()
	search.Placeholder = "search title, description, id"
	search.Prompt = "/ "
	search.CharLimit = 128

	return Model{
		app:    app,
		keys:   defaultKeyMap(),
		view:   view,
		due:    due,
		now:    time.Now(),
		search: search,
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.load()
}

// load fetches the current filtered view from the service.
func (m Model) load() tea.Cmd {
	params := task.Params{
		Search:    m.search.Value(),
		Due:       m.due,
		SortField: task.SortByDeadline,
		SortOrder: task.SortAsc,
	}

	return func() tea.Msg {
		now := time.Now()

		tasks, err := m.app.Tasks.List(context.Background(), params)
		if err != nil {
			return errMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks, now: now}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tasksLoadedMsg:
		m.tasks = msg.tasks
		m.now = msg.now
		m.err = nil
		m.clampCursor()
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.state == stateSearching {
			return m.updateSearching(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearching(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = stateBrowse
		m.search.Blur()
		return m, m.load()
	case "esc":
		m.state = stateBrowse
		m.search.Blur()
		m.search.SetValue("")
		return m, m.load()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, tea.Batch(cmd, m.load())
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, keys.Top):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, keys.Bottom):
		m.cursor = len(m.tasks) - 1
		m.clampCursor()
		return m, nil

	case key.Matches(msg, keys.View):
		if m.view == config.ViewList {
			m.view = config.ViewBoard
		} else {
			m.view = config.ViewList
		}
		m.app.Prefs.Set(context.Background(), stores.PrefViewMode, m.view)
		return m, nil

	case key.Matches(msg, keys.Due):
		m.due = nextBucket(m.due)
		m.app.Prefs.Set(context.Background(), stores.PrefDueFilter, string(m.due))
		m.cursor = 0
		return m, m.load()

	case key.Matches(msg, keys.Search):
		m.state = stateSearching
		m.search.Focus()
		return m, textinput.Blink

	case key.Matches(msg, keys.Done):
		return m, m.toggleDone()

	case key.Matches(msg, keys.Refresh):
		return m, m.load()

	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// toggleDone flips the selected task between done and todo.
func (m Model) toggleDone() tea.Cmd {
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return nil
	}

	t := m.tasks[m.cursor]
	next := task.StatusDone
	if t.Status == task.StatusDone {
		next = task.StatusTodo
	}

	return func() tea.Msg {
		if _, err := m.app.Tasks.SetStatus(context.Background(), t.ID, next); err != nil {
			return errMsg{err: err}
		}
		return m.load()()
	}
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nextBucket(b task.Bucket) task.Bucket {
	for i, cur := range bucketCycle {
		if cur == b {
			return bucketCycle[(i+1)%len(bucketCycle)]
		}
	}
	return task.BucketAll
}
