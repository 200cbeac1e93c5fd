package tui

import (
	"testing"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/waggle/internal/core/config"
	"github.com/colonyops/waggle/internal/core/task"
	"github.com/colonyops/waggle/internal/data/db"
	"github.com/colonyops/waggle/internal/data/stores"
	"github.com/colonyops/waggle/internal/waggle"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	database, err := db.Open(t.TempDir(), db.DefaultOpenOptions())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })

	logger := zerolog.Nop()
	kvs := stores.NewKVStore(database)

	cfg := config.DefaultConfig()
	app := waggle.NewApp(
		waggle.NewTaskService(stores.NewTaskStore(kvs), logger),
		stores.NewPrefStore(kvs, logger),
		&cfg,
		database,
	)

	return New(app)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func loaded(tasks []task.Task) tasksLoadedMsg {
	return tasksLoadedMsg{tasks: tasks, now: time.Now()}
}

func TestModel_CursorMovement(t *testing.T) {
	m := newTestModel(t)

	tasks := []task.Task{
		task.New("one", "", nil, nil, time.Now()),
		task.New("two", "", nil, nil, time.Now()),
		task.New("three", "", nil, nil, time.Now()),
	}

	next, _ := m.Update(loaded(tasks))
	m = next.(Model)

	next, _ = m.Update(keyPress('j'))
	m = next.(Model)
	assert.Equal(t, 1, m.cursor)

	next, _ = m.Update(keyPress('G'))
	m = next.(Model)
	assert.Equal(t, 2, m.cursor)

	// Down at the bottom stays put.
	next, _ = m.Update(keyPress('j'))
	m = next.(Model)
	assert.Equal(t, 2, m.cursor)

	next, _ = m.Update(keyPress('g'))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_CursorClampsOnReload(t *testing.T) {
	m := newTestModel(t)

	tasks := []task.Task{
		task.New("one", "", nil, nil, time.Now()),
		task.New("two", "", nil, nil, time.Now()),
	}

	next, _ := m.Update(loaded(tasks))
	m = next.(Model)
	next, _ = m.Update(keyPress('G'))
	m = next.(Model)
	require.Equal(t, 1, m.cursor)

	next, _ = m.Update(loaded(tasks[:1]))
	m = next.(Model)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ViewToggle_PersistsPreference(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, config.ViewList, m.view)

	next, _ := m.Update(keyPress('v'))
	m = next.(Model)
	assert.Equal(t, config.ViewBoard, m.view)

	// A fresh model sees the persisted preference.
	fresh := New(m.app)
	assert.Equal(t, config.ViewBoard, fresh.view)
}

func TestModel_DueFilterCycle(t *testing.T) {
	m := newTestModel(t)
	require.Equal(t, task.BucketAll, m.due)

	want := []task.Bucket{
		task.BucketOverdue,
		task.BucketToday,
		task.BucketSoon,
		task.BucketFuture,
		task.BucketAll,
	}

	for _, bucket := range want {
		next, _ := m.Update(keyPress('f'))
		m = next.(Model)
		assert.Equal(t, bucket, m.due)
	}

	fresh := New(m.app)
	assert.Equal(t, task.BucketAll, fresh.due)
}

func TestModel_SearchMode(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(keyPress('/'))
	m = next.(Model)
	assert.Equal(t, stateSearching, m.state)

	next, _ = m.Update(keyPress('x'))
	m = next.(Model)
	assert.Equal(t, "x", m.search.Value(), "keys go to the input, not bindings")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.Equal(t, stateBrowse, m.state)
	assert.Empty(t, m.search.Value())
}

func TestModel_BoardView_GroupsByStatus(t *testing.T) {
	m := newTestModel(t)
	m.view = config.ViewBoard

	now := time.Now()
	todo := task.New("write docs", "", nil, nil, now)
	done := task.New("ship release", "", nil, nil, now)
	done.SetStatus(task.StatusDone, now)

	next, _ := m.Update(loaded([]task.Task{todo, done}))
	m = next.(Model)

	out := m.View()
	assert.Contains(t, out, "TODO")
	assert.Contains(t, out, "DONE")
	assert.Contains(t, out, "write docs")
	assert.Contains(t, out, "ship release")
}

func TestNextBucket_UnknownFallsBackToAll(t *testing.T) {
	assert.Equal(t, task.BucketAll, nextBucket(task.Bucket("bogus")))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long ti…", truncate("long title here", 8))
}

func TestTruncate_MultiByteRunes(t *testing.T) {
	// Counts runes, not bytes, so multi-byte titles stay valid UTF-8.
	got := truncate("日本語のタイトルです", 5)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "日本語の…", got)

	assert.Equal(t, "héllo", truncate("héllo", 5))
}
