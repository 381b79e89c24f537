package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/toaster/internal/core/config"
	"github.com/colonyops/toaster/internal/core/notify"
	"github.com/colonyops/toaster/internal/core/styles"
	"github.com/colonyops/toaster/pkg/tuitest"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Toast.EnterFrames = 0
	cfg.Toast.ExitFrames = 0

	m, err := New(&cfg, opts)
	require.NoError(t, err)
	m.Init()
	t.Cleanup(m.toasts.Unmount)
	return m
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func messages(s *notify.Store) []string {
	var out []string
	for _, n := range s.Snapshot() {
		out = append(out, n.Message)
	}
	return out
}

func TestNew_rejects_invalid_position(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Toast.Position = "middle"

	_, err := New(&cfg, Options{})
	assert.Error(t, err)
}

func TestModel_Init_shows_warnings_and_initial(t *testing.T) {
	m := newTestModel(t, Options{
		Warnings: []string{"lifetime is shorter than the animation"},
		Initial:  []notify.Payload{{Kind: notify.KindInfo, Message: "composed"}},
	})

	snap := m.Store().Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, notify.KindWarning, snap[0].Kind)
	assert.Equal(t, "Config", snap[0].Title)
	assert.Equal(t, "composed", snap[1].Message)
	assert.Len(t, m.toasts.Cards(), 2)
}

func TestModel_keys_enqueue_each_kind(t *testing.T) {
	m := newTestModel(t, Options{})

	for _, r := range "sewi" {
		m, _ = update(m, tuitest.KeyPress(r))
	}

	var kinds []notify.Kind
	for _, n := range m.Store().Snapshot() {
		kinds = append(kinds, n.Kind)
	}
	assert.Equal(t, []notify.Kind{notify.KindSuccess, notify.KindError, notify.KindWarning, notify.KindInfo}, kinds)
}

func TestModel_action_toast_runs_undo(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(m, tuitest.KeyPress('a'))
	m, _ = update(m, tuitest.KeyEnter())

	assert.Equal(t, []string{"3 files moved to trash", "Restored 3 files"}, messages(m.Store()))
}

func TestModel_failing_action_is_reported_as_toast(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(m, tuitest.KeyPress('f'))
	m, _ = update(m, tuitest.KeyEnter())

	snap := m.Store().Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, notify.KindError, snap[1].Kind)
	assert.Contains(t, snap[1].Message, errUpstream.Error())

	// The failed card can still be closed.
	m, _ = update(m, tuitest.KeyPress('x'))
	assert.Equal(t, 1, m.Store().Len())
}

func TestModel_sticky_toast_has_no_timer(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(m, tuitest.KeyPress('p'))

	cards := m.toasts.Cards()
	require.Len(t, cards, 1)
	assert.False(t, cards[0].TimerActive)
}

func TestModel_clear(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = update(m, tuitest.KeyPress('s'))
	m, _ = update(m, tuitest.KeyPress('s'))
	m, _ = update(m, tuitest.KeyPress('c'))

	assert.Zero(t, m.Store().Len())
	assert.Empty(t, m.toasts.Cards())
}

func TestModel_theme_cycles(t *testing.T) {
	t.Cleanup(func() {
		p, _ := styles.GetPalette(styles.DefaultTheme)
		styles.SetTheme(p)
	})

	m := newTestModel(t, Options{})
	want := styles.NextTheme(m.theme)

	m, _ = update(m, tuitest.KeyPress('t'))

	assert.Equal(t, want, m.theme)
	assert.Equal(t, []string{"Theme: " + want}, messages(m.Store()))
}

func TestModel_drain_enqueues_buffered_payloads(t *testing.T) {
	buf := NewNotificationBuffer()
	m := newTestModel(t, Options{Buffer: buf})

	buf.Push(notify.Payload{Kind: notify.KindInfo, Message: "from goroutine"})
	buf.Push(notify.Payload{Kind: notify.KindInfo, Message: ""})

	m, cmd := update(m, drainNotificationsMsg{})
	assert.NotNil(t, cmd, "keeps listening")

	assert.Equal(t, []string{"from goroutine"}, messages(m.Store()), "invalid payloads are dropped")
}

func TestModel_quit_unmounts(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(m, tuitest.KeyPress('s'))

	m, cmd := update(m, tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.toasts.Mounted())
	assert.Empty(t, m.View())
	assert.Equal(t, 1, m.Store().Len(), "notifications outlive the renderer")
}

func TestModel_View_overlays_toasts(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = update(m, tuitest.WindowSize(120, 40))
	m, _ = update(m, tuitest.KeyPress('s'))

	out := tuitest.StripANSI(m.View())
	lines := len(strings.Split(out, "\n"))

	assert.Contains(t, out, "Saved draft #1")
	assert.Contains(t, out, "Component showcase")
	assert.LessOrEqual(t, lines, 40)
	assert.Greater(t, tuitest.LineOf(out, "Saved draft #1"), 20, "bottom anchored by default")
}

func TestFitLines(t *testing.T) {
	assert.Equal(t, "a\nb", fitLines("a\nb\nc", 2))
	assert.Equal(t, "a\n\n", fitLines("a", 3))
}
