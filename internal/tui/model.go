// Package tui implements the component showcase: a gallery background with a
// toast stack mounted over it.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/toaster/internal/core/config"
	"github.com/colonyops/toaster/internal/core/logging"
	"github.com/colonyops/toaster/internal/core/notify"
	"github.com/colonyops/toaster/internal/core/styles"
	"github.com/colonyops/toaster/internal/tui/toast"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

// errUpstream is returned by the failing sample action.
var errUpstream = errors.New("upstream unavailable")

// Options configures the showcase.
type Options struct {
	Warnings []string            // Startup warnings to display as toasts
	Initial  []notify.Payload    // Payloads enqueued once the stack is mounted
	Buffer   *NotificationBuffer // Async producers push here (optional)
}

// Model is the Bubble Tea model for the showcase.
type Model struct {
	cfg     *config.Config
	store   *notify.Store
	toasts  *toast.Renderer
	buffer  *NotificationBuffer
	gallery *Gallery
	keys    KeyMap
	help    help.Model
	log     zerolog.Logger

	theme    string
	width    int
	height   int
	sent     int
	quitting bool

	warnings []string
	initial  []notify.Payload
}

// New creates the showcase model. The toast stack mounts in Init.
func New(cfg *config.Config, opts Options) (Model, error) {
	toastOpts, err := toast.OptionsFromConfig(cfg.Toast)
	if err != nil {
		return Model{}, err
	}

	log := logging.Component("showcase")
	store := notify.NewStore()

	toastOpts.ReportError = func(err error) {
		log.Error().Err(err).Msg("toast action failed")
		if _, nerr := store.Errorf("%v", err); nerr != nil {
			log.Error().Err(nerr).Msg("report action failure")
		}
	}

	return Model{
		cfg:      cfg,
		store:    store,
		toasts:   toast.New(store, toastOpts),
		buffer:   opts.Buffer,
		gallery:  NewGallery(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		log:      log,
		theme:    cfg.TUI.Theme,
		warnings: opts.Warnings,
		initial:  opts.Initial,
	}, nil
}

// Store exposes the notification store, for callers inside the update loop.
func (m Model) Store() *notify.Store {
	return m.store
}

// Init mounts the toast stack and surfaces startup warnings.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.toasts.Mount()}

	for _, w := range m.warnings {
		m.enqueue(notify.Payload{Kind: notify.KindWarning, Title: "Config", Message: w})
	}
	for _, p := range m.initial {
		m.enqueue(p)
	}
	cmds = append(cmds, m.toasts.Commands())

	if m.buffer != nil {
		cmds = append(cmds, m.buffer.WaitForSignal())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case drainNotificationsMsg:
		return m.handleDrain()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.toasts.Update(msg)
}

func (m Model) handleDrain() (tea.Model, tea.Cmd) {
	for _, p := range m.buffer.Drain() {
		m.enqueue(p)
	}
	return m, tea.Batch(m.toasts.Commands(), m.buffer.WaitForSignal())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m.quit()
	}

	if handled, cmd := m.toasts.HandleKey(msg); handled {
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Success):
		m.sent++
		m.enqueuef(notify.KindSuccess, "Saved draft #%d", m.sent)
	case key.Matches(msg, m.keys.Error):
		m.enqueuef(notify.KindError, "Could not reach the build server")
	case key.Matches(msg, m.keys.Warning):
		m.enqueuef(notify.KindWarning, "Your session expires in 5 minutes")
	case key.Matches(msg, m.keys.Info):
		m.enqueuef(notify.KindInfo, "3 new comments on your review")
	case key.Matches(msg, m.keys.Undo):
		store := m.store
		m.enqueue(notify.Payload{
			Kind:    notify.KindInfo,
			Title:   "Deleted",
			Message: "3 files moved to trash",
			Action: &notify.Action{
				Label: "Undo",
				OnActivate: func() error {
					_, err := store.Successf("Restored 3 files")
					return err
				},
			},
		})
	case key.Matches(msg, m.keys.Failing):
		m.enqueue(notify.Payload{
			Kind:    notify.KindError,
			Title:   "Sync failed",
			Message: "Changes are saved locally",
			Action: &notify.Action{
				Label:      "Retry",
				OnActivate: func() error { return errUpstream },
			},
		})
	case key.Matches(msg, m.keys.Sticky):
		m.enqueue(notify.Payload{
			Kind:     notify.KindWarning,
			Title:    "Maintenance",
			Message:  "Stays until closed",
			Lifetime: -1,
		})
	case key.Matches(msg, m.keys.Clear):
		m.store.Clear()
	case key.Matches(msg, m.keys.Theme):
		m.applyTheme(styles.NextTheme(m.theme))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	default:
		return m, nil
	}

	return m, m.toasts.Commands()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.toasts.Unmount()
	return m, tea.Quit
}

// applyTheme switches the active theme at runtime.
func (m *Model) applyTheme(name string) {
	palette, ok := styles.GetPalette(name)
	if !ok {
		m.enqueuef(notify.KindError, "unknown theme %q, available: %v", name, styles.ThemeNames())
		return
	}
	styles.SetTheme(palette)
	m.theme = name
	m.enqueuef(notify.KindInfo, "Theme: %s", name)
}

func (m *Model) enqueue(p notify.Payload) {
	if _, err := m.store.Enqueue(p); err != nil {
		m.log.Error().Err(err).Msg("enqueue notification")
	}
}

func (m *Model) enqueuef(kind notify.Kind, format string, args ...any) {
	var err error
	switch kind {
	case notify.KindSuccess:
		_, err = m.store.Successf(format, args...)
	case notify.KindError:
		_, err = m.store.Errorf(format, args...)
	case notify.KindWarning:
		_, err = m.store.Warnf(format, args...)
	default:
		_, err = m.store.Infof(format, args...)
	}
	if err != nil {
		m.log.Error().Err(err).Msg("enqueue notification")
	}
}

// View renders the gallery with the toast stack composited on top.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w == 0 || h == 0 {
		w, h = fallbackWidth, fallbackHeight
	}

	header := styles.CommandHeaderStyle.Render(styles.IconBell+" toaster") +
		styles.TextMutedStyle.Render("  "+m.theme+" • "+m.toasts.Summary())
	helpBar := styles.HelpBarStyle.Render(m.help.View(helpKeys{show: m.keys, toast: m.toasts.Keys()}))

	bodyH := max(h-lipgloss.Height(header)-lipgloss.Height(helpBar), 1)
	body := fitLines(m.gallery.Render(w, m.theme), bodyH)

	content := lipgloss.JoinVertical(lipgloss.Left, header, body, helpBar)

	// Toasts sit above everything.
	return m.toasts.Overlay(content, w, h)
}

// fitLines pads or truncates s to exactly n lines.
func fitLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
