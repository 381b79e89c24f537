// Package toast renders the notification queue as a stack of animated,
// dismissible cards composited over a host view.
//
// The Renderer subscribes to a notify.Store when mounted and keeps a local
// card list that trails the store: cards removed from the store stay on screen
// until their exit animation finishes. Each card with a lifetime owns a
// cancellable expiry timer which is stopped on every path that takes the card
// off screen.
//
// The Renderer must be driven from the Bubble Tea update loop that owns the
// store. After mutating the store outside Update, hosts call Commands to pick
// up the timers and animation ticks the mutation scheduled.
package toast

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/colonyops/toaster/internal/core/config"
	"github.com/colonyops/toaster/internal/core/logging"
	"github.com/colonyops/toaster/internal/core/notify"
)

const (
	defaultLifetime      = 5 * time.Second
	defaultWidth         = 50
	defaultFrameInterval = 60 * time.Millisecond
)

// Options configures a Renderer. It is read once at construction.
type Options struct {
	Position      Position
	Lifetime      time.Duration // default auto-expiry; negative disables
	Width         int
	MaxVisible    int // render cap, 0 = unlimited
	EnterFrames   int
	ExitFrames    int
	FrameInterval time.Duration

	Presenter   Presenter
	Announce    Announcer
	ReportError ErrorReporter
	Keys        *KeyMap
}

// OptionsFromConfig maps the toast config section onto renderer options.
func OptionsFromConfig(cfg config.ToastConfig) (Options, error) {
	pos, err := ParsePosition(cfg.Position)
	if err != nil {
		return Options{}, err
	}

	return Options{
		Position:      pos,
		Lifetime:      cfg.Lifetime,
		Width:         cfg.Width,
		MaxVisible:    cfg.MaxVisible,
		EnterFrames:   cfg.EnterFrames,
		ExitFrames:    cfg.ExitFrames,
		FrameInterval: cfg.FrameInterval,
	}, nil
}

// ActionError reports a failed action callback.
type ActionError struct {
	ID    notify.ID
	Label string
	Err   error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("toast %s action %q: %v", e.ID, e.Label, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

type expireMsg struct {
	epoch int
	id    notify.ID
}

type frameMsg struct {
	epoch int
}

// Renderer projects a notify.Store into stacked toast cards.
type Renderer struct {
	store *notify.Store
	opts  Options
	keys  KeyMap
	log   zerolog.Logger

	cards   []*card
	focused notify.ID

	mounted     bool
	epoch       int
	unsubscribe func()
	ticking     bool
	cmds        []tea.Cmd
}

// New constructs a renderer for store. It does nothing until mounted.
func New(store *notify.Store, opts Options) *Renderer {
	log := logging.Component("toast")

	if opts.Position == "" {
		opts.Position = BottomRight
	}
	if opts.Lifetime == 0 {
		opts.Lifetime = defaultLifetime
	}
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaultFrameInterval
	}
	opts.EnterFrames = max(opts.EnterFrames, 0)
	opts.ExitFrames = max(opts.ExitFrames, 0)
	if opts.Presenter == nil {
		opts.Presenter = DefaultPresenter{}
	}
	if opts.Announce == nil {
		opts.Announce = logAnnouncer(log)
	}
	if opts.ReportError == nil {
		opts.ReportError = logErrorReporter(log)
	}

	keys := DefaultKeyMap()
	if opts.Keys != nil {
		keys = *opts.Keys
	}

	return &Renderer{
		store: store,
		opts:  opts,
		keys:  keys,
		log:   log,
	}
}

// Mount subscribes to the store and renders its current contents.
func (r *Renderer) Mount() tea.Cmd {
	if r.mounted {
		return nil
	}

	r.mounted = true
	r.epoch++
	r.unsubscribe = r.store.Subscribe(r.onChange)
	r.reconcile(r.store.Snapshot())
	return r.Commands()
}

// Unmount releases the subscription, cancels every pending timer and drops all
// cards. Notifications stay in the store. Late timer and animation messages
// from before the unmount are ignored.
func (r *Renderer) Unmount() {
	if !r.mounted {
		return
	}

	r.mounted = false
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}

	for _, c := range r.cards {
		c.stopTimer()
		c.phase = PhaseRemoved
	}

	r.cards = nil
	r.cmds = nil
	r.focused = ""
	r.ticking = false
}

// Mounted reports whether the renderer is attached to its store.
func (r *Renderer) Mounted() bool {
	return r.mounted
}

// Keys returns the renderer's key bindings, for help rendering.
func (r *Renderer) Keys() KeyMap {
	return r.keys
}

// Commands drains the commands scheduled since the last call.
func (r *Renderer) Commands() tea.Cmd {
	cmds := r.cmds
	r.cmds = nil

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	default:
		return tea.Batch(cmds...)
	}
}

// Update handles the renderer's own timer and animation messages.
func (r *Renderer) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case expireMsg:
		r.handleExpire(msg)
	case frameMsg:
		r.handleFrame(msg)
	}
	return r.Commands()
}

// HandleKey applies toast key bindings. It reports false when the key is not a
// toast binding or there is no card to act on, so the host can handle it.
func (r *Renderer) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if !r.mounted || !slices.ContainsFunc(r.cards, (*card).interactive) {
		return false, nil
	}

	switch {
	case key.Matches(msg, r.keys.Next):
		r.moveFocus(1)
	case key.Matches(msg, r.keys.Prev):
		r.moveFocus(-1)
	case key.Matches(msg, r.keys.Dismiss):
		c := r.target(nil)
		if c == nil {
			return false, nil
		}
		return true, r.Dismiss(c.n.ID)
	case key.Matches(msg, r.keys.Activate):
		c := r.target(notify.Notification.HasAction)
		if c == nil {
			return false, nil
		}
		return true, r.Activate(c.n.ID)
	default:
		return false, nil
	}

	return true, r.Commands()
}

// Dismiss starts the exit of a card on behalf of the user and removes its
// notification from the store.
func (r *Renderer) Dismiss(id notify.ID) tea.Cmd {
	if !r.mounted {
		return nil
	}

	if c := r.find(id); c != nil && c.interactive() {
		r.beginExit(c)
	}
	r.store.Dequeue(id)
	return r.Commands()
}

// Activate runs the card's action callback. Failures, including panics, are
// reported and never affect the card's other affordances.
func (r *Renderer) Activate(id notify.ID) tea.Cmd {
	if !r.mounted {
		return nil
	}

	c := r.find(id)
	if c == nil || !c.interactive() || !c.n.HasAction() {
		return nil
	}

	if err := runAction(c.n.Action); err != nil {
		r.opts.ReportError(&ActionError{ID: id, Label: c.n.Action.Label, Err: err})
	}
	return r.Commands()
}

func runAction(a *notify.Action) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return a.OnActivate()
}

// Cards returns the rendered cards in top-to-bottom screen order, including
// cards that are still animating out and cards hidden by MaxVisible.
func (r *Renderer) Cards() []Card {
	out := make([]Card, 0, len(r.cards))
	for _, c := range rowOrder(r.opts.Position, edgeOrder(r.opts.Position, r.cards)) {
		out = append(out, r.cardView(c))
	}
	return out
}

// View renders the stack, or "" when there is nothing to show.
func (r *Renderer) View() string {
	if len(r.cards) == 0 {
		return ""
	}

	shown := r.cards
	hidden := 0
	if r.opts.MaxVisible > 0 && len(shown) > r.opts.MaxVisible {
		hidden = len(shown) - r.opts.MaxVisible
		shown = shown[hidden:]
	}

	fromEdge := make([]string, 0, len(shown)+1)
	for _, c := range edgeOrder(r.opts.Position, shown) {
		fromEdge = append(fromEdge, r.opts.Presenter.Present(CardProps{
			Card:  r.cardView(c),
			Width: r.opts.Width,
		}))
	}
	if hidden > 0 {
		fromEdge = append(fromEdge, overflowLine(hidden, r.opts.Width))
	}

	rows := rowOrder(r.opts.Position, fromEdge)
	if r.opts.Position.Left() {
		return lipgloss.JoinVertical(lipgloss.Left, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Right, rows...)
}

func (r *Renderer) cardView(c *card) Card {
	return Card{
		Notification: c.n,
		Phase:        c.phase,
		Progress:     r.progress(c),
		Focused:      c.n.ID == r.focused,
		TimerActive:  c.cancel != nil,
	}
}

func (r *Renderer) progress(c *card) float64 {
	switch c.phase {
	case PhaseEntering:
		return float64(c.frame) / float64(max(r.opts.EnterFrames, 1))
	case PhaseExiting:
		return float64(c.frame) / float64(max(r.opts.ExitFrames, 1))
	default:
		return 1
	}
}

// onChange is the store listener.
func (r *Renderer) onChange(ns []notify.Notification) {
	if !r.mounted {
		r.log.Debug().Int("count", len(ns)).Msg("store change after unmount ignored")
		return
	}
	r.reconcile(ns)
}

// reconcile brings the card list in line with a store snapshot: cards whose
// notification disappeared start exiting in place, new notifications are
// appended as entering cards.
func (r *Renderer) reconcile(ns []notify.Notification) {
	present := make(map[notify.ID]struct{}, len(ns))
	for _, n := range ns {
		present[n.ID] = struct{}{}
	}

	known := make(map[notify.ID]struct{}, len(r.cards))
	for _, c := range slices.Clone(r.cards) {
		known[c.n.ID] = struct{}{}
		if _, ok := present[c.n.ID]; !ok && c.interactive() {
			r.beginExit(c)
		}
	}

	for _, n := range ns {
		if _, ok := known[n.ID]; !ok {
			r.mountCard(n)
		}
	}
}

func (r *Renderer) mountCard(n notify.Notification) {
	c := &card{n: n, phase: PhaseEntering}
	if r.opts.EnterFrames == 0 {
		c.phase = PhaseVisible
	}

	lifetime := n.Lifetime
	if lifetime == 0 {
		lifetime = r.opts.Lifetime
	}
	if lifetime > 0 {
		cmd, cancel := r.scheduleExpiry(n.ID, lifetime)
		c.cancel = cancel
		r.cmds = append(r.cmds, cmd)
	}

	r.cards = append(r.cards, c)
	r.opts.Announce(n, AlertText(n))
	r.ensureTicking()
}

func (r *Renderer) beginExit(c *card) {
	c.stopTimer()
	c.phase = PhaseExiting
	c.frame = 0

	if c.n.ID == r.focused {
		r.focused = ""
	}

	if r.opts.ExitFrames == 0 {
		r.remove(c)
		return
	}
	r.ensureTicking()
}

func (r *Renderer) remove(c *card) {
	c.stopTimer()
	c.phase = PhaseRemoved
	r.cards = slices.DeleteFunc(r.cards, func(other *card) bool { return other == c })
}

// scheduleExpiry returns a command that resolves to an expiry message after d,
// and the cancel func that makes it resolve to nothing instead.
func (r *Renderer) scheduleExpiry(id notify.ID, d time.Duration) (tea.Cmd, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	epoch := r.epoch

	return func() tea.Msg {
		t := time.NewTimer(d)
		defer t.Stop()

		select {
		case <-t.C:
			return expireMsg{epoch: epoch, id: id}
		case <-ctx.Done():
			return nil
		}
	}, cancel
}

func (r *Renderer) handleExpire(msg expireMsg) {
	if !r.mounted || msg.epoch != r.epoch {
		r.log.Debug().Str("id", string(msg.id)).Msg("expiry from previous mount ignored")
		return
	}

	if c := r.find(msg.id); c != nil && c.interactive() {
		r.beginExit(c)
	}
	if !r.store.Dequeue(msg.id) {
		r.log.Debug().Str("id", string(msg.id)).Msg("stale expiry")
	}
}

func (r *Renderer) animating() bool {
	return slices.ContainsFunc(r.cards, func(c *card) bool {
		return c.phase == PhaseEntering || c.phase == PhaseExiting
	})
}

func (r *Renderer) ensureTicking() {
	if r.ticking || !r.animating() {
		return
	}

	r.ticking = true
	epoch := r.epoch
	r.cmds = append(r.cmds, tea.Tick(r.opts.FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{epoch: epoch}
	}))
}

func (r *Renderer) handleFrame(msg frameMsg) {
	if !r.mounted || msg.epoch != r.epoch {
		return
	}

	r.ticking = false
	for _, c := range slices.Clone(r.cards) {
		switch c.phase {
		case PhaseEntering:
			c.frame++
			if c.frame >= r.opts.EnterFrames {
				c.phase = PhaseVisible
				c.frame = 0
			}
		case PhaseExiting:
			c.frame++
			if c.frame >= r.opts.ExitFrames {
				r.remove(c)
			}
		}
	}
	r.ensureTicking()
}

func (r *Renderer) find(id notify.ID) *card {
	for _, c := range r.cards {
		if c.n.ID == id {
			return c
		}
	}
	return nil
}

// target returns the focused card, or the newest interactive card matching
// accept when nothing is focused.
func (r *Renderer) target(accept func(notify.Notification) bool) *card {
	if c := r.find(r.focused); c != nil && c.interactive() {
		if accept == nil || accept(c.n) {
			return c
		}
		return nil
	}

	for i := len(r.cards) - 1; i >= 0; i-- {
		c := r.cards[i]
		if c.interactive() && (accept == nil || accept(c.n)) {
			return c
		}
	}
	return nil
}

// moveFocus cycles focus through interactive cards in screen order.
func (r *Renderer) moveFocus(step int) {
	var ids []notify.ID
	for _, c := range rowOrder(r.opts.Position, edgeOrder(r.opts.Position, r.cards)) {
		if c.interactive() {
			ids = append(ids, c.n.ID)
		}
	}

	if len(ids) == 0 {
		r.focused = ""
		return
	}

	idx := slices.Index(ids, r.focused)
	if idx < 0 {
		if step > 0 {
			r.focused = ids[0]
		} else {
			r.focused = ids[len(ids)-1]
		}
		return
	}

	r.focused = ids[(idx+step+len(ids))%len(ids)]
}

// Summary is a one-line description of the stack, for status bars.
func (r *Renderer) Summary() string {
	var counts [phaseCount]int
	for _, c := range r.cards {
		counts[c.phase]++
	}
	parts := []string{fmt.Sprintf("%d active", counts[PhaseEntering]+counts[PhaseVisible])}
	if counts[PhaseExiting] > 0 {
		parts = append(parts, fmt.Sprintf("%d leaving", counts[PhaseExiting]))
	}
	return strings.Join(parts, ", ")
}
