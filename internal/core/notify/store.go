// Package notify holds the transient notification queue and its types.
package notify

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Listener receives the full ordered collection after every mutation. The
// slice is a copy owned by the listener.
type Listener func([]Notification)

// Option configures a Store.
type Option func(*Store)

// WithIDFunc replaces the id generator. The function must never return the
// same value twice for the lifetime of the store.
func WithIDFunc(fn func() ID) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

type subscription struct {
	id uint64
	fn Listener
}

// Store is the single source of truth for active notifications: it owns their
// order and identity. It keeps no timers; auto-expiry belongs to renderers.
//
// A Store is confined to one goroutine, typically the Bubble Tea update loop.
// Producers on other goroutines must hand payloads to the owner instead of
// calling the Store directly.
type Store struct {
	items   []Notification
	subs    []subscription
	nextSub uint64

	newID func() ID
	now   func() time.Time

	dispatching bool
	pending     [][]Notification
}

// NewStore constructs an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		newID: func() ID { return ID(uuid.NewString()) },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Enqueue validates p, appends it to the end of the queue and notifies all
// subscribers before returning. Nothing is added when validation fails.
func (s *Store) Enqueue(p Payload) (ID, error) {
	if err := p.Validate(); err != nil {
		return "", &ValidationError{Err: err}
	}

	n := Notification{
		ID:        s.newID(),
		Kind:      p.Kind,
		Title:     p.Title,
		Message:   p.Message,
		Action:    p.Action,
		Lifetime:  p.Lifetime,
		CreatedAt: s.now(),
	}

	s.items = append(s.items, n)
	s.publish()
	return n.ID, nil
}

// Dequeue removes the notification with the given id. Removing an id that is
// not present is a no-op and fires no notification; timers and user dismissals
// may race to remove the same id. Reports whether anything was removed.
func (s *Store) Dequeue(id ID) bool {
	idx := slices.IndexFunc(s.items, func(n Notification) bool { return n.ID == id })
	if idx < 0 {
		return false
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	s.publish()
	return true
}

// Clear removes every notification and fires a single notification. Clearing
// an empty store fires nothing.
func (s *Store) Clear() {
	if len(s.items) == 0 {
		return
	}
	s.items = nil
	s.publish()
}

// Subscribe registers fn for every subsequent mutation. The returned function
// removes the subscription and is safe to call any number of times.
func (s *Store) Subscribe(fn Listener) func() {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool { return sub.id == id })
	}
}

// Snapshot returns a copy of the current ordered collection.
func (s *Store) Snapshot() []Notification {
	return slices.Clone(s.items)
}

// Len returns the number of active notifications.
func (s *Store) Len() int {
	return len(s.items)
}

// Get returns the active notification with the given id.
func (s *Store) Get(id ID) (Notification, bool) {
	for _, n := range s.items {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

// Successf enqueues a success notification.
func (s *Store) Successf(format string, args ...any) (ID, error) {
	return s.enqueuef(KindSuccess, format, args...)
}

// Errorf enqueues an error notification.
func (s *Store) Errorf(format string, args ...any) (ID, error) {
	return s.enqueuef(KindError, format, args...)
}

// Warnf enqueues a warning notification.
func (s *Store) Warnf(format string, args ...any) (ID, error) {
	return s.enqueuef(KindWarning, format, args...)
}

// Infof enqueues an info notification.
func (s *Store) Infof(format string, args ...any) (ID, error) {
	return s.enqueuef(KindInfo, format, args...)
}

func (s *Store) enqueuef(kind Kind, format string, args ...any) (ID, error) {
	return s.Enqueue(Payload{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	})
}

// publish delivers the current state to every subscriber. Mutations made by a
// listener during delivery are queued and delivered once the current round
// finishes, so every subscriber observes states in mutation order.
func (s *Store) publish() {
	s.pending = append(s.pending, s.Snapshot())
	if s.dispatching {
		return
	}

	s.dispatching = true
	defer func() {
		s.dispatching = false
		s.pending = nil
	}()

	for len(s.pending) > 0 {
		state := s.pending[0]
		s.pending = s.pending[1:]

		subs := slices.Clone(s.subs)
		for _, sub := range subs {
			if !s.subscribed(sub.id) {
				continue
			}
			sub.fn(slices.Clone(state))
		}
	}
}

func (s *Store) subscribed(id uint64) bool {
	return slices.ContainsFunc(s.subs, func(sub subscription) bool { return sub.id == id })
}
