package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/colonyops/toaster/internal/core/notify"
)

// drainNotificationsMsg signals that the buffer holds payloads for the store.
type drainNotificationsMsg struct{}

// NotificationBuffer carries payloads from background goroutines into the
// update loop, which is the only place the store may be mutated.
type NotificationBuffer struct {
	mu       sync.Mutex
	payloads []notify.Payload
	signal   chan struct{}
}

// NewNotificationBuffer constructs a buffer for async notification delivery.
func NewNotificationBuffer() *NotificationBuffer {
	return &NotificationBuffer{
		payloads: make([]notify.Payload, 0),
		signal:   make(chan struct{}, 1),
	}
}

// Push appends a payload and emits a non-blocking drain signal.
func (b *NotificationBuffer) Push(p notify.Payload) {
	b.mu.Lock()
	b.payloads = append(b.payloads, p)
	b.mu.Unlock()

	select {
	case b.signal <- struct{}{}:
	default:
	}
}

// Drain returns all buffered payloads and clears the buffer.
func (b *NotificationBuffer) Drain() []notify.Payload {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.payloads) == 0 {
		return nil
	}

	out := make([]notify.Payload, len(b.payloads))
	copy(out, b.payloads)
	b.payloads = b.payloads[:0]
	return out
}

// WaitForSignal blocks until there are payloads ready to drain.
func (b *NotificationBuffer) WaitForSignal() tea.Cmd {
	return func() tea.Msg {
		<-b.signal
		return drainNotificationsMsg{}
	}
}
