package toast

import (
	"context"

	"github.com/colonyops/toaster/internal/core/notify"
)

// Phase is the lifecycle state of a rendered card.
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseVisible
	PhaseExiting
	PhaseRemoved

	phaseCount = iota
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseExiting:
		return "exiting"
	case PhaseRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// card is the renderer's local state for one notification. It outlives the
// notification's presence in the store while its exit animation runs.
type card struct {
	n      notify.Notification
	phase  Phase
	frame  int
	cancel context.CancelFunc
}

// interactive reports whether the card still accepts dismiss and activate.
func (c *card) interactive() bool {
	return c.phase == PhaseEntering || c.phase == PhaseVisible
}

// stopTimer cancels the pending auto-expiry, if any. Safe to call repeatedly.
func (c *card) stopTimer() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Card is a read-only view of a rendered card.
type Card struct {
	Notification notify.Notification
	Phase        Phase
	Progress     float64 // 0..1 through the current enter/exit animation
	Focused      bool
	TimerActive  bool
}
