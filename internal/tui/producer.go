package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/colonyops/toaster/internal/core/logging"
	"github.com/colonyops/toaster/internal/core/notify"
)

// Ticker publishes a periodic info notification from its own goroutine. It
// never touches the store; payloads travel through the NotificationBuffer.
type Ticker struct {
	buf      *NotificationBuffer
	interval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
	count  int
}

// NewTicker constructs a stopped ticker.
func NewTicker(buf *NotificationBuffer, interval time.Duration) *Ticker {
	return &Ticker{buf: buf, interval: interval}
}

// Start launches the producer goroutine. It stops when ctx is done or Stop is
// called.
func (t *Ticker) Start(ctx context.Context) {
	ctx, t.cancel = context.WithCancel(ctx)

	t.wg.Add(1)
	go t.run(ctx)

	log := logging.Component("ticker")
	log.Debug().
		Ctx(ctx).
		Dur("interval", t.interval).
		Msg("background producer started")
}

// Stop cancels the producer and waits for it to exit.
func (t *Ticker) Stop() {
	if t.cancel != nil {
		t.cancel()
	}
	t.wg.Wait()
}

func (t *Ticker) run(ctx context.Context) {
	defer t.wg.Done()

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-tick.C:
			t.count++
			t.buf.Push(notify.Payload{
				Kind:    notify.KindInfo,
				Title:   "Background job",
				Message: fmt.Sprintf("heartbeat #%d at %s", t.count, now.Format(time.Kitchen)),
			})
		}
	}
}
