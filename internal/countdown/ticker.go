// Package countdown publishes the time remaining until an event starts.
package countdown

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/observable"
	"github.com/wb-go/wbf/logger"
)

const DefaultPeriod = time.Second

// Ticker recomputes the remaining time once per period and stops by itself
// after publishing the expired state. At most one countdown runs per Ticker.
type Ticker struct {
	clock  clockwork.Clock
	period time.Duration
	logger logger.Logger
	value  *observable.Value[domain.Countdown]

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func New(clock clockwork.Clock, period time.Duration, log logger.Logger) *Ticker {
	if period <= 0 {
		period = DefaultPeriod
	}
	return &Ticker{
		clock:  clock,
		period: period,
		logger: log,
		value:  observable.New(domain.Countdown{Expired: true}),
	}
}

func (t *Ticker) Current() domain.Countdown {
	return t.value.Get()
}

func (t *Ticker) Subscribe(fn func(domain.Countdown)) (unsubscribe func()) {
	return t.value.Subscribe(fn)
}

// Start counts down to target, stopping any countdown already running. The
// first value is published before Start returns.
func (t *Ticker) Start(target time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	if t.publish(target) {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	ticker := t.clock.NewTicker(t.period)
	done := make(chan struct{})
	t.cancel = cancel
	t.done = done

	t.logger.Debug("countdown started",
		logger.String("target", target.Format(time.RFC3339)),
		logger.Duration("period", t.period),
	)

	go t.run(ctx, ticker, target, done)
}

// Stop halts the countdown and waits for its goroutine to exit. Nothing is
// published after Stop returns.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
}

func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done == nil {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

func (t *Ticker) stopLocked() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	t.cancel = nil
	t.done = nil
}

func (t *Ticker) run(ctx context.Context, ticker clockwork.Ticker, target time.Time, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if ctx.Err() != nil {
				return
			}
			if t.publish(target) {
				t.logger.Debug("countdown expired", logger.String("target", target.Format(time.RFC3339)))
				return
			}
		}
	}
}

// publish reports whether the countdown has expired.
func (t *Ticker) publish(target time.Time) bool {
	c := domain.RemainingUntil(target, t.clock.Now())
	t.value.Set(c)
	return c.Expired
}
