// Package debounce turns raw search keystrokes into committed search terms.
package debounce

import (
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer commits the latest input once it has been quiet for the quiet
// period. Input equal to the committed term cancels any pending commit.
type Debouncer struct {
	clock     clockwork.Clock
	quiet     time.Duration
	committed func() string
	commit    func(term string)

	mu      sync.Mutex
	timer   clockwork.Timer
	pending string
	gen     uint64
	closed  bool
}

// New returns a Debouncer. committed reports the term currently in effect and
// commit receives each settled term.
func New(clock clockwork.Clock, quiet time.Duration, committed func() string, commit func(term string)) *Debouncer {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &Debouncer{
		clock:     clock,
		quiet:     quiet,
		committed: committed,
		commit:    commit,
	}
}

func (d *Debouncer) Input(raw string) {
	term := strings.TrimSpace(raw)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.stopLocked()
	if term == d.committed() {
		return
	}

	d.gen++
	gen := d.gen
	d.pending = term
	d.timer = d.clock.AfterFunc(d.quiet, func() { d.fire(gen) })
}

// Pending reports the term waiting to be committed, if any.
func (d *Debouncer) Pending() (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending, d.timer != nil
}

// Close cancels the pending commit. Nothing is committed after Close returns.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.stopLocked()
}

// fire commits while holding the lock so Close cannot return between the
// check and the commit.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || gen != d.gen || d.timer == nil {
		return
	}
	term := d.pending
	d.timer = nil
	d.pending = ""

	d.commit(term)
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = ""
	// invalidates a callback that already fired but has not taken the lock yet
	d.gen++
}
