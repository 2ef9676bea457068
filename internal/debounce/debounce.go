// Package debounce coalesces bursts of edits into one action per key after a
// quiet period.
package debounce

import (
	"time"

	"lifeboard/internal/core"
)

// DefaultQuiet is the quiet period used when none is configured.
const DefaultQuiet = 500 * time.Millisecond

// Scheduler arms one-shot timers. core.Loop satisfies it.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) *core.Timer
}

// Coordinator keeps at most one pending timer per key. Keys are independent.
type Coordinator[K comparable] struct {
	sched   Scheduler
	quiet   time.Duration
	pending map[K]*core.Timer
}

// New returns a coordinator arming timers on s. A non-positive quiet period
// falls back to DefaultQuiet.
func New[K comparable](s Scheduler, quiet time.Duration) *Coordinator[K] {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Coordinator[K]{sched: s, quiet: quiet, pending: map[K]*core.Timer{}}
}

// Quiet returns the quiet period.
func (c *Coordinator[K]) Quiet() time.Duration { return c.quiet }

// Schedule cancels any pending timer for key and arms fn to run once the
// quiet period elapses without another Schedule or Cancel for the same key.
// The key is no longer pending when fn runs.
func (c *Coordinator[K]) Schedule(key K, fn func()) {
	c.Cancel(key)
	var t *core.Timer
	t = c.sched.AfterFunc(c.quiet, func() {
		if c.pending[key] == t {
			delete(c.pending, key)
		}
		fn()
	})
	c.pending[key] = t
}

// Cancel disarms the pending timer for key. It reports whether one was armed.
func (c *Coordinator[K]) Cancel(key K) bool {
	t, ok := c.pending[key]
	if !ok {
		return false
	}
	delete(c.pending, key)
	return t.Stop()
}

// Pending reports whether key has an armed timer.
func (c *Coordinator[K]) Pending(key K) bool {
	_, ok := c.pending[key]
	return ok
}

// PendingOther reports whether any key other than key has an armed timer.
func (c *Coordinator[K]) PendingOther(key K) bool {
	for k := range c.pending {
		if k != key {
			return true
		}
	}
	return false
}

// CancelAll disarms every pending timer.
func (c *Coordinator[K]) CancelAll() {
	for k := range c.pending {
		c.Cancel(k)
	}
}
