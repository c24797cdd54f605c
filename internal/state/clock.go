package state

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewActivationID returns a unique id for one activation of an image set.
func NewActivationID() string {
	return uuid.NewString()
}

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Implementations must invoke f on the same
// goroutine that owns the engine.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock is a Clock backed by time.AfterFunc. Callbacks are handed to
// post, which moves them onto the UI goroutine (fyne.Do in the app).
type SystemClock struct {
	post func(func())
}

func NewSystemClock(post func(func())) *SystemClock {
	if post == nil {
		post = func(f func()) { f() }
	}
	return &SystemClock{post: post}
}

func (c *SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() { c.post(f) })
}

// Debouncer runs the most recently triggered callback once the delay has
// elapsed without another trigger.
type Debouncer struct {
	clock Clock
	delay time.Duration

	mu      sync.Mutex
	pending Timer
	// gen identifies the latest Trigger or Cancel. A timer that already
	// fired and waits in the post queue compares it before running.
	gen uint64
}

func NewDebouncer(clock Clock, delay time.Duration) *Debouncer {
	return &Debouncer{clock: clock, delay: delay}
}

// Trigger cancels any pending callback and schedules f.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
	}
	d.gen++
	gen := d.gen
	d.pending = d.clock.AfterFunc(d.delay, func() {
		if d.current(gen) {
			f()
		}
	})
}

func (d *Debouncer) current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen == gen
}

// Cancel drops the pending callback, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}
