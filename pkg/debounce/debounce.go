// Package debounce coalesces bursts of values into one delayed callback.
package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the settling delay used when none is given.
const DefaultWindow = 250 * time.Millisecond

// Debouncer delivers only the last value pushed within a quiet window.
// Each Push restarts the window; when it elapses the callback receives the
// most recent value exactly once.
type Debouncer[T any] struct {
	window time.Duration
	fn     func(T)

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	latest T
}

// New creates a Debouncer calling fn. A zero window selects DefaultWindow.
func New[T any](window time.Duration, fn func(T)) *Debouncer[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer[T]{window: window, fn: fn}
}

// Push records v and restarts the window.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	seq := d.seq
	d.latest = v

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		value, ok := d.claim(seq)
		if !ok {
			return
		}
		d.fn(value)
	})
}

// claim reports whether seq is still the newest push. Stop() can lose the race
// against a timer that already fired, so the sequence decides.
func (d *Debouncer[T]) claim(seq uint64) (T, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if seq != d.seq {
		var zero T
		return zero, false
	}
	d.timer = nil
	return d.latest, true
}

// Cancel drops any pending value.
func (d *Debouncer[T]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a callback is scheduled.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Window returns the settling delay.
func (d *Debouncer[T]) Window() time.Duration {
	return d.window
}
