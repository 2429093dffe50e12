package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is the default settle window. Editors commonly
// write a file as truncate+write+chmod, which arrives as several events.
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer coalesces bursts of Trigger calls into one run of fn, fired once
// no further Trigger arrived for the settle window.
type Debouncer struct {
	window time.Duration
	fn     func()

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer returns a Debouncer running fn. A zero window uses
// DefaultDebounceDuration.
func NewDebouncer(window time.Duration, fn func()) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceDuration
	}
	return &Debouncer{window: window, fn: fn}
}

// Trigger (re)starts the settle window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		// A newer Trigger or a Cancel superseded this timer after it fired.
		stale := gen != d.gen
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()

		if !stale {
			d.fn()
		}
	})
}

// Cancel drops any pending run.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Window returns the settle window.
func (d *Debouncer) Window() time.Duration {
	return d.window
}
