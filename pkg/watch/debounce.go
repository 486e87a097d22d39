package watch

import (
	"sync"
	"time"
)

// DefaultDebounce is the default settle window for change notifications.
const DefaultDebounce = 250 * time.Millisecond

// debouncer coalesces rapid triggers into a single callback. Editors
// often produce several filesystem events per save; only the last
// trigger within the window fires.
type debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
}

func newDebouncer(duration time.Duration) *debouncer {
	if duration <= 0 {
		duration = DefaultDebounce
	}
	return &debouncer{duration: duration}
}

// trigger schedules callback after the settle window, replacing any
// pending callback.
func (d *debouncer) trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, callback)
}

// cancel drops any pending callback.
func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
