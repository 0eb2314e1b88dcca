package scheduler

import (
	"sync"
	"time"
)

// Fake is a Scheduler that never fires on its own. Tests drive it with Fire.
type Fake struct {
	mu      sync.Mutex
	handles []*FakeHandle
}

// FakeHandle is a callback registered with a Fake.
type FakeHandle struct {
	fn        func(time.Duration)
	interval  time.Duration
	mu        sync.Mutex
	cancelled bool
}

// NewFake returns an empty Fake scheduler.
func NewFake() *Fake {
	return &Fake{}
}

// Start implements Scheduler.
func (f *Fake) Start(
	interval time.Duration,
	fn func(elapsed time.Duration),
) Handle {
	h := &FakeHandle{fn: fn, interval: interval}

	f.mu.Lock()
	f.handles = append(f.handles, h)
	f.mu.Unlock()

	return h
}

// Fire delivers elapsed to every handle that has not been cancelled and
// reports how many were fired.
func (f *Fake) Fire(elapsed time.Duration) int {
	var fired int

	for _, h := range f.Handles() {
		if h.Cancelled() {
			continue
		}

		h.fn(elapsed)
		fired++
	}

	return fired
}

// Handles returns every handle started so far, oldest first.
func (f *Fake) Handles() []*FakeHandle {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*FakeHandle(nil), f.handles...)
}

// Active returns the number of handles that have not been cancelled.
func (f *Fake) Active() int {
	var n int

	for _, h := range f.Handles() {
		if !h.Cancelled() {
			n++
		}
	}

	return n
}

// Last returns the most recently started handle, or nil.
func (f *Fake) Last() *FakeHandle {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.handles) == 0 {
		return nil
	}

	return f.handles[len(f.handles)-1]
}

// Cancel implements Handle.
func (h *FakeHandle) Cancel() {
	h.mu.Lock()
	h.cancelled = true
	h.mu.Unlock()
}

// Cancelled reports whether Cancel has been called.
func (h *FakeHandle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.cancelled
}

// Interval returns the interval the handle was started with.
func (h *FakeHandle) Interval() time.Duration {
	return h.interval
}

// FireLate invokes the callback even if the handle was cancelled, like a
// firing that was already in flight when Cancel ran.
func (h *FakeHandle) FireLate(elapsed time.Duration) {
	h.fn(elapsed)
}
