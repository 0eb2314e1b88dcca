// Package scheduler provides cancellable periodic callbacks that report the
// wall-clock time elapsed between firings
package scheduler

import (
	"sync"
	"time"
)

// Clock provides the current time. It allows elapsed time to be controlled
// in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default Clock implementation using the standard library.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Handle controls a periodic callback started by a Scheduler.
type Handle interface {
	// Cancel stops future firings. It is safe to call more than once and
	// never waits for a callback that is already running.
	Cancel()
}

// Scheduler starts periodic callbacks.
type Scheduler interface {
	// Start calls fn every interval with the time elapsed since the previous
	// call, or since Start for the first call.
	Start(interval time.Duration, fn func(elapsed time.Duration)) Handle
}

// Ticker is a Scheduler backed by time.Ticker. Each Start runs its own
// goroutine until the returned handle is cancelled.
type Ticker struct {
	clock Clock
}

// NewTicker returns a Ticker that measures elapsed time with clock.
func NewTicker(clock Clock) *Ticker {
	if clock == nil {
		clock = SystemClock
	}

	return &Ticker{clock: clock}
}

type tickerHandle struct {
	done chan struct{}
	once sync.Once
}

func (h *tickerHandle) Cancel() {
	h.once.Do(func() {
		close(h.done)
	})
}

func (h *tickerHandle) cancelled() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Start implements Scheduler.
func (t *Ticker) Start(
	interval time.Duration,
	fn func(elapsed time.Duration),
) Handle {
	h := &tickerHandle{done: make(chan struct{})}

	ticker := time.NewTicker(interval)
	last := t.clock.Now()

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				// both channels may be ready at once
				if h.cancelled() {
					return
				}

				now := t.clock.Now()
				fn(now.Sub(last))
				last = now
			}
		}
	}()

	return h
}
