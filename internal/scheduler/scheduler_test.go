package scheduler

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stepClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now
	c.now = c.now.Add(c.step)

	return now
}

func TestTickerReportsElapsedFromClock(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0), step: 250 * time.Millisecond}
	ticker := NewTicker(clock)

	got := make(chan time.Duration, 8)

	h := ticker.Start(time.Millisecond, func(elapsed time.Duration) {
		select {
		case got <- elapsed:
		default:
		}
	})
	defer h.Cancel()

	for range 3 {
		select {
		case e := <-got:
			assert.Equal(t, 250*time.Millisecond, e)
		case <-time.After(2 * time.Second):
			t.Fatal("ticker did not fire")
		}
	}
}

func TestTickerStopsAfterCancel(t *testing.T) {
	var calls atomic.Int64

	h := NewTicker(nil).Start(time.Millisecond, func(time.Duration) {
		calls.Add(1)
	})

	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	h.Cancel()
	h.Cancel()

	// one firing may already be in flight
	afterCancel := calls.Load()

	time.Sleep(20 * time.Millisecond)

	assert.LessOrEqual(t, calls.Load(), afterCancel+1)
}

func TestFakeFiresOnlyActiveHandles(t *testing.T) {
	f := NewFake()

	var a, b time.Duration

	ha := f.Start(10*time.Millisecond, func(e time.Duration) { a += e })
	f.Start(10*time.Millisecond, func(e time.Duration) { b += e })

	assert.Equal(t, 2, f.Fire(time.Second))

	ha.Cancel()

	assert.Equal(t, 1, f.Fire(time.Second))
	assert.Equal(t, time.Second, a)
	assert.Equal(t, 2*time.Second, b)
	assert.Equal(t, 1, f.Active())
	assert.Equal(t, 10*time.Millisecond, f.Last().Interval())
}

func TestFakeFireLateIgnoresCancellation(t *testing.T) {
	f := NewFake()

	var calls int

	f.Start(time.Millisecond, func(time.Duration) { calls++ })

	h := f.Last()
	h.Cancel()
	h.FireLate(time.Millisecond)

	assert.True(t, h.Cancelled())
	assert.Equal(t, 1, calls)
	assert.Zero(t, f.Fire(time.Millisecond))
}
