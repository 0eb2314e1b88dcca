// Package engine implements the countdown state machine. An Engine moves
// between Reset, Running and Paused in response to intents and ticks from
// an injected scheduler, and publishes a Snapshot after every change.
package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/countdown/internal/scheduler"
	"github.com/ayoisaiah/countdown/internal/timeutil"
)

const (
	// DefaultDuration is restored by Reset unless WithDefault is used.
	DefaultDuration = time.Minute

	// DefaultTickInterval is how often a running timer is advanced.
	DefaultTickInterval = 50 * time.Millisecond

	// MaxFieldValue is the largest value a single display field can hold.
	MaxFieldValue = 99
)

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler sets the tick source. Tests pass a scheduler.Fake.
func WithScheduler(s scheduler.Scheduler) Option {
	return func(e *Engine) {
		e.sched = s
	}
}

// WithDefault sets the duration the engine starts with and returns to on
// reset.
func WithDefault(v timeutil.Value) Option {
	return func(e *Engine) {
		e.def = v
	}
}

// WithTickInterval sets how often a running timer is advanced.
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithLogger sets the logger used for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// Engine is a single countdown timer. All methods are safe for concurrent
// use; intents and ticks are applied one at a time in arrival order.
type Engine struct {
	sched    scheduler.Scheduler
	logger   *slog.Logger
	interval time.Duration
	def      timeutil.Value

	mu sync.Mutex

	// fields is the hours, minutes, seconds setting as edited. configured is
	// always its sum.
	fields      [3]int64
	configured  timeutil.Value
	remaining   timeutil.Value
	total       timeutil.Value
	state       State
	editable    bool
	fraction    float64
	seq         uint64
	completions uint64
	cause       Cause
	closed      bool

	// handle is non-nil exactly while state is Running. gen identifies the
	// current tick source so firings from a cancelled one are dropped.
	handle scheduler.Handle
	gen    uint64
	// carry holds the sub-millisecond part of elapsed time not yet applied.
	carry time.Duration

	subMu   sync.Mutex
	subs    map[int]func(Snapshot)
	nextSub int
}

// New returns an engine in the Reset state holding the default duration.
func New(opts ...Option) *Engine {
	e := &Engine{
		interval: DefaultTickInterval,
		def:      timeutil.FromDuration(DefaultDuration),
		subs:     make(map[int]func(Snapshot)),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.sched == nil {
		e.sched = scheduler.NewTicker(scheduler.SystemClock)
	}

	if e.logger == nil {
		e.logger = slog.Default()
	}

	e.fields = fieldsOf(e.def)
	e.configured = e.def
	e.remaining = e.def
	e.state = Reset
	e.editable = true
	e.cause = CauseInit

	return e
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.snapshotLocked()
}

// Subscribe registers fn to receive a snapshot after every state change.
// fn runs on the goroutine that caused the change, outside the engine lock,
// so it may call back into the engine. The returned function unsubscribes.
func (e *Engine) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	e.subMu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	e.subMu.Unlock()

	return func() {
		e.subMu.Lock()
		delete(e.subs, id)
		e.subMu.Unlock()
	}
}

// ToggleRun starts the timer from Reset, pauses it while Running, and
// resumes it while Paused. Starting with a zero duration does nothing.
func (e *Engine) ToggleRun() error {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return ErrInvalidOperation.Wrap(errClosed)
	}

	switch e.state {
	case Reset:
		if e.configured.IsZero() {
			e.mu.Unlock()
			return nil
		}

		e.total = e.configured
		e.remaining = e.configured
		e.fraction = e.remaining.Fraction(e.total)
		e.editable = false
		e.startLocked()

		e.logger.Debug(
			"timer started",
			slog.String("total", e.total.String()),
		)
	case Paused:
		e.startLocked()

		e.logger.Debug(
			"timer resumed",
			slog.String("remaining", e.remaining.String()),
		)
	case Running:
		e.stopLocked()
		e.state = Paused

		e.logger.Debug(
			"timer paused",
			slog.String("remaining", e.remaining.String()),
		)
	}

	snap := e.changedLocked(CauseToggle)

	e.mu.Unlock()

	e.publish(snap)

	return nil
}

// Reset stops the timer and restores the default duration.
func (e *Engine) Reset() error {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return ErrInvalidOperation.Wrap(errClosed)
	}

	e.resetLocked()

	e.logger.Debug("timer reset")

	snap := e.changedLocked(CauseReset)

	e.mu.Unlock()

	e.publish(snap)

	return nil
}

// AdjustField adds delta to one field of the configured duration. The
// change is rejected with ErrInvalidOperation unless the timer is editable,
// and with ErrInvalidInput if the field would leave [0, MaxFieldValue].
func (e *Engine) AdjustField(field Field, delta int64) error {
	return e.editField(field, func(current int64) int64 {
		return current + delta
	})
}

// SetField sets one field of the configured duration under the same rules
// as AdjustField.
func (e *Engine) SetField(field Field, value int64) error {
	return e.editField(field, func(int64) int64 {
		return value
	})
}

func (e *Engine) editField(field Field, update func(int64) int64) error {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return ErrInvalidOperation.Wrap(errClosed)
	}

	if !e.editable {
		e.mu.Unlock()
		return ErrInvalidOperation.Wrap(errNotEditable)
	}

	fields, v, err := updateField(e.fields, field, update)
	if err != nil {
		e.mu.Unlock()
		return err
	}

	e.fields = fields
	e.configured = v
	e.remaining = v

	snap := e.changedLocked(CauseAdjust)

	e.mu.Unlock()

	e.publish(snap)

	return nil
}

// Close cancels any tick source and rejects further intents. Subscribers
// receive a final snapshot and are then dropped.
func (e *Engine) Close() error {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return nil
	}

	e.stopLocked()
	e.closed = true

	if e.state == Running {
		e.state = Paused
	}

	snap := e.changedLocked(CauseClose)

	e.mu.Unlock()

	e.publish(snap)

	e.subMu.Lock()
	clear(e.subs)
	e.subMu.Unlock()

	return nil
}

// tick advances a running timer by elapsed. gen is the generation of the
// tick source that fired.
func (e *Engine) tick(gen uint64, elapsed time.Duration) {
	e.mu.Lock()

	if e.closed || e.state != Running || gen != e.gen {
		e.mu.Unlock()
		return
	}

	elapsed += e.carry
	ms := elapsed.Milliseconds()
	e.carry = elapsed - time.Duration(ms)*time.Millisecond

	next := e.remaining.SubtractElapsed(ms)

	var snap Snapshot

	if next.IsZero() {
		e.remaining = next
		e.resetLocked()
		e.completions++

		e.logger.Debug(
			"timer completed",
			slog.String("total", e.total.String()),
		)

		snap = e.changedLocked(CauseComplete)
	} else {
		e.remaining = next
		e.fraction = next.Fraction(e.total)

		snap = e.changedLocked(CauseTick)
	}

	e.mu.Unlock()

	e.publish(snap)
}

func (e *Engine) startLocked() {
	e.stopLocked()

	e.state = Running
	e.carry = 0

	gen := e.gen

	e.handle = e.sched.Start(e.interval, func(elapsed time.Duration) {
		e.tick(gen, elapsed)
	})
}

func (e *Engine) stopLocked() {
	if e.handle != nil {
		e.handle.Cancel()
		e.handle = nil
	}

	e.gen++
}

func (e *Engine) resetLocked() {
	e.stopLocked()

	e.fields = fieldsOf(e.def)
	e.configured = e.def
	e.remaining = e.configured
	e.fraction = 0
	e.editable = true
	e.state = Reset
	e.carry = 0
}

func (e *Engine) changedLocked(cause Cause) Snapshot {
	e.seq++
	e.cause = cause

	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Seq:               e.seq,
		Cause:             e.cause,
		State:             e.state,
		Setting:           e.fields,
		Configured:        e.configured,
		Remaining:         e.remaining,
		Total:             e.total,
		Editable:          e.editable,
		FractionRemaining: e.fraction,
		Completions:       e.completions,
	}
}

func (e *Engine) publish(snap Snapshot) {
	e.subMu.Lock()

	subs := make([]func(Snapshot), 0, len(e.subs))
	for _, fn := range e.subs {
		subs = append(subs, fn)
	}

	e.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// updateField applies update to one field of the setting. Each field is
// range checked on its own; seconds and minutes may exceed 59.
func updateField(
	fields [3]int64,
	field Field,
	update func(int64) int64,
) ([3]int64, timeutil.Value, error) {
	if field < Hour || field > Second {
		return fields, timeutil.Value{}, ErrInvalidInput.Wrap(
			errUnknownField.Fmt(int(field)),
		)
	}

	next := fields
	next[field] = update(fields[field])

	if next[field] < 0 || next[field] > MaxFieldValue {
		return fields, timeutil.Value{}, ErrInvalidInput.Wrap(
			errFieldRange.Fmt(field, 0, MaxFieldValue, next[field]),
		)
	}

	v, err := timeutil.FromTriple(next[Hour], next[Minute], next[Second])
	if err != nil {
		return fields, timeutil.Value{}, ErrInvalidInput.Wrap(err)
	}

	return next, v, nil
}

func fieldsOf(v timeutil.Value) [3]int64 {
	h, m, s := v.Triple()

	return [3]int64{h, m, s}
}

// String implements fmt.Stringer for debugging.
func (e *Engine) String() string {
	s := e.Snapshot()

	return fmt.Sprintf("%s %s/%s", s.State, s.Remaining, s.Total)
}
