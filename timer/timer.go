// Package timer is the terminal interface of countdown. It renders engine
// snapshots, maps key presses to engine intents and runs the side effects
// of a finished countdown.
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/engine"
	"github.com/ayoisaiah/countdown/internal/models"
	"github.com/ayoisaiah/countdown/internal/scheduler"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/store"
)

const (
	padding  = 2
	maxWidth = 80

	// snapshotBuffer is how many unread snapshots are held for the UI.
	// Older ones are dropped first; the latest state is never lost.
	snapshotBuffer = 16
)

// snapshotMsg carries an engine snapshot into the bubbletea loop.
type snapshotMsg engine.Snapshot

// alertDoneMsg reports the outcome of the completion side effects.
type alertDoneMsg struct {
	err error
}

// Option configures a Timer.
type Option func(*Timer)

// WithStore records finished runs in db.
func WithStore(db store.DB) Option {
	return func(t *Timer) {
		t.db = db
	}
}

// WithAlerter replaces the desktop alerter.
func WithAlerter(a Alerter) Option {
	return func(t *Timer) {
		t.alerter = a
	}
}

// WithClock sets the clock used to timestamp runs and status updates.
func WithClock(c scheduler.Clock) Option {
	return func(t *Timer) {
		t.clock = c
	}
}

// WithStatusFile writes the live timer status to path.
func WithStatusFile(path string) Option {
	return func(t *Timer) {
		t.statusPath = path
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Timer) {
		t.logger = l
	}
}

// Timer is the bubbletea model for a single countdown.
type Timer struct {
	engine  *engine.Engine
	db      store.DB
	alerter Alerter
	clock   scheduler.Clock
	logger  *slog.Logger
	opts    *config.Config
	theme   *ui.Theme

	help     help.Model
	progress progress.Model

	snaps       chan engine.Snapshot
	unsubscribe func()

	// snap is the newest snapshot seen, by Seq.
	snap  engine.Snapshot
	field engine.Field
	hint  string

	runStart      time.Time
	statusPath    string
	statusWritten time.Time
	closed        bool
}

// New returns a Timer that drives eng.
func New(eng *engine.Engine, cfg *config.Config, opts ...Option) *Timer {
	t := &Timer{
		engine:   eng,
		opts:     cfg,
		theme:    ui.NewTheme(cfg.Display.DarkTheme, cfg.Display.Color),
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill(cfg.Display.Color)),
		snaps:    make(chan engine.Snapshot, snapshotBuffer),
		field:    engine.Minute,
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.alerter == nil {
		t.alerter = NewDesktopAlerter(cfg)
	}

	if t.clock == nil {
		t.clock = scheduler.SystemClock
	}

	if t.logger == nil {
		t.logger = slog.Default()
	}

	t.progress.ShowPercentage = false

	// subscribe before reading the first snapshot so no change is missed
	t.unsubscribe = eng.Subscribe(t.receive)
	t.snap = eng.Snapshot()

	if t.snap.State != engine.Reset {
		t.runStart = t.clock.Now()
	}

	return t
}

// receive is the engine subscriber. It never blocks: when the buffer is
// full the oldest pending snapshot is discarded.
func (t *Timer) receive(s engine.Snapshot) {
	for {
		select {
		case t.snaps <- s:
			return
		default:
		}

		select {
		case <-t.snaps:
		default:
		}
	}
}

// listen waits for the next engine snapshot.
func (t *Timer) listen() tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(<-t.snaps)
	}
}

func (t *Timer) Init() tea.Cmd {
	t.writeStatus(t.snap, t.clock.Now())

	return t.listen()
}

// applySnapshot makes s current if it is newer than the last one seen and
// handles the run boundaries it reveals.
func (t *Timer) applySnapshot(s engine.Snapshot) tea.Cmd {
	if s.Seq <= t.snap.Seq {
		return nil
	}

	prev := t.snap
	t.snap = s

	now := t.clock.Now()

	var cmd tea.Cmd

	switch {
	case s.Completions > prev.Completions:
		t.record(&models.Run{
			StartTime: t.startedAt(prev, now),
			EndTime:   now,
			Total:     s.Total.Duration(),
			Elapsed:   s.Total.Duration(),
			Completed: true,
		})

		t.runStart = time.Time{}

		cmd = t.alert()

	case prev.State == engine.Reset && s.State != engine.Reset:
		t.runStart = now

	case prev.State != engine.Reset && s.State == engine.Reset:
		t.recordAbandoned(prev, now)
	}

	t.writeStatus(s, now)

	return cmd
}

// startedAt returns when the run in prev began, estimating it from the
// elapsed time if the start was not observed.
func (t *Timer) startedAt(prev engine.Snapshot, now time.Time) time.Time {
	if !t.runStart.IsZero() {
		return t.runStart
	}

	return now.Add(-elapsed(prev))
}

func elapsed(s engine.Snapshot) time.Duration {
	return s.Total.Duration() - s.Remaining.Duration()
}

func (t *Timer) recordAbandoned(prev engine.Snapshot, now time.Time) {
	t.record(&models.Run{
		StartTime: t.startedAt(prev, now),
		EndTime:   now,
		Total:     prev.Total.Duration(),
		Elapsed:   elapsed(prev),
	})

	t.runStart = time.Time{}
}

func (t *Timer) record(run *models.Run) {
	if t.db == nil || !t.opts.History.Enabled {
		return
	}

	err := t.db.SaveRun(run)
	if err != nil {
		t.logger.Error("saving run failed", "error", err)
	}
}

// alert runs the completion side effects off the UI goroutine.
func (t *Timer) alert() tea.Cmd {
	alerter := t.alerter

	return func() tea.Msg {
		return alertDoneMsg{err: alerter.Alert()}
	}
}

// Close stops the engine and records an unfinished run as abandoned. It is
// safe to call more than once.
func (t *Timer) Close() error {
	if t.closed {
		return nil
	}

	t.closed = true

	t.unsubscribe()

	// intents may have been applied since the last snapshot was received
	t.applySnapshot(t.engine.Snapshot())

	if t.snap.State != engine.Reset {
		t.recordAbandoned(t.snap, t.clock.Now())
	}

	t.removeStatus()

	return t.engine.Close()
}
