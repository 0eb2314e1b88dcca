package engine

import (
	"github.com/ayoisaiah/countdown/internal/timeutil"
)

// State is the run state of the timer.
type State int

const (
	Reset State = iota
	Paused
	Running
)

func (s State) String() string {
	switch s {
	case Reset:
		return "Reset"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	}

	return "Unknown"
}

// Field is one component of the hours:minutes:seconds display triple.
type Field int

const (
	Hour Field = iota
	Minute
	Second
)

// Fields lists the editable fields in display order.
var Fields = []Field{Hour, Minute, Second}

func (f Field) String() string {
	switch f {
	case Hour:
		return "hours"
	case Minute:
		return "minutes"
	case Second:
		return "seconds"
	}

	return "unknown"
}

// Cause identifies the event that produced a Snapshot.
type Cause int

const (
	CauseInit Cause = iota
	CauseToggle
	CauseTick
	CauseReset
	CauseAdjust
	CauseComplete
	CauseClose
)

func (c Cause) String() string {
	switch c {
	case CauseInit:
		return "init"
	case CauseToggle:
		return "toggle"
	case CauseTick:
		return "tick"
	case CauseReset:
		return "reset"
	case CauseAdjust:
		return "adjust"
	case CauseComplete:
		return "complete"
	case CauseClose:
		return "close"
	}

	return "unknown"
}

// Snapshot is a consistent, read-only copy of the engine state.
type Snapshot struct {
	// Seq increases with every state change.
	Seq   uint64
	Cause Cause
	State State
	// Setting is the hours, minutes, seconds as edited, indexed by Field.
	// Each is within [0, MaxFieldValue].
	Setting [3]int64
	// Configured is the sum of Setting, restored to the default on reset.
	Configured timeutil.Value
	Remaining  timeutil.Value
	// Total is the configured duration captured when the current run began.
	Total             timeutil.Value
	Editable          bool
	FractionRemaining float64
	// Completions counts the runs that reached zero.
	Completions uint64
}

// Display returns the triple to show: the setting while in Reset, the
// remaining time otherwise.
func (s Snapshot) Display() (h, m, sec int64) {
	if s.State == Reset {
		return s.Setting[Hour], s.Setting[Minute], s.Setting[Second]
	}

	return s.Remaining.Triple()
}
