package models

import (
	"time"
)

// Run is a finished countdown as recorded in the history store.
type Run struct {
	// StartTime is when the run left the Reset state
	StartTime time.Time `json:"start_time"`
	// EndTime is when the run reached zero, or when the program exited
	// with the run still active
	EndTime   time.Time     `json:"end_time"`
	Total     time.Duration `json:"total"`
	Elapsed   time.Duration `json:"elapsed"`
	Completed bool          `json:"completed"`
}

// Status describes a live timer for other processes.
type Status struct {
	EndTime     time.Time `json:"end_time"`
	State       string    `json:"state"`
	RemainingMS int64     `json:"remaining_ms"`
	TotalMS     int64     `json:"total_ms"`
}
