package timer

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/ayoisaiah/countdown/internal/engine"
	"github.com/ayoisaiah/countdown/internal/models"
	"github.com/ayoisaiah/countdown/internal/osutil"
	"github.com/ayoisaiah/countdown/internal/timeutil"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/store"
)

// statusInterval limits how often a running timer rewrites the status file.
const statusInterval = time.Second

// newStatus describes snap as seen at now.
func newStatus(snap engine.Snapshot, now time.Time) models.Status {
	s := models.Status{
		State:       snap.State.String(),
		RemainingMS: snap.Remaining.Millis(),
		TotalMS:     snap.Total.Millis(),
	}

	if snap.State == engine.Running {
		s.EndTime = now.Add(snap.Remaining.Duration())
	}

	return s
}

// writeStatus records snap in the status file. Ticks are throttled to one
// write per statusInterval; every other change is written immediately.
func (t *Timer) writeStatus(snap engine.Snapshot, now time.Time) {
	if t.statusPath == "" {
		return
	}

	if snap.Cause == engine.CauseTick && now.Sub(t.statusWritten) < statusInterval {
		return
	}

	b, err := json.Marshal(newStatus(snap, now))
	if err != nil {
		t.logger.Error("encoding status failed", "error", err)
		return
	}

	err = os.WriteFile(t.statusPath, b, osutil.FilePermission)
	if err != nil {
		t.logger.Error("writing status file failed", "error", err)
		return
	}

	t.statusWritten = now
}

func (t *Timer) removeStatus() {
	if t.statusPath == "" {
		return
	}

	err := os.Remove(t.statusPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		t.logger.Error("removing status file failed", "error", err)
	}
}

// FormatStatus renders a status line such as "[Running] 00:04:59". The
// remaining time of a running timer is computed from its end time.
func FormatStatus(theme *ui.Theme, s models.Status, now time.Time) string {
	remaining := timeutil.Millis(s.RemainingMS)

	if s.State == engine.Running.String() && !s.EndTime.IsZero() {
		remaining = timeutil.FromDuration(s.EndTime.Sub(now))
	}

	return fmt.Sprintf("%s %s", theme.StateLabel(s.State), remaining)
}

// ReportStatus prints the status of the timer running in another process.
// Nothing is printed if no instance is active.
func ReportStatus(
	w io.Writer,
	theme *ui.Theme,
	dbPath, statusPath string,
	now time.Time,
) error {
	running, err := store.IsRunning(dbPath)
	if err != nil || !running {
		return err
	}

	b, err := os.ReadFile(statusPath)
	if err != nil {
		// missing file should not return an error
		return nil
	}

	var s models.Status

	err = json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, FormatStatus(theme, s, now))

	return err
}
