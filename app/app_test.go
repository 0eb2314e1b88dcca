package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/engine"
	"github.com/ayoisaiah/countdown/internal/models"
	"github.com/ayoisaiah/countdown/internal/scheduler"
	"github.com/ayoisaiah/countdown/store"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func engineConfig() *config.Config {
	return &config.Config{
		Timer: config.TimerConfig{
			DefaultDuration: 10 * time.Minute,
			TickInterval:    50 * time.Millisecond,
		},
	}
}

func TestNewEngineAppliesCLIFields(t *testing.T) {
	cfg := engineConfig()
	cfg.CLI.Hours = int64Ptr(1)
	cfg.CLI.Seconds = int64Ptr(30)

	eng, err := newEngine(cfg, engine.WithScheduler(scheduler.NewFake()))
	if err != nil {
		t.Fatal(err)
	}

	defer eng.Close()

	assert.Equal(t, "01:10:30", eng.Snapshot().Configured.String())

	// reset returns to the configured default, not the flag values
	assert.NoError(t, eng.Reset())
	assert.Equal(t, "00:10:00", eng.Snapshot().Configured.String())
}

func TestNewEngineWithoutCLIFields(t *testing.T) {
	eng, err := newEngine(engineConfig(), engine.WithScheduler(scheduler.NewFake()))
	if err != nil {
		t.Fatal(err)
	}

	defer eng.Close()

	snap := eng.Snapshot()

	assert.Equal(t, engine.Reset, snap.State)
	assert.Equal(t, "00:10:00", snap.Configured.String())
}

func TestNewEngineKeepsFieldsAsEntered(t *testing.T) {
	cfg := engineConfig()
	cfg.CLI.Minutes = int64Ptr(99)
	cfg.CLI.Seconds = int64Ptr(90)

	eng, err := newEngine(cfg, engine.WithScheduler(scheduler.NewFake()))
	if err != nil {
		t.Fatal(err)
	}

	defer eng.Close()

	snap := eng.Snapshot()

	assert.Equal(t, [3]int64{0, 99, 90}, snap.Setting)
	assert.Equal(t, "01:40:30", snap.Configured.String())
}

func TestNewEngineRejectsOutOfRangeField(t *testing.T) {
	cfg := engineConfig()
	cfg.CLI.Minutes = int64Ptr(120)

	_, err := newEngine(cfg, engine.WithScheduler(scheduler.NewFake()))

	assert.ErrorIs(t, err, engine.ErrInvalidInput)
}

func TestParseRange(t *testing.T) {
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)

	since, until, err := parseRange("2 days ago", "", now)
	if err != nil {
		t.Fatal(err)
	}

	want := time.Date(2024, time.June, 8, 0, 0, 0, 0, since.Location())

	assert.True(t, since.Equal(want), "since = %v", since)
	assert.True(t, until.Equal(now))

	_, until, err = parseRange("3 days ago", "yesterday", now)
	assert.NoError(t, err)
	assert.Equal(t, 23, until.Hour())
	assert.Equal(t, 59, until.Minute())

	_, _, err = parseRange("yesterday", "3 days ago", now)
	assert.ErrorIs(t, err, errInvalidRange)

	_, _, err = parseRange("not a date at all", "", now)
	assert.ErrorIs(t, err, errInvalidDate)
}

func TestSoundNames(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"alarm10.ogg", "alarm2.ogg", "gong.wav", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	got, err := soundNames(dir)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, []string{"bell", "chime", "beep", "alarm2", "alarm10", "gong.wav"}, got)

	got, err = soundNames(filepath.Join(dir, "missing"))
	assert.NoError(t, err)
	assert.Equal(t, config.BuiltinSounds, got)
}

func TestPrintRunsTable(t *testing.T) {
	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.Local)

	runs := []*models.Run{
		{
			StartTime: start,
			EndTime:   start.Add(25 * time.Minute),
			Total:     25 * time.Minute,
			Elapsed:   25 * time.Minute,
			Completed: true,
		},
		{
			StartTime: start.Add(time.Hour),
			EndTime:   start.Add(time.Hour + 90*time.Second),
			Total:     time.Hour,
			Elapsed:   90 * time.Second,
		},
	}

	var buf bytes.Buffer

	assert.NoError(t, printRunsTable(&buf, nil, runs))

	out := buf.String()

	assert.Contains(t, out, "START DATE")
	assert.Contains(t, out, "Jun 01, 2024 09:00 AM")
	assert.Contains(t, out, "00:25:00")
	assert.Contains(t, out, "00:01:30")
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "abandoned")
}

func TestDelRuns(t *testing.T) {
	db, err := store.NewClient(filepath.Join(t.TempDir(), "countdown.db"))
	if err != nil {
		t.Fatal(err)
	}

	defer db.Close()

	start := time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)
	run := &models.Run{StartTime: start, EndTime: start.Add(time.Minute)}

	assert.NoError(t, db.SaveRun(run))

	stdin, stdout := config.Stdin, config.Stdout

	t.Cleanup(func() {
		config.Stdin, config.Stdout = stdin, stdout
	})

	var out bytes.Buffer

	config.Stdin = strings.NewReader("\n")
	config.Stdout = &out

	assert.NoError(t, delRuns(db, nil, []*models.Run{run}))
	assert.Contains(t, out.String(), "deleted permanently")

	runs, err := db.GetRuns(start.Add(-time.Hour), start.Add(time.Hour))
	assert.NoError(t, err)
	assert.Empty(t, runs)
}
