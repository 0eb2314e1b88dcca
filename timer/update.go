package timer

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/countdown/internal/engine"
)

// handleIntent applies the result of an engine intent. Rejected intents
// leave the timer unchanged and are shown as a hint.
func (t *Timer) handleIntent(err error) tea.Cmd {
	if err != nil {
		if !errors.Is(err, engine.ErrInvalidInput) &&
			!errors.Is(err, engine.ErrInvalidOperation) {
			t.logger.Error("timer intent failed", "error", err)
		}

		t.hint = err.Error()

		return nil
	}

	t.hint = ""

	return t.applySnapshot(t.engine.Snapshot())
}

// moveField selects the field step positions away, wrapping at the ends.
func (t *Timer) moveField(step int) {
	n := len(engine.Fields)
	t.field = engine.Fields[(int(t.field)+step+n)%n]
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		_ = t.Close()

		return t, tea.Quit

	case key.Matches(msg, defaultKeymap.togglePlay):
		return t, t.handleIntent(t.engine.ToggleRun())

	case key.Matches(msg, defaultKeymap.reset):
		return t, t.handleIntent(t.engine.Reset())

	case key.Matches(msg, defaultKeymap.theme):
		t.theme.Toggle()

		return t, nil
	}

	if !t.snap.Editable {
		return t, nil
	}

	switch {
	case key.Matches(msg, defaultKeymap.left):
		t.moveField(-1)

	case key.Matches(msg, defaultKeymap.right):
		t.moveField(1)

	case key.Matches(msg, defaultKeymap.up):
		return t, t.handleIntent(t.engine.AdjustField(t.field, 1))

	case key.Matches(msg, defaultKeymap.down):
		return t, t.handleIntent(t.engine.AdjustField(t.field, -1))
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case snapshotMsg:
		cmd = t.applySnapshot(engine.Snapshot(msg))

		if t.closed {
			return t, cmd
		}

		return t, tea.Batch(cmd, t.listen())

	case alertDoneMsg:
		if msg.err != nil {
			t.logger.Error("completion alert failed", "error", msg.err)
		}

		return t, nil

	case tea.KeyMsg:
		t.logger.Debug(spew.Sdump(msg))

		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		var progressModel tea.Model

		progressModel, cmd = t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
