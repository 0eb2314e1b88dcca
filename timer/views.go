package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/countdown/internal/engine"
	"github.com/ayoisaiah/countdown/internal/ui"
)

// clockView renders HH:MM:SS, underlining the selected field while the
// duration can be edited.
func (t *Timer) clockView(styles ui.Styles) string {
	h, m, s := t.snap.Display()

	parts := make([]string, len(engine.Fields))

	for i, v := range []int64{h, m, s} {
		text := fmt.Sprintf("%02d", v)

		if t.snap.Editable && engine.Fields[i] == t.field {
			parts[i] = styles.Selected.Render(text)
			continue
		}

		parts[i] = styles.Clock.Render(text)
	}

	return strings.Join(parts, styles.Clock.Render(":"))
}

func (t *Timer) helpView() string {
	bindings := []key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.reset,
	}

	if t.snap.Editable {
		bindings = append(bindings,
			defaultKeymap.left,
			defaultKeymap.right,
			defaultKeymap.up,
			defaultKeymap.down,
		)
	}

	bindings = append(bindings, defaultKeymap.theme, defaultKeymap.quit)

	return t.help.ShortHelpView(bindings)
}

func (t *Timer) View() string {
	if t.closed {
		return ""
	}

	styles := t.theme.Styles()

	var s strings.Builder

	s.WriteString(styles.State.Render("[" + t.snap.State.String() + "]"))

	if t.snap.Editable {
		s.WriteString(styles.Hint.Render(" editing " + t.field.String()))
	}

	s.WriteString("\n\n")
	s.WriteString(t.clockView(styles))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.snap.FractionRemaining))

	if t.hint != "" {
		s.WriteString("\n\n" + styles.Error.Render(t.hint))
	}

	s.WriteString("\n\n" + t.helpView())

	return styles.Base.Render(s.String())
}
