package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles used by the timer view.
type Styles struct {
	Base     lipgloss.Style
	Clock    lipgloss.Style
	Selected lipgloss.Style
	State    lipgloss.Style
	Hint     lipgloss.Style
	Error    lipgloss.Style
}

// Theme is a dark/light flag plus an accent colour. It has no knowledge of
// the timer; toggling it never changes timer state.
type Theme struct {
	accent lipgloss.Color
	dark   bool
}

// NewTheme returns a theme with the given mode and accent colour.
func NewTheme(dark bool, accent string) *Theme {
	return &Theme{
		dark:   dark,
		accent: lipgloss.Color(accent),
	}
}

// Dark reports whether the dark theme is active.
func (t *Theme) Dark() bool {
	return t.dark
}

// Toggle flips between the dark and light themes.
func (t *Theme) Toggle() {
	t.dark = !t.dark
}

// Styles returns the styles for the current mode.
func (t *Theme) Styles() Styles {
	fg, dim, bg := lipgloss.Color("235"), lipgloss.Color("244"), lipgloss.Color("255")
	if t.dark {
		fg, dim, bg = lipgloss.Color("252"), lipgloss.Color("241"), lipgloss.Color("235")
	}

	return Styles{
		Base:     lipgloss.NewStyle().Padding(1, 1).Foreground(fg).Background(bg),
		Clock:    lipgloss.NewStyle().Bold(true).Foreground(fg).Background(bg),
		Selected: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(t.accent).Background(bg),
		State:    lipgloss.NewStyle().Foreground(t.accent).Background(bg),
		Hint:     lipgloss.NewStyle().Foreground(dim).Background(bg),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(bg),
	}
}
