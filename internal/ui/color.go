// Package ui holds the countdown theme: lipgloss styles for the timer view
// and pterm colour helpers for plain command output.
package ui

import (
	"github.com/pterm/pterm"
)

type colorFunc func(a ...any) string

// colorize picks the bright variant in dark mode. A nil theme is light.
func (t *Theme) colorize(light, dark colorFunc, a any) string {
	if t != nil && t.dark {
		return dark(a)
	}

	return light(a)
}

func (t *Theme) Green(a any) string {
	return t.colorize(pterm.Green, pterm.LightGreen, a)
}

func (t *Theme) Yellow(a any) string {
	return t.colorize(pterm.Yellow, pterm.LightYellow, a)
}

func (t *Theme) Cyan(a any) string {
	return t.colorize(pterm.Cyan, pterm.LightCyan, a)
}

func (t *Theme) Red(a any) string {
	return t.colorize(pterm.Red, pterm.LightRed, a)
}

// StateLabel renders a bracketed run state, coloured by state name.
func (t *Theme) StateLabel(state string) string {
	label := "[" + state + "]"

	switch state {
	case "Running":
		return t.Green(label)
	case "Paused":
		return t.Yellow(label)
	default:
		return t.Cyan(label)
	}
}
