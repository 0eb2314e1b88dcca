// Package app defines the countdown command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the countdown app instance.
func Get() *cli.App {
	countdownApp := &cli.App{
		Name: "countdown",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		countdown is a terminal countdown timer. Set the hours, minutes and
		seconds, start it, pause it, and get notified when time is up.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name:  "history",
				Usage: "List finished countdowns. Defaults to the last 7 days",
				Flags: []cli.Flag{
					sinceFlag,
					untilFlag,
					jsonFlag,
					deleteFlag,
				},
				Action: historyAction,
			},
			{
				Name:   "sounds",
				Usage:  "List the available alert sounds",
				Action: soundsAction,
			},
			{
				Name:   "status",
				Usage:  "Print the status of the running timer",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			hoursFlag,
			minutesFlag,
			secondsFlag,
			startFlag,
			disableNotificationFlag,
			soundFlag,
			cmdFlag,
			darkThemeFlag,
			noColorFlag,
			debugFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return countdownApp
}
