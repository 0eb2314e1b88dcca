package app

import "github.com/urfave/cli/v2"

var (
	hoursFlag = &cli.Int64Flag{
		Name:    "hours",
		Aliases: []string{"H"},
		Usage:   "Hours component of the starting duration (0-99)",
	}

	minutesFlag = &cli.Int64Flag{
		Name:    "minutes",
		Aliases: []string{"m"},
		Usage:   "Minutes component of the starting duration (0-99)",
	}

	secondsFlag = &cli.Int64Flag{
		Name:    "seconds",
		Aliases: []string{"s"},
		Usage:   "Seconds component of the starting duration (0-99)",
	}

	startFlag = &cli.BoolFlag{
		Name:  "start",
		Usage: "Start the countdown immediately",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	debugFlag = &cli.BoolFlag{
		Name:  "debug",
		Usage: "Write debug logs, including every key press, to the log file",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when the countdown ends",
	}

	cmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command when the countdown ends",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound to play when the countdown ends. Built-in options: bell, chime, beep.\n\t\t\t\tAccepts a file in the sounds directory or a path. Disable sound by setting to 'off'",
	}

	darkThemeFlag = &cli.BoolFlag{
		Name:  "dark-theme",
		Usage: "Start with the dark theme",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include countdowns active after this time (e.g. '2 days ago', 'last monday')",
		Value: "7 days ago",
	}

	untilFlag = &cli.StringFlag{
		Name:  "until",
		Usage: "Only include countdowns that started before this time (default: now)",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the history as JSON",
	}

	deleteFlag = &cli.BoolFlag{
		Name:  "delete",
		Usage: "Delete the listed countdowns after confirmation",
	}
)
