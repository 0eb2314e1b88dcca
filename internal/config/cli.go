package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Sound         string
	Cmd           string
	Hours         *int64
	Minutes       *int64
	Seconds       *int64
	DisableNotify bool
	DarkTheme     bool
	AutoStart     bool
	Debug         bool
	NoColor       bool
}

// WithCLIConfig returns an Option that loads configuration from CLI flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Sound:         ctx.String("sound"),
			Cmd:           ctx.String("cmd"),
			Hours:         intFlag(ctx, "hours"),
			Minutes:       intFlag(ctx, "minutes"),
			Seconds:       intFlag(ctx, "seconds"),
			DisableNotify: ctx.Bool("disable-notification"),
			DarkTheme:     ctx.Bool("dark-theme"),
			AutoStart:     ctx.Bool("start"),
			Debug:         ctx.Bool("debug"),
			NoColor:       ctx.Bool("no-color"),
		}

		return applyCLIOptions(c, opts)
	}
}

// intFlag returns the flag value only if the user set it.
func intFlag(ctx *cli.Context, name string) *int64 {
	if !ctx.IsSet(name) {
		return nil
	}

	v := ctx.Int64(name)

	return &v
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) error {
	for _, f := range []struct {
		name  string
		value *int64
	}{
		{"hours", opts.Hours},
		{"minutes", opts.Minutes},
		{"seconds", opts.Seconds},
	} {
		if f.value != nil && (*f.value < 0 || *f.value > maxFieldValue) {
			return errInvalidCLIField.Fmt(f.name, *f.value)
		}
	}

	c.CLI.Hours = opts.Hours
	c.CLI.Minutes = opts.Minutes
	c.CLI.Seconds = opts.Seconds
	c.CLI.AutoStart = opts.AutoStart
	c.CLI.Debug = opts.Debug
	c.CLI.NoColor = opts.NoColor

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.DarkTheme {
		c.Display.DarkTheme = true
	}

	if opts.Sound != "" {
		c.Notifications.Sound = opts.Sound
	}

	if opts.Cmd != "" {
		c.Settings.Cmd = opts.Cmd
	}

	return nil
}
