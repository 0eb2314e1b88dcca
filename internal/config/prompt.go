package config

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
 ██████╗ ██████╗ ██╗   ██╗███╗   ██╗████████╗██████╗  ██████╗ ██╗    ██╗███╗   ██╗
██╔════╝██╔═══██╗██║   ██║████╗  ██║╚══██╔══╝██╔══██╗██╔═══██╗██║    ██║████╗  ██║
██║     ██║   ██║██║   ██║██╔██╗ ██║   ██║   ██║  ██║██║   ██║██║ █╗ ██║██╔██╗ ██║
██║     ██║   ██║██║   ██║██║╚██╗██║   ██║   ██║  ██║██║   ██║██║███╗██║██║╚██╗██║
╚██████╗╚██████╔╝╚██████╔╝██║ ╚████║   ██║   ██████╔╝╚██████╔╝╚███╔███╔╝██║ ╚████║
 ╚═════╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═══╝   ╚═╝   ╚═════╝  ╚═════╝  ╚══╝╚══╝ ╚═╝  ╚═══╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	DefaultDuration time.Duration
	DarkTheme       bool
}

// Prompter asks the user for first-run settings.
type Prompter func() (PromptOptions, error)

// WithPromptConfig returns an Option that configures settings via
// interactive prompts. It does nothing once a config file exists.
func WithPromptConfig(configPath string, prompt Prompter) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		if prompt == nil {
			prompt = promptUser
		}

		opts, err := prompt()
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	var opts PromptOptions

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure countdown for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'countdown edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[time.Duration]().
				Title("Default countdown length").
				Options(
					huh.NewOption("1 minute", time.Minute).Selected(true),
					huh.NewOption("5 minutes", 5*time.Minute),
					huh.NewOption("10 minutes", 10*time.Minute),
					huh.NewOption("25 minutes", 25*time.Minute),
					huh.NewOption("1 hour", time.Hour),
				).
				Value(&opts.DefaultDuration),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use the dark theme?").
				Value(&opts.DarkTheme),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the configuration.
// They are written to the config file by WithViperConfig.
func applyPromptOptions(c *Config, opts PromptOptions) {
	c.prompted = &opts
	c.Timer.DefaultDuration = opts.DefaultDuration
	c.Display.DarkTheme = opts.DarkTheme
}
