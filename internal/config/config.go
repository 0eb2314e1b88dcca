// Package config builds the countdown configuration from the config file,
// command-line flags and first-run prompts
package config

import (
	"fmt"
	"io"
	"os"
	"time"
)

type (
	// Config holds all configuration settings
	Config struct {
		Timer         TimerConfig
		Notifications NotificationConfig
		Display       DisplayConfig
		Settings      SettingsConfig
		History       HistoryConfig
		CLI           CLIConfig

		prompted *PromptOptions
	}

	// TimerConfig holds countdown settings
	TimerConfig struct {
		// DefaultDuration is what the timer starts with and returns to on reset
		DefaultDuration time.Duration
		TickInterval    time.Duration
	}

	// NotificationConfig holds completion alert settings
	NotificationConfig struct {
		Message string
		Sound   string
		Enabled bool
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		Color     string
		DarkTheme bool
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		// Cmd runs after every completed countdown
		Cmd string
	}

	// HistoryConfig controls the run history store
	HistoryConfig struct {
		Enabled bool
	}

	// CLIConfig holds values that only come from command-line flags
	CLIConfig struct {
		// Fields overrides individual components of the starting duration.
		// A nil entry leaves the component as configured.
		Hours     *int64
		Minutes   *int64
		Seconds   *int64
		AutoStart bool
		Debug     bool
		NoColor   bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

const (
	SoundOff = "off"

	defaultDuration     = time.Minute
	defaultTickInterval = 50 * time.Millisecond
	defaultMessage      = "Time is up!"
	defaultSound        = "bell"
	defaultColor        = "#B0DB43"
)

// BuiltinSounds are alert tones synthesised at runtime.
var BuiltinSounds = []string{"bell", "chime", "beep"}

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config by applying opts in order, then validates it.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errConfigValidation, err)
	}

	return cfg, nil
}
