package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/countdown/internal/osutil"
)

// viper keys as they appear in the YAML config file.
const (
	keyDefaultDuration      = "timer.default_duration"
	keyTickInterval         = "timer.tick_interval"
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationMessage  = "notifications.message"
	keyNotificationSound    = "notifications.sound"
	keyDarkTheme            = "display.dark_theme"
	keyColor                = "display.color"
	keyCmd                  = "settings.cmd"
	keyHistoryEnabled       = "history.enabled"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with default values.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		err = os.MkdirAll(filepath.Dir(configPath), osutil.DirPermission)
		if err != nil {
			return errWriteConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and any values gathered by
// earlier options (such as the first-run prompt).
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyDefaultDuration, defaultDuration.String())
	v.SetDefault(keyTickInterval, defaultTickInterval.String())
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationMessage, defaultMessage)
	v.SetDefault(keyNotificationSound, defaultSound)
	v.SetDefault(keyDarkTheme, false)
	v.SetDefault(keyColor, defaultColor)
	v.SetDefault(keyCmd, "")
	v.SetDefault(keyHistoryEnabled, true)

	if c.prompted != nil {
		v.Set(keyDefaultDuration, c.prompted.DefaultDuration.String())
		v.Set(keyDarkTheme, c.prompted.DarkTheme)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	var err error

	c.Timer.DefaultDuration, err = parseDuration(v.GetString(keyDefaultDuration))
	if err != nil {
		return err
	}

	c.Timer.TickInterval, err = parseDuration(v.GetString(keyTickInterval))
	if err != nil {
		return err
	}

	c.Notifications.Enabled = v.GetBool(keyNotificationsEnabled)
	c.Notifications.Message = v.GetString(keyNotificationMessage)
	c.Notifications.Sound = v.GetString(keyNotificationSound)
	c.Display.DarkTheme = v.GetBool(keyDarkTheme)
	c.Display.Color = v.GetString(keyColor)
	c.Settings.Cmd = v.GetString(keyCmd)
	c.History.Enabled = v.GetBool(keyHistoryEnabled)

	return nil
}
