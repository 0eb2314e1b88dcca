package config

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ayoisaiah/countdown/internal/pathutil"
)

const maxFieldValue = 99

var (
	// Duration constraints. The upper bound is the largest value the
	// hours:minutes:seconds fields can display.
	minDefaultDuration = 1 * time.Second
	maxDefaultDuration = 99*time.Hour + 59*time.Minute + 59*time.Second

	minTickInterval = 1 * time.Millisecond
	maxTickInterval = 1 * time.Second

	// Color format validation.
	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

	soundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if c.Timer.DefaultDuration < minDefaultDuration ||
		c.Timer.DefaultDuration > maxDefaultDuration {
		return errInvalidDuration.Fmt(
			"default duration",
			minDefaultDuration,
			maxDefaultDuration,
		)
	}

	if c.Timer.TickInterval < minTickInterval ||
		c.Timer.TickInterval > maxTickInterval {
		return errInvalidDuration.Fmt(
			"tick interval",
			minTickInterval,
			maxTickInterval,
		)
	}

	if strings.TrimSpace(c.Notifications.Message) == "" {
		return errEmptyMsg
	}

	if !hexColorRegex.MatchString(c.Display.Color) {
		return errInvalidColor.Fmt(c.Display.Color)
	}

	return ValidateSound(c.Notifications.Sound)
}

// ValidateSound accepts "off", a built-in tone, the name of a file in the
// sounds directory, or a path to an audio file.
func ValidateSound(sound string) error {
	if sound == "" || sound == SoundOff || slices.Contains(BuiltinSounds, sound) {
		return nil
	}

	_, err := ResolveSound(sound)

	return err
}

// ResolveSound returns the path of a sound file. Names without an extension
// are looked up in the sounds directory as .ogg files, and bare file names
// are looked up there before the working directory.
func ResolveSound(sound string) (string, error) {
	path := sound

	switch {
	case filepath.Ext(sound) == "":
		path = filepath.Join(pathutil.SoundsDir(), sound+".ogg")
	case filepath.Base(sound) == sound:
		inDir := filepath.Join(pathutil.SoundsDir(), sound)
		if _, err := os.Stat(inDir); err == nil {
			path = inDir
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(soundExts, ext) {
		return "", errInvalidSoundFormat.Fmt(sound)
	}

	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", errUnknownSound.Fmt(sound)
	}

	if err != nil {
		return "", err
	}

	return path, nil
}

// IsSoundFile reports whether name has a supported audio extension.
func IsSoundFile(name string) bool {
	return slices.Contains(soundExts, strings.ToLower(filepath.Ext(name)))
}
