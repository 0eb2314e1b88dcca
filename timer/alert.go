package timer

import (
	"errors"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/countdown/internal/config"
)

// Alerter runs the side effects of a completed countdown.
type Alerter interface {
	Alert() error
}

// DesktopAlerter sends a desktop notification, plays the alert sound and
// runs the user's command, as configured.
type DesktopAlerter struct {
	notify func(title, message, icon string) error
	play   func(sound string) error
	run    func(name string, args ...string) error
	opts   *config.Config
}

// NewDesktopAlerter returns an Alerter for cfg.
func NewDesktopAlerter(cfg *config.Config) *DesktopAlerter {
	return &DesktopAlerter{
		opts:   cfg,
		notify: beeep.Notify,
		play:   playSound,
		run: func(name string, args ...string) error {
			return exec.Command(name, args...).Run()
		},
	}
}

// Alert performs every enabled side effect. A failure in one does not stop
// the others; all failures are returned together.
func (a *DesktopAlerter) Alert() error {
	var errs []error

	if a.opts.Notifications.Enabled {
		err := a.notify("countdown", a.opts.Notifications.Message, "")
		if err != nil {
			errs = append(errs, errNotify.Wrap(err))
		}
	}

	sound := a.opts.Notifications.Sound
	if sound != "" && sound != config.SoundOff {
		if err := a.play(sound); err != nil {
			errs = append(errs, errPlaySound.Wrap(err))
		}
	}

	if err := a.runCmd(a.opts.Settings.Cmd); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// runCmd executes the specified command.
func (a *DesktopAlerter) runCmd(cmd string) error {
	if cmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(cmd)
	if err != nil {
		return errCmdParse.Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	return a.run(cmdSlice[0], cmdSlice[1:]...)
}
