package timer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/countdown/internal/config"
)

type alertCalls struct {
	notified []string
	played   []string
	ran      [][]string
}

func newTestAlerter(cfg *config.Config, fail error) (*DesktopAlerter, *alertCalls) {
	calls := &alertCalls{}

	a := NewDesktopAlerter(cfg)
	a.notify = func(_, message, _ string) error {
		calls.notified = append(calls.notified, message)
		return fail
	}
	a.play = func(sound string) error {
		calls.played = append(calls.played, sound)
		return fail
	}
	a.run = func(name string, args ...string) error {
		calls.ran = append(calls.ran, append([]string{name}, args...))
		return fail
	}

	return a, calls
}

func TestDesktopAlerter(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *config.Config)
		want   alertCalls
	}{
		{
			name:   "notification only",
			modify: func(*config.Config) {},
			want: alertCalls{
				notified: []string{"Time is up!"},
			},
		},
		{
			name: "sound and quoted command",
			modify: func(c *config.Config) {
				c.Notifications.Enabled = false
				c.Notifications.Sound = "chime"
				c.Settings.Cmd = `notify-send "Countdown finished" --urgency=low`
			},
			want: alertCalls{
				played: []string{"chime"},
				ran: [][]string{
					{"notify-send", "Countdown finished", "--urgency=low"},
				},
			},
		},
		{
			name: "everything disabled",
			modify: func(c *config.Config) {
				c.Notifications.Enabled = false
				c.Notifications.Sound = ""
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.modify(cfg)

			a, calls := newTestAlerter(cfg, nil)

			assert.NoError(t, a.Alert())
			assert.Equal(t, tc.want, *calls)
		})
	}
}

func TestDesktopAlerterCollectsErrors(t *testing.T) {
	cfg := testConfig()
	cfg.Notifications.Sound = "bell"
	cfg.Settings.Cmd = "true"

	fail := errors.New("unavailable")

	a, calls := newTestAlerter(cfg, fail)

	err := a.Alert()

	assert.ErrorIs(t, err, errNotify)
	assert.ErrorIs(t, err, errPlaySound)
	assert.ErrorIs(t, err, fail)
	assert.Len(t, calls.ran, 1)
}

func TestDesktopAlerterBadCommand(t *testing.T) {
	cfg := testConfig()
	cfg.Notifications.Enabled = false
	cfg.Settings.Cmd = `echo "unterminated`

	a, calls := newTestAlerter(cfg, nil)

	assert.ErrorIs(t, a.Alert(), errCmdParse)
	assert.Empty(t, calls.ran)
}

func TestToneStream(t *testing.T) {
	for name, notes := range builtinTones {
		t.Run(name, func(t *testing.T) {
			s, err := toneStream(name)
			if err != nil {
				t.Fatal(err)
			}

			var want int
			for _, n := range notes {
				want += speakerSampleRate.N(n.dur)
			}

			var (
				got int
				buf = make([][2]float64, 512)
			)

			for {
				n, ok := s.Stream(buf)
				got += n

				if !ok {
					break
				}
			}

			assert.Equal(t, want, got)
		})
	}

	_, err := toneStream("gong")
	assert.ErrorIs(t, err, errUnknownTone)
}

func TestBuiltinSoundsHaveTones(t *testing.T) {
	for _, name := range config.BuiltinSounds {
		assert.Contains(t, builtinTones, name)
	}
}

func TestFileStreamRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "alarm.txt")
	assert.NoError(t, os.WriteFile(txt, []byte("not audio"), 0o600))

	_, _, err := fileStream(txt)
	assert.ErrorIs(t, err, errInvalidSoundFormat)

	wav := filepath.Join(dir, "alarm.wav")
	assert.NoError(t, os.WriteFile(wav, []byte("not audio"), 0o600))

	_, _, err = fileStream(wav)
	assert.Error(t, err)

	_, _, err = fileStream(filepath.Join(dir, "missing.ogg"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
