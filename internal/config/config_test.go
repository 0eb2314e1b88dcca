package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/pathutil"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "countdown_config")
	if err != nil {
		panic(err)
	}

	pathutil.InitializeIn(dir, dir)

	code := m.Run()

	_ = os.RemoveAll(dir)

	os.Exit(code)
}

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			DefaultDuration: time.Minute,
			TickInterval:    50 * time.Millisecond,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Message: "Time is up!",
			Sound:   "bell",
		},
		Display: DisplayConfig{
			Color: "#B0DB43",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "countdown", "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(defaultConfig(), cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}

	b, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal("failed to read config", err)
	}

	assert.Contains(t, string(b), "default_duration: 1m0s")
	assert.Contains(t, string(b), "tick_interval: 50ms")
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	modified := `timer:
  default_duration: 25m
  tick_interval: 100ms
notifications:
  enabled: false
  message: Stretch your legs
  sound: "off"
display:
  dark_theme: true
  color: "#12EAEA"
settings:
  cmd: echo done
history:
  enabled: false
`

	err := os.WriteFile(configPath, []byte(modified), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	want := &Config{
		Timer: TimerConfig{
			DefaultDuration: 25 * time.Minute,
			TickInterval:    100 * time.Millisecond,
		},
		Notifications: NotificationConfig{
			Enabled: false,
			Message: "Stretch your legs",
			Sound:   SoundOff,
		},
		Display: DisplayConfig{
			DarkTheme: true,
			Color:     "#12EAEA",
		},
		Settings: SettingsConfig{
			Cmd: "echo done",
		},
	}

	cfg, err := New(WithViperConfig(configPath))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestBareMinutesDuration(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("timer:\n  default_duration: \"10\"\n"), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := New(WithViperConfig(configPath))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 10*time.Minute, cfg.Timer.DefaultDuration)
}

func TestValidationErrors(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{
			name:   "zero default duration",
			modify: func(c *Config) { c.Timer.DefaultDuration = 0 },
			want:   errInvalidDuration,
		},
		{
			name:   "default duration beyond display range",
			modify: func(c *Config) { c.Timer.DefaultDuration = 100 * time.Hour },
			want:   errInvalidDuration,
		},
		{
			name:   "tick interval too long",
			modify: func(c *Config) { c.Timer.TickInterval = 2 * time.Second },
			want:   errInvalidDuration,
		},
		{
			name:   "empty message",
			modify: func(c *Config) { c.Notifications.Message = "  " },
			want:   errEmptyMsg,
		},
		{
			name:   "bad color",
			modify: func(c *Config) { c.Display.Color = "green" },
			want:   errInvalidColor,
		},
		{
			name:   "unsupported sound format",
			modify: func(c *Config) { c.Notifications.Sound = "alarm.txt" },
			want:   errInvalidSoundFormat,
		},
		{
			name:   "missing sound file",
			modify: func(c *Config) { c.Notifications.Sound = "klaxon" },
			want:   errUnknownSound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := defaultConfig()
			tc.modify(c)

			assert.ErrorIs(t, c.Validate(), tc.want)
		})
	}
}

func TestValidateSoundInSoundsDir(t *testing.T) {
	err := os.MkdirAll(pathutil.SoundsDir(), 0o755)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(pathutil.SoundsDir(), "gong.ogg")

	err = os.WriteFile(path, []byte{}, 0o600)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ResolveSound("gong")

	assert.NoError(t, err)
	assert.Equal(t, path, got)
	assert.NoError(t, ValidateSound("gong"))
	assert.NoError(t, ValidateSound(SoundOff))
	assert.NoError(t, ValidateSound("chime"))
}

func TestPromptConfigWritesAnswers(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	var calls int

	prompt := func() (PromptOptions, error) {
		calls++

		return PromptOptions{
			DefaultDuration: 25 * time.Minute,
			DarkTheme:       true,
		}, nil
	}

	cfg, err := New(
		WithPromptConfig(configPath, prompt),
		WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 25*time.Minute, cfg.Timer.DefaultDuration)
	assert.True(t, cfg.Display.DarkTheme)

	// the file now exists, so the prompt is skipped
	cfg, err = New(
		WithPromptConfig(configPath, prompt),
		WithViperConfig(configPath),
	)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 1, calls)
	assert.Equal(t, 25*time.Minute, cfg.Timer.DefaultDuration)
	assert.True(t, cfg.Display.DarkTheme)
}

func TestPromptConfigError(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	_, err := New(WithPromptConfig(configPath, func() (PromptOptions, error) {
		return PromptOptions{}, errors.New("user aborted")
	}))

	assert.ErrorIs(t, err, errPrompt)
	assert.ErrorIs(t, err, errConfigOption)
}

type CLITest struct {
	Name    string
	Flags   map[string]string
	Want    func(c *Config)
	WantErr error
}

var cliTestCases = []CLITest{
	{
		Name:  "no flags keeps file values",
		Flags: map[string]string{},
		Want:  func(*Config) {},
	},
	{
		Name: "duration components",
		Flags: map[string]string{
			"hours":   "1",
			"seconds": "30",
		},
		Want: func(c *Config) {
			h, s := int64(1), int64(30)
			c.CLI.Hours = &h
			c.CLI.Seconds = &s
		},
	},
	{
		Name: "notification and display overrides",
		Flags: map[string]string{
			"disable-notification": "true",
			"dark-theme":           "true",
			"sound":                "off",
			"cmd":                  "notify-send done",
			"start":                "true",
		},
		Want: func(c *Config) {
			c.Notifications.Enabled = false
			c.Notifications.Sound = SoundOff
			c.Display.DarkTheme = true
			c.Settings.Cmd = "notify-send done"
			c.CLI.AutoStart = true
		},
	},
	{
		Name: "minutes out of range",
		Flags: map[string]string{
			"minutes": "120",
		},
		WantErr: errInvalidCLIField,
	},
}

func newCLIContext(t *testing.T, flags map[string]string) *cli.Context {
	t.Helper()

	f := flag.NewFlagSet("countdown", flag.ContinueOnError)

	for _, name := range []string{"hours", "minutes", "seconds"} {
		_ = f.Int64(name, 0, "")
	}

	for _, name := range []string{"sound", "cmd"} {
		_ = f.String(name, "", "")
	}

	for _, name := range []string{"disable-notification", "dark-theme", "start", "debug", "no-color"} {
		_ = f.Bool(name, false, "")
	}

	for k, v := range flags {
		if err := f.Set(k, v); err != nil {
			t.Fatal(err)
		}
	}

	return cli.NewContext(&cli.App{}, f, nil)
}

func TestCLIConfig(t *testing.T) {
	for _, tc := range cliTestCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := defaultConfig()

			err := WithCLIConfig(newCLIContext(t, tc.Flags))(got)
			if tc.WantErr != nil {
				assert.ErrorIs(t, err, tc.WantErr)
				return
			}

			if err != nil {
				t.Fatal(err)
			}

			want := defaultConfig()
			tc.Want(want)

			if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(Config{})); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
