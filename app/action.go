package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/maruel/natural"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/countdown/internal/apperr"
	"github.com/ayoisaiah/countdown/internal/config"
	"github.com/ayoisaiah/countdown/internal/engine"
	"github.com/ayoisaiah/countdown/internal/pathutil"
	"github.com/ayoisaiah/countdown/internal/timeutil"
	"github.com/ayoisaiah/countdown/internal/ui"
	"github.com/ayoisaiah/countdown/store"
	"github.com/ayoisaiah/countdown/timer"
)

const (
	envNoColor          = "NO_COLOR"
	envCountdownNoColor = "COUNTDOWN_NO_COLOR"
)

var (
	errInvalidDate = &apperr.Error{
		Message: "unable to parse --%s value %q",
	}

	errInvalidRange = &apperr.Error{
		Message: "--until must not be earlier than --since",
	}
)

// logCloser releases the log file opened in beforeAction.
var logCloser io.Closer

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// themeFromFlags returns the colour theme for commands that print without
// loading the config file.
func themeFromFlags(ctx *cli.Context) *ui.Theme {
	return ui.NewTheme(ctx.Bool("dark-theme"), "")
}

func loadConfig(ctx *cli.Context) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	return config.New(
		config.WithPromptConfig(configPath, nil),
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
}

// newEngine builds the countdown engine for cfg. Reset restores the
// configured default; --hours, --minutes and --seconds only shape the first
// run.
func newEngine(cfg *config.Config, opts ...engine.Option) (*engine.Engine, error) {
	opts = append([]engine.Option{
		engine.WithDefault(timeutil.FromDuration(cfg.Timer.DefaultDuration)),
		engine.WithTickInterval(cfg.Timer.TickInterval),
	}, opts...)

	eng := engine.New(opts...)

	for _, f := range []struct {
		field engine.Field
		value *int64
	}{
		{engine.Hour, cfg.CLI.Hours},
		{engine.Minute, cfg.CLI.Minutes},
		{engine.Second, cfg.CLI.Seconds},
	} {
		if f.value == nil {
			continue
		}

		if err := eng.SetField(f.field, *f.value); err != nil {
			_ = eng.Close()
			return nil, err
		}
	}

	return eng, nil
}

// parseRange converts the --since and --until flags into a time range of
// whole days. An empty until means now.
func parseRange(since, until string, now time.Time) (start, end time.Time, err error) {
	start, err = timeutil.FromStr(since, now)
	if err != nil {
		return start, end, errInvalidDate.Fmt("since", since)
	}

	start = timeutil.RoundToStart(start)
	end = now

	if until != "" {
		end, err = timeutil.FromStr(until, now)
		if err != nil {
			return start, end, errInvalidDate.Fmt("until", until)
		}

		end = timeutil.RoundToEnd(end)
	}

	if end.Before(start) {
		return start, end, errInvalidRange
	}

	return start, end, nil
}

// soundNames lists the built-in sounds followed by the audio files in dir,
// in natural order. Files in the default .ogg format are listed without
// their extension.
func soundNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var files []string

	for _, e := range entries {
		if e.IsDir() || !config.IsSoundFile(e.Name()) {
			continue
		}

		name := e.Name()
		if pathutil.StripExtension(name)+".ogg" == name {
			name = pathutil.StripExtension(name)
		}

		files = append(files, name)
	}

	sort.Sort(natural.StringSlice(files))

	return append(slices.Clone(config.BuiltinSounds), files...), nil
}

// editConfigAction handles the edit-config command which opens the countdown
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	configPath := pathutil.ConfigFilePath()

	// write the defaults so there is something to edit
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		_, err = config.New(config.WithViperConfig(configPath))
		if err != nil {
			return err
		}
	}

	cmd := exec.Command(editor, configPath)

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// historyAction handles the history command and prints a table of the
// countdowns that were active within a time period.
func historyAction(ctx *cli.Context) error {
	since, until, err := parseRange(
		ctx.String("since"),
		ctx.String("until"),
		time.Now(),
	)
	if err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	runs, err := db.GetRuns(since, until)
	if err != nil {
		return err
	}

	if ctx.Bool("delete") {
		return delRuns(db, themeFromFlags(ctx), runs)
	}

	if ctx.Bool("json") {
		b, err := json.Marshal(runs)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(config.Stdout, string(b))

		return err
	}

	if len(runs) == 0 {
		pterm.Info.Println(noRunsMsg)
		return nil
	}

	return printRunsTable(config.Stdout, themeFromFlags(ctx), runs)
}

// soundsAction prints the alert sounds that can be passed to --sound.
func soundsAction(_ *cli.Context) error {
	names, err := soundNames(pathutil.SoundsDir())
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(config.Stdout, name)
	}

	return nil
}

// statusAction handles the status command and prints the status of the
// currently running timer.
func statusAction(ctx *cli.Context) error {
	return timer.ReportStatus(
		config.Stdout,
		themeFromFlags(ctx),
		pathutil.DBFilePath(),
		pathutil.StatusFilePath(),
		time.Now(),
	)
}

// defaultAction opens the countdown interface.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	// holding the database marks this process as the running instance
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	logger := slog.Default()

	eng, err := newEngine(cfg, engine.WithLogger(logger))
	if err != nil {
		return err
	}

	t := timer.New(
		eng,
		cfg,
		timer.WithStore(db),
		timer.WithStatusFile(pathutil.StatusFilePath()),
		timer.WithLogger(logger),
	)

	if cfg.CLI.AutoStart {
		if err := eng.ToggleRun(); err != nil {
			_ = t.Close()
			return err
		}
	}

	_, err = tea.NewProgram(t).Run()

	return errors.Join(err, t.Close())
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/countdown/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if COUNTDOWN_NO_COLOR is set
	if _, exists := os.LookupEnv(envCountdownNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	logger, w := newLogger(ctx.Bool("debug"))
	slog.SetDefault(logger)

	logCloser = w

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting countdown")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}
