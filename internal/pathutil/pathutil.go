// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// EnvName selects an alternate set of files, e.g. COUNTDOWN_ENV=dev uses
// config_dev.yml and countdown_dev.db.
const EnvName = "COUNTDOWN_ENV"

// Paths holds all application path configurations.
type Paths struct {
	appDir         string
	configFileName string
	dbFileName     string
	statusFileName string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	statusFilePath string
	logFilePath    string
	soundsDir      string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths = newPaths("countdown")
		initErr = paths.computePaths()
	})

	return initErr
}

// InitializeIn computes paths beneath the given config and data roots. It
// replaces any previous initialisation and is meant for tests.
func InitializeIn(configRoot, dataRoot string) {
	p := newPaths("countdown")

	p.configFilePath = filepath.Join(configRoot, p.appDir, p.configFileName)
	p.setDataPaths(filepath.Join(dataRoot, p.appDir))

	paths = p
}

func newPaths(appDir string) *Paths {
	p := &Paths{
		appDir:         appDir,
		configFileName: "config.yml",
		dbFileName:     "countdown.db",
		statusFileName: "status.json",
		logFileName:    "countdown.log",
	}

	p.applyEnvironmentOverrides()

	return p
}

func must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func Dir() string {
	return must().appDir
}

func ConfigFilePath() string {
	return must().configFilePath
}

func DBFilePath() string {
	return must().dbFilePath
}

func StatusFilePath() string {
	return must().statusFilePath
}

func LogFilePath() string {
	return must().logFilePath
}

// SoundsDir is where user supplied alert sounds are looked up by name.
func SoundsDir() string {
	return must().soundsDir
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(EnvName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("countdown_%s.db", env)
		p.statusFileName = fmt.Sprintf("status_%s.json", env)
		p.logFileName = fmt.Sprintf("countdown_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.appDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("locating config file: %w", err)
	}

	// xdg creates the parent directories of the database file
	dbPath, err := xdg.DataFile(filepath.Join(p.appDir, p.dbFileName))
	if err != nil {
		return fmt.Errorf("locating data directory: %w", err)
	}

	p.setDataPaths(filepath.Dir(dbPath))

	return nil
}

func (p *Paths) setDataPaths(dataDir string) {
	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.statusFilePath = filepath.Join(dataDir, p.statusFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	p.soundsDir = filepath.Join(dataDir, "sounds")
}

// StripExtension returns the input file name without its extension.
func StripExtension(fileName string) string {
	return fileName[:len(fileName)-len(filepath.Ext(fileName))]
}
