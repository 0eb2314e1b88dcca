package app

import (
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ayoisaiah/countdown/internal/pathutil"
)

// newLogger returns a JSON logger that writes to the rotating log file.
func newLogger(debug bool) (*slog.Logger, *lumberjack.Logger) {
	w := &lumberjack.Logger{
		Filename:   pathutil.LogFilePath(),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler), w
}
