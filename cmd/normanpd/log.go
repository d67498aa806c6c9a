package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the run logger. Every record carries the run id so runs
// can be told apart in a shared log file. The returned func flushes and
// closes the log file, if any.
func newLogger(cli *CLI, stderr io.Writer) (*slog.Logger, func()) {
	var handler slog.Handler
	closeFn := func() {}

	if cli.LogFile != "" {
		level := slog.LevelInfo
		if cli.Verbose {
			level = slog.LevelDebug
		}
		lj := &lumberjack.Logger{
			Filename:   cli.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
		}
		handler = slog.NewJSONHandler(lj, &slog.HandlerOptions{Level: level})
		closeFn = func() { _ = lj.Close() }
	} else {
		level := slog.LevelWarn
		if cli.Verbose {
			level = slog.LevelDebug
		}
		handler = slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler).With("run", uuid.NewString()), closeFn
}
