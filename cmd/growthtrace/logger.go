package main

import (
	"io"
	"log/slog"
)

// logger discards everything until initLogger runs.
var logger = slog.New(slog.DiscardHandler)

// initLogger writes warnings and errors to w, or everything down to debug
// when verbose is set.
func initLogger(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
