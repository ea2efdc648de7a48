// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger for CLI command operations.
// When w is a terminal, uses slog.TextHandler for human-readable output.
// When w is piped or redirected (CI, scripts, tests), uses
// slog.JSONHandler for machine-parseable output.
//
// Callers scope the logger with command-specific context via With():
//
//	logger = logger.With("manifest", path)
func NewCommandLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: level}
	if IsTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler)
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

type levelKey struct{}

func withLevel(ctx context.Context, level *slog.LevelVar) context.Context {
	return context.WithValue(ctx, levelKey{}, level)
}

// SetLogLevel changes the level of the logger [Command.Execute] handed
// to the running command. It is a no-op for contexts that did not come
// from Execute.
func SetLogLevel(ctx context.Context, level slog.Level) {
	if variable, ok := ctx.Value(levelKey{}).(*slog.LevelVar); ok {
		variable.Set(level)
	}
}
