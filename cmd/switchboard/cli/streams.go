// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Streams are the writers a command uses. Out carries the command's
// result (dispatched print actions, reports, listings); Err carries
// help, suggestions, and logs.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Standard returns the process's stdout and stderr.
func Standard() Streams {
	return Streams{Out: os.Stdout, Err: os.Stderr}
}

// orDiscard replaces nil writers with [io.Discard].
func (s Streams) orDiscard() Streams {
	if s.Out == nil {
		s.Out = io.Discard
	}
	if s.Err == nil {
		s.Err = io.Discard
	}
	return s
}

// Logger returns a structured logger on Err at level. A terminal gets
// slog's text handler; a pipe or file gets JSON lines. Callers scope
// it with With:
//
//	logger := streams.Logger(level).With("command", "run", "table", path)
func (s Streams) Logger(level slog.Level) *slog.Logger {
	w := s.orDiscard().Err
	terminal := false
	if file, ok := w.(*os.File); ok {
		terminal = term.IsTerminal(int(file.Fd()))
	}
	return newLogger(w, terminal, level)
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}
