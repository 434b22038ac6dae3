// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used throughout the
// carcert client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain session-scoped
// loggers via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	// closer is the log file owned by this logger, nil for loggers that do
	// not own their sink.
	closer io.Closer
}

// NewClientLogger constructs a *Logger for the carcert subcommands. Entries
// are appended to the file at path so that the menu on stdout stays readable.
// An empty path resolves to a "logs" file next to the executable. If the file
// cannot be opened the logger falls back to os.Stderr.
//
// level is parsed with zerolog.ParseLevel; an unknown or empty level means
// Debug. The caller must Close the logger when the subcommand is done.
func NewClientLogger(role, path, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.DebugLevel
	}
	setGlobals(lvl)

	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs")
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return newLogger(os.Stderr, role)
	}

	l := newLogger(logFile, role)
	l.closer = logFile
	return l
}

func newLogger(w io.Writer, role string) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger}
}

func setGlobals(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and adds fields to every entry. The parent is not affected and
// keeps ownership of the log file.
func (l *Logger) GetChildLogger(fields map[string]any) *Logger {
	return &Logger{Logger: l.With().Fields(fields).Logger()}
}

// Close closes the log file opened by [NewClientLogger]. It is a no-op for
// loggers that do not own a file and for repeated calls.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	c := l.closer
	l.closer = nil

	return c.Close()
}

// WithContext attaches the logger to ctx so it can later be recovered with
// FromContext.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default logger
// (disabled unless configured), so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
