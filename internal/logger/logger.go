// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the sync
// client and the reference server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code passes *Logger by pointer and obtains request-scoped
// loggers via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// FileOptions configures the rotated log file of the client process.
type FileOptions struct {
	// Path of the active log file. Empty means "logs/sync-client.log" next
	// to the executable.
	Path string
	// Level is a zerolog level name; empty or unknown means debug.
	Level string
	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int
	// MaxBackups is the number of rotated files kept.
	MaxBackups int
}

// NewLogger constructs a *Logger for the given role label writing JSON to
// stdout.
//
// Every entry carries a "role" field, a timestamp and a "func" caller
// field holding the fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role, zerolog.DebugLevel)
}

// NewClientLogger constructs a *Logger for the client process. The client
// owns the terminal, so entries go to a size-rotated file instead of
// stdout. If the log directory cannot be created, stdout is used.
func NewClientLogger(role string, opts FileOptions) *Logger {
	path := opts.Path
	if path == "" {
		execPath, _ := os.Executable()
		path = filepath.Join(filepath.Dir(execPath), "logs", "sync-client.log")
	}

	var out io.Writer = os.Stdout
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
		out = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			Compress:   true,
		}
	}

	return newLogger(out, role, ParseLevel(opts.Level))
}

func newLogger(out io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// ParseLevel maps a level name to a zerolog level, defaulting to debug.
func ParseLevel(level string) zerolog.Level {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || level == "" {
		return zerolog.DebugLevel
	}
	return parsed
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithComponent returns a child logger tagged with a "component" field.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{l.With().Str("component", component).Logger()}
}

// FromRequest extracts the zerolog.Logger stored in the request's context
// and returns it as a *Logger.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
