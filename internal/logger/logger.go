// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors used by the
// gateway and the CLI, plus helpers that recover a request-scoped logger from
// a context.
//
// Logger embeds zerolog.Logger, so Debug, Info, Error and friends are called
// directly on *Logger. The zerolog.Logger value itself is what gets handed to
// the idiotic client via idiotic.WithLogger.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultLevel is used when no level or an unparseable one is configured.
const DefaultLevel = zerolog.InfoLevel

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds the JSON logger used by the gateway server. Entries go to
// os.Stdout and carry the role, a timestamp and the calling function name
// under "func".
func NewLogger(role, level string) *Logger {
	configureCaller()

	logger := zerolog.New(os.Stdout).
		Level(ParseLevel(level)).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger builds the human-readable logger used by the CLI. Output goes
// to stderr so that stdout stays free for command results.
func NewClientLogger(role, level string) *Logger {
	return newConsoleLogger(os.Stderr, role, level)
}

func newConsoleLogger(w io.Writer, role, level string) *Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: w != os.Stderr}

	logger := zerolog.New(out).
		Level(ParseLevel(level)).
		With().
		Str("role", role).
		Timestamp().
		Logger()

	return &Logger{logger}
}

func configureCaller() {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// ParseLevel maps a level name ("debug", "info", "warn", ...) to a zerolog
// level. Empty or unknown names yield DefaultLevel.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return DefaultLevel
	}
	return lvl
}

// Nop returns a *Logger that discards all output. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched with fields without
// touching the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the
// logging middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog falls back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
