// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the pass-vault server and CLI.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Request-scoped loggers travel in the context and are obtained via
// FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// clientLogFile is the file name of the CLI log inside the user cache dir.
const clientLogFile = "passvault.log"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the server *Logger for the given role label
// (e.g. "server", "migrations").
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. Output is JSON on os.Stdout.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role)
}

// New builds a *Logger writing JSON entries to w.
func New(w io.Writer, role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger returns the CLI logger. Stdout belongs to command output,
// so entries go to passvault.log under the user cache directory. When that
// file cannot be opened the logger discards everything.
//
// The returned close function must be called before the process exits.
func NewClientLogger(role string) (*Logger, func() error) {
	f, err := openClientLogFile()
	if err != nil {
		return New(io.Discard, role), func() error { return nil }
	}

	return New(f, role), f.Close
}

func openClientLogFile() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, err
	}

	dir = filepath.Join(dir, "passvault")
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	return os.OpenFile(filepath.Join(dir, clientLogFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the
// trace id middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx. If none was attached,
// zerolog's default context logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
