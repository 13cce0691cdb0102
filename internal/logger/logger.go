// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the notes-auth binaries.
//
// Request handlers never log through the process logger directly: the
// transport attaches a child logger carrying the request trace id with
// [WithTraceID], and downstream code retrieves it with [FromContext].
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// TraceIDField is the field name under which request trace ids are logged.
const TraceIDField = "trace_id"

// NewLogger returns the JSON stdout logger used by the server. Every entry
// carries the role, a timestamp and the calling function name.
func NewLogger(role string) *Logger {
	return newLogger(os.Stdout, role, zerolog.DebugLevel)
}

// NewClientLogger constructs a *Logger for the command-line client. Only
// warnings and errors are written, to os.Stderr, so that stdout stays free
// for command output.
func NewClientLogger(role string) *Logger {
	return newLogger(os.Stderr, role, zerolog.WarnLevel)
}

func newLogger(w io.Writer, role string, level zerolog.Level) *Logger {
	zerolog.SetGlobalLevel(level)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns ctx carrying a child of l tagged with traceID.
func (l *Logger) WithTraceID(ctx context.Context, traceID string) context.Context {
	child := l.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str(TraceIDField, traceID)
	})

	return child.WithContext(ctx)
}

// FromRequest is FromContext for r's context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one it falls back
// to zerolog's default context logger, which is disabled, so the result is
// never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
