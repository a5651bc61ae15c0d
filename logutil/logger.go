// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import "log/slog"

// ComponentLogger provides component-scoped structured logging.
type ComponentLogger struct {
	slogger   *slog.Logger
	component string
}

// NewLogger creates a logger scoped to a named component.
// The global logger is captured at call time; call SetupLogger first.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{
		slogger:   Logger().With("component", component),
		component: component,
	}
}

func (l *ComponentLogger) with(args ...any) *ComponentLogger {
	return &ComponentLogger{
		slogger:   l.slogger.With(args...),
		component: l.component,
	}
}

// WithURL returns a logger that tags every line with the raw URL.
func (l *ComponentLogger) WithURL(raw string) *ComponentLogger {
	return l.with("url", raw)
}

// WithOperation returns a logger with the operation context added.
func (l *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return l.with("operation", name)
}

// WithFields returns a logger with additional alternating key-value fields.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return l.with(fields...)
}

// Component returns the component name for this logger.
func (l *ComponentLogger) Component() string {
	return l.component
}

// Debug logs a message at debug level.
func (l *ComponentLogger) Debug(msg string, args ...any) {
	l.slogger.Debug(msg, args...)
}

// Info logs a message at info level.
func (l *ComponentLogger) Info(msg string, args ...any) {
	l.slogger.Info(msg, args...)
}

// Warn logs a message at warn level.
func (l *ComponentLogger) Warn(msg string, args ...any) {
	l.slogger.Warn(msg, args...)
}

// Error logs a message at error level.
func (l *ComponentLogger) Error(msg string, args ...any) {
	l.slogger.Error(msg, args...)
}
