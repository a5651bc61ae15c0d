// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warnings.
	LevelWarn
	// LevelError is for errors.
	LevelError
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "URLCORE_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	currentLevel           = LevelInfo
	isStructured           = false
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(false, false)
}

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// rebuild installs a new global logger from the current settings.
// Caller must hold mu.
func rebuild() {
	opts := &slog.HandlerOptions{Level: currentLevel.slogLevel()}

	var handler slog.Handler
	if isStructured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func levelFor(debug bool) Level {
	if debug {
		return LevelDebug
	}
	return LevelInfo
}

// SetupLogger configures the global logger to write to stderr.
//
// Parameters:
//   - debug: When true, enables debug-level logging
//   - structured: When true, outputs JSON-formatted logs; otherwise uses text format
//
// This function is safe for concurrent use.
func SetupLogger(debug, structured bool) {
	SetupLoggerWithWriter(os.Stderr, debug, structured)
}

// SetupLoggerWithWriter configures the logger with a custom writer.
// Tests use it to capture log output.
func SetupLoggerWithWriter(w io.Writer, debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	currentLevel = levelFor(debug)
	isStructured = structured
	rebuild()
}

// SetOutput redirects the logger without changing level or format.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	rebuild()
}

// SetLevel sets the logging level programmatically.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	currentLevel = level
	rebuild()
}

// GetLevel returns the current logging level.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// IsDebugEnabled returns true if debug logging is enabled, either
// programmatically or through URLCORE_DEBUG.
func IsDebugEnabled() bool {
	return GetLevel() == LevelDebug || os.Getenv(EnvDebug) == "true"
}

// ParseLevel parses a string into a Level.
// Valid values are: "debug", "info", "warn", "warning", "error".
// Returns LevelInfo for unrecognized values.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger returns the underlying slog.Logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

// Debug logs a debug message with optional key-value pairs.
// Debug messages are only logged when debug mode is enabled.
//
// Example:
//
//	logutil.Debug("split authority", "host", host, "port", port)
func Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		Logger().Debug(msg, args...)
	}
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
//
// Example:
//
//	logutil.Error("fetch failed", "error", err, "address", u.Address())
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}
