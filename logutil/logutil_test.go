// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	SetupLogger(true, false)
	if !IsDebugEnabled() {
		t.Error("expected debug to be enabled")
	}
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetupLogger(false, false)
	if GetLevel() != LevelInfo {
		t.Errorf("expected LevelInfo, got %v", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"ERROR", LevelError},
		{"unknown", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	for _, level := range []Level{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		if ParseLevel(level.String()) != level {
			t.Errorf("ParseLevel(%q) did not round-trip", level.String())
		}
	}
}

func TestIsDebugEnabledEnvVar(t *testing.T) {
	SetupLogger(false, false)

	t.Setenv(EnvDebug, "true")
	if !IsDebugEnabled() {
		t.Error("expected debug to be enabled via env var")
	}

	t.Setenv(EnvDebug, "")
	if IsDebugEnabled() {
		t.Error("expected debug to be disabled")
	}
}

func TestLogOutputText(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, false)
	defer SetupLogger(false, false)

	Debug("debug message", "key", "value")
	Info("info message")
	Warn("warn message")
	Error("error message")

	output := buf.String()
	for _, want := range []string{"debug message", "key=value", "info message", "warn message", "error message"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	t.Setenv(EnvDebug, "")

	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	defer SetupLogger(false, false)

	Debug("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug message logged at info level: %s", buf.String())
	}
}

func TestLogOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)
	defer SetupLogger(false, false)

	Info("parsed", "host", "example.com")

	output := buf.String()
	if !strings.Contains(output, `"msg":"parsed"`) {
		t.Errorf("expected JSON msg, got: %s", output)
	}
	if !strings.Contains(output, `"host":"example.com"`) {
		t.Errorf("expected JSON host field, got: %s", output)
	}
}

func TestSetLevelFiltersBelow(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	defer SetupLogger(false, false)

	SetLevel(LevelError)
	Warn("should not appear")
	Error("should appear")

	output := buf.String()
	if strings.Contains(output, "should not appear") {
		t.Errorf("warn logged at error level: %s", output)
	}
	if !strings.Contains(output, "should appear") {
		t.Errorf("error missing: %s", output)
	}
}

func TestSetOutputKeepsFormat(t *testing.T) {
	var first, second bytes.Buffer
	SetupLoggerWithWriter(&first, false, true)
	defer SetupLogger(false, false)

	SetOutput(&second)
	Info("moved")

	if first.Len() != 0 {
		t.Errorf("expected nothing in first writer, got: %s", first.String())
	}
	if !strings.Contains(second.String(), `"msg":"moved"`) {
		t.Errorf("expected JSON output in second writer, got: %s", second.String())
	}
}
