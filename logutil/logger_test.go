// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerCreatesWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	defer SetupLogger(false, false)

	logger := NewLogger("fetch")
	if logger.Component() != "fetch" {
		t.Errorf("expected component 'fetch', got %q", logger.Component())
	}

	logger.Info("hello")
	if !strings.Contains(buf.String(), "component=fetch") {
		t.Errorf("expected component=fetch in output, got: %s", buf.String())
	}
}

func TestChainingContexts(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)
	defer SetupLogger(false, false)

	logger := NewLogger("batch").
		WithURL("http://example.com/x").
		WithOperation("parse").
		WithFields("line", 3)
	logger.Info("chain test")

	output := buf.String()
	for _, want := range []string{"component=batch", "url=http://example.com/x", "operation=parse", "line=3"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if logger.Component() != "batch" {
		t.Errorf("expected component 'batch' after chaining, got %q", logger.Component())
	}
}

func TestComponentLogLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*ComponentLogger, string, ...any)
		level   string
	}{
		{"debug", (*ComponentLogger).Debug, "DEBUG"},
		{"info", (*ComponentLogger).Info, "INFO"},
		{"warn", (*ComponentLogger).Warn, "WARN"},
		{"error", (*ComponentLogger).Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerWithWriter(&buf, true, false)
			defer SetupLogger(false, false)

			tt.logFunc(NewLogger("lvl-test"), "level test msg", "k", "v")

			output := buf.String()
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected level %s in output, got: %s", tt.level, output)
			}
			if !strings.Contains(output, "level test msg") {
				t.Errorf("expected message in output, got: %s", output)
			}
		})
	}
}

func TestComponentLoggerStructured(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, true)
	defer SetupLogger(false, false)

	NewLogger("serve").Info("structured msg", "count", 42)

	output := buf.String()
	for _, want := range []string{`"component":"serve"`, `"msg":"structured msg"`, `"count":42`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in JSON output, got: %s", want, output)
		}
	}
}
