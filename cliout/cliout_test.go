package cliout

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

// capture redirects output into a buffer for the duration of fn.
func capture(t *testing.T, fn func()) string {
	t.Helper()

	var buf bytes.Buffer
	prev := SetWriter(&buf)
	NoColor()
	defer SetWriter(prev)

	fn()
	return buf.String()
}

func TestSetFormat(t *testing.T) {
	defer func() { _ = SetFormat("default") }()

	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"default", FormatDefault, false},
		{"", FormatDefault, false},
		{"json", FormatJSON, false},
		{"yaml", FormatDefault, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_ = SetFormat("default")
			err := SetFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SetFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if GetFormat() != tt.want {
				t.Errorf("GetFormat() = %v, want %v", GetFormat(), tt.want)
			}
		})
	}
}

func TestPrintUsesFormatter(t *testing.T) {
	_ = SetFormat("default")

	called := false
	output := capture(t, func() {
		if err := Print(map[string]string{"k": "v"}, func() {
			called = true
			Plain("human")
		}); err != nil {
			t.Errorf("Print() error: %v", err)
		}
	})

	if !called {
		t.Error("formatter not called in default format")
	}
	if strings.TrimSpace(output) != "human" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestPrintJSON(t *testing.T) {
	_ = SetFormat("json")
	defer func() { _ = SetFormat("default") }()

	output := capture(t, func() {
		if err := Print(map[string]string{"host": "example.com"}, func() {
			t.Error("formatter called in JSON format")
		}); err != nil {
			t.Errorf("Print() error: %v", err)
		}
	})

	var decoded map[string]string
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}
	if decoded["host"] != "example.com" {
		t.Errorf("decoded host = %q", decoded["host"])
	}
}

func TestLabelShowsEmpty(t *testing.T) {
	output := capture(t, func() {
		Label("Host", "example.com")
		Label("Path", "")
	})

	if !strings.Contains(output, "Host:") || !strings.Contains(output, "example.com") {
		t.Errorf("missing host label: %q", output)
	}
	if !strings.Contains(output, "(empty)") {
		t.Errorf("expected (empty) marker: %q", output)
	}
}

func TestMessagesWithoutColor(t *testing.T) {
	output := capture(t, func() {
		Success("ok %d", 1)
		Error("bad %s", "input")
		Warning("careful")
		Info("note")
		Header("Title")
	})

	if strings.Contains(output, "\033[") {
		t.Errorf("expected no ANSI codes with color disabled: %q", output)
	}
	for _, want := range []string{SymbolCheck + " ok 1", SymbolCross + " bad input", "careful", "note", "Title\n====="} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output: %q", want, output)
		}
	}
}

func TestPaintWithColor(t *testing.T) {
	ForceColor()
	defer NoColor()

	if got := paint(Bold, "x"); got != Bold+"x"+Reset {
		t.Errorf("paint() = %q", got)
	}
}

func TestTable(t *testing.T) {
	output := capture(t, func() {
		Table([]string{"Host", "Port"}, []TableRow{
			{"Host": "example.com", "Port": "80"},
			{"Host": "a", "Port": "8888"},
		})
	})

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), output)
	}
	if !strings.HasPrefix(lines[0], "   Host         Port") {
		t.Errorf("unexpected header line: %q", lines[0])
	}
	if !strings.Contains(lines[3], "a            8888") {
		t.Errorf("unexpected row alignment: %q", lines[3])
	}
}

func TestTableEmpty(t *testing.T) {
	output := capture(t, func() {
		Table([]string{"Host"}, nil)
	})
	if output != "" {
		t.Errorf("expected no output for empty table, got %q", output)
	}
}
