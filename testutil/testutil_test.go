package testutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	t.Run("captures stdout", func(t *testing.T) {
		output := CaptureOutput(t, func() error {
			fmt.Println("test output")
			return nil
		})

		if !strings.Contains(output, "test output") {
			t.Errorf("expected output to contain 'test output', got: %s", output)
		}
	})

	t.Run("restores stdout on error", func(t *testing.T) {
		orig := os.Stdout
		output := CaptureOutput(t, func() error {
			fmt.Println("output before error")
			return errors.New("test error")
		})

		if !strings.Contains(output, "output before error") {
			t.Error("expected output to contain 'output before error'")
		}
		if os.Stdout != orig {
			t.Error("stdout not restored")
		}
	})

	t.Run("handles empty output", func(t *testing.T) {
		output := CaptureOutput(t, func() error { return nil })
		if output != "" {
			t.Errorf("expected empty output, got: %q", output)
		}
	})
}

func TestTempDir(t *testing.T) {
	var dir string
	t.Run("inner", func(t *testing.T) {
		dir = TempDir(t)
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("temp dir missing: %v", err)
		}
		if !info.IsDir() {
			t.Fatal("expected a directory")
		}
	})

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("expected temp dir to be removed after subtest, got err=%v", err)
	}
}

func TestWriteFile(t *testing.T) {
	dir := TempDir(t)
	path := WriteFile(t, dir, "urls.yaml", "urls: []\n")

	if path != filepath.Join(dir, "urls.yaml") {
		t.Errorf("unexpected path %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != "urls: []\n" {
		t.Errorf("unexpected content %q", data)
	}
}
