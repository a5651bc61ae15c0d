package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CaptureOutput captures stdout during function execution.
// It redirects os.Stdout to a pipe, executes fn, and returns everything
// written. The original stdout is always restored. An error from fn is
// logged, not failed, so callers can assert on it separately.
func CaptureOutput(t *testing.T, fn func() error) string {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	// Buffered so the reader never blocks if the test bails out early.
	outCh := make(chan string, 1)
	go func() {
		var output strings.Builder
		_, _ = io.Copy(&output, r)
		outCh <- output.String()
	}()

	fnErr := fn()

	if err := w.Close(); err != nil {
		t.Logf("Failed to close pipe writer: %v", err)
	}
	os.Stdout = origStdout

	output := <-outCh

	if fnErr != nil {
		t.Logf("Command error: %v", fnErr)
	}

	return output
}

// TempDir creates a temporary directory that is removed when the test
// completes.
func TempDir(t *testing.T) string {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "urlcore-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp directory: %v", err)
	}

	t.Cleanup(func() {
		if err := os.RemoveAll(tmpDir); err != nil {
			t.Logf("Failed to clean up temp directory %s: %v", tmpDir, err)
		}
	})

	return tmpDir
}

// WriteFile writes content to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}
