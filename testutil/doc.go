// Package testutil provides helpers shared by browser-core tests.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Writing fixture files into such a directory (WriteFile)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestBatchCommand(t *testing.T) {
//	    path := testutil.WriteFile(t, testutil.TempDir(t), "urls.yaml", "urls:\n  - http://example.com\n")
//
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runBatch(path)
//	    })
//	    if !strings.Contains(output, "example.com") {
//	        t.Error("expected host in output")
//	    }
//	}
package testutil
