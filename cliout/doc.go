// Package cliout formats command output for the urlcore CLI.
//
// Two formats are supported: the default human-readable layout and JSON.
// Color is applied only when stdout is a terminal (see golang.org/x/term),
// and can be forced on or off.
//
// # Basic Usage
//
//	cliout.Header("example.com")
//	cliout.Label("Host", u.Host())
//	cliout.Success("parsed %d URLs", n)
//
// # Output Formats
//
//	if err := cliout.SetFormat("json"); err != nil {
//		return err
//	}
//	return cliout.Print(result, func() {
//		cliout.Label("Host", result.Host())
//	})
package cliout
