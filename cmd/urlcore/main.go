// Command urlcore decomposes, fetches and opens http URLs.
package main

import (
	"fmt"
	"os"

	"github.com/jongio/browser-core/cmd/urlcore/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
