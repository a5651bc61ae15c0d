package commands

import (
	"fmt"

	"github.com/jongio/browser-core/batch"
	"github.com/jongio/browser-core/cliout"
	"github.com/spf13/cobra"
)

func newParseCommand() *cobra.Command {
	var normalize bool

	cmd := &cobra.Command{
		Use:   "parse <url>...",
		Short: "Split URLs into host, port, path and search part",
		Example: `  urlcore parse http://example.com:8888/index.html?a=123
  urlcore parse --normalize example.com/path
  urlcore parse -o json http://a http://b`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, normalize)
		},
	}
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Prepend http:// to input without a scheme")
	return cmd
}

func runParse(args []string, normalize bool) error {
	f := &batch.File{Normalize: normalize}
	for _, arg := range args {
		f.URLs = append(f.URLs, batch.Entry{Raw: arg})
	}

	results := batch.Run(f)
	if err := cliout.Print(results, func() { printResults(results) }); err != nil {
		return err
	}

	if summary := batch.Summarize(results); summary.Rejected > 0 {
		return fmt.Errorf("%d of %d URLs rejected", summary.Rejected, summary.Total)
	}
	return nil
}

func printResults(results []batch.Result) {
	for _, r := range results {
		cliout.Header(r.Input)
		if !r.OK() {
			cliout.Error("%s", r.Error)
			continue
		}
		cliout.Label("Host", r.URL.Host())
		cliout.Label("Port", r.URL.Port())
		cliout.Label("Path", r.URL.Path())
		cliout.Label("Searchpart", r.URL.Searchpart())
	}
}
