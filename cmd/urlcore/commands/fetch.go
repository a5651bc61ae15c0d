package commands

import (
	"fmt"
	"time"

	"github.com/jongio/browser-core/cliout"
	"github.com/jongio/browser-core/fetch"
	"github.com/jongio/browser-core/urlutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type fetchOutput struct {
	*fetch.Response
	Bytes int    `json:"bytes"`
	Body  string `json:"body,omitempty"`
}

// addFetchFlags binds the client options that make sense on the command line.
func addFetchFlags(fs *pflag.FlagSet, opts *fetch.Options) {
	fs.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "Timeout for the whole request")
	fs.StringVar(&opts.UserAgent, "user-agent", opts.UserAgent, "User-Agent header value")
	fs.Int64Var(&opts.MaxBodySize, "max-body", opts.MaxBodySize, "Maximum response body bytes kept")
}

func newFetchCommand() *cobra.Command {
	opts := fetch.DefaultOptions()
	var (
		normalize   bool
		includeBody bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a page over plain HTTP/1.1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := args[0]
			if normalize {
				raw = urlutil.NormalizeScheme(raw)
			}

			resp, err := fetch.NewClient(opts).Get(cmd.Context(), raw)
			if err != nil {
				return err
			}

			out := fetchOutput{Response: resp, Bytes: len(resp.Body)}
			if includeBody {
				out.Body = string(resp.Body)
			}
			return cliout.Print(out, func() { printFetch(out) })
		},
	}

	addFetchFlags(cmd.Flags(), &opts)
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Prepend http:// to input without a scheme")
	cmd.Flags().BoolVar(&includeBody, "include-body", false, "Print the response body")
	return cmd
}

func printFetch(out fetchOutput) {
	cliout.Header(out.URL.Raw())
	cliout.Label("Address", out.URL.Address())
	cliout.Label("Target", out.URL.RequestTarget())
	cliout.Label("Status", out.Status)
	cliout.Label("Bytes", fmt.Sprintf("%d", out.Bytes))
	cliout.Label("Duration", out.Duration.Round(time.Millisecond).String())
	if out.Truncated {
		cliout.Warning("body truncated")
	}
	if out.Body != "" {
		cliout.Plain("")
		cliout.Plain("%s", out.Body)
	}
}
