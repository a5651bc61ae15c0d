// Package commands implements the urlcore CLI.
package commands

import (
	"strings"

	"github.com/jongio/browser-core/cliout"
	"github.com/jongio/browser-core/logutil"
	"github.com/jongio/browser-core/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// formatValue is the --output flag. It rejects unknown formats at parse time.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Type() string { return "format" }

func (f *formatValue) Set(s string) error {
	// SetFormat validates; the global is applied again in PersistentPreRunE.
	if err := cliout.SetFormat(s); err != nil {
		return err
	}
	*f = formatValue(s)
	return nil
}

// NewRootCommand builds the urlcore command tree.
func NewRootCommand() *cobra.Command {
	var (
		debug      bool
		structured bool
		noColor    bool
		output     = formatValue(cliout.FormatDefault)
	)

	root := &cobra.Command{
		Use:   "urlcore",
		Short: "Decompose http URLs into host, port, path and search part",
		Long: `urlcore splits http:// URLs into the pieces a user agent needs to
issue a request, and can fetch or open them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug || logutil.IsDebugEnabled(), structured)
			if noColor {
				cliout.NoColor()
			}
			return cliout.SetFormat(output.String())
		},
	}

	flags := root.PersistentFlags()
	flags.VarP(&output, "output", "o", "Output format ("+strings.Join(cliout.ValidFormats(), ", ")+")")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging (or set "+logutil.EnvDebug+"=true)")
	flags.BoolVar(&structured, "structured-logs", false, "Write logs as JSON")
	flags.BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newParseCommand(),
		newBatchCommand(),
		newFetchCommand(),
		newOpenCommand(),
		newServeCommand(),
		version.NewCommand(version.New("urlcore")),
	)

	return root
}
