package commands

import (
	"fmt"

	"github.com/jongio/browser-core/batch"
	"github.com/jongio/browser-core/cliout"
	"github.com/spf13/cobra"
)

type batchOutput struct {
	Results []batch.Result `json:"results"`
	Summary batch.Summary  `json:"summary"`
}

func newBatchCommand() *cobra.Command {
	var failOnReject bool

	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Parse every URL listed in a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := batch.Load(args[0])
			if err != nil {
				return err
			}

			out := batchOutput{Results: batch.Run(f)}
			out.Summary = batch.Summarize(out.Results)

			if err := cliout.Print(out, func() { printBatch(out) }); err != nil {
				return err
			}

			if failOnReject && out.Summary.Rejected > 0 {
				return fmt.Errorf("%d of %d URLs rejected", out.Summary.Rejected, out.Summary.Total)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&failOnReject, "fail-on-reject", false, "Exit non-zero when any URL is rejected")
	return cmd
}

func printBatch(out batchOutput) {
	headers := []string{"Input", "Host", "Port", "Path", "Searchpart", "Error"}
	rows := make([]cliout.TableRow, 0, len(out.Results))
	for _, r := range out.Results {
		row := cliout.TableRow{"Input": r.Input, "Error": r.Error}
		if r.OK() {
			row["Host"] = r.URL.Host()
			row["Port"] = r.URL.Port()
			row["Path"] = r.URL.Path()
			row["Searchpart"] = r.URL.Searchpart()
		}
		rows = append(rows, row)
	}

	cliout.Table(headers, rows)
	if out.Summary.Rejected > 0 {
		cliout.Warning("%d of %d URLs rejected", out.Summary.Rejected, out.Summary.Total)
		return
	}
	cliout.Success("%d URLs parsed", out.Summary.Accepted)
}
