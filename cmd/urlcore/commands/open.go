package commands

import (
	"fmt"

	"github.com/jongio/browser-core/browser"
	"github.com/jongio/browser-core/cliout"
	"github.com/jongio/browser-core/urlutil"
	"github.com/spf13/cobra"
)

func newOpenCommand() *cobra.Command {
	var (
		target    string
		normalize bool
	)

	cmd := &cobra.Command{
		Use:   "open <url>",
		Short: "Open an http URL in the system browser",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !browser.IsValid(target) {
				return fmt.Errorf("invalid target %q (valid options: %s)", target, browser.FormatValidTargets())
			}

			raw := args[0]
			if normalize {
				raw = urlutil.NormalizeScheme(raw)
			}

			u, err := browser.Launch(browser.LaunchOptions{URL: raw, Target: browser.Target(target)})
			if err != nil {
				return err
			}

			return cliout.Print(u, func() {
				if browser.ResolveTarget(browser.Target(target)) == browser.TargetNone {
					cliout.Info("%s is valid; not opening (target none)", u.Raw())
					return
				}
				cliout.Success("Opened %s", u.Raw())
			})
		},
	}
	cmd.Flags().StringVar(&target, "target", string(browser.TargetDefault), "Browser target ("+browser.FormatValidTargets()+")")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Prepend http:// to input without a scheme")
	return cmd
}
