package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abdullahfazal969-alt/News-agent/internal/app"
	"github.com/abdullahfazal969-alt/News-agent/internal/newswire"
	"github.com/abdullahfazal969-alt/News-agent/internal/tui"
	"github.com/abdullahfazal969-alt/News-agent/pkg/version"
)

// newResearchCmd creates the research command
func newResearchCmd() *cobra.Command {
	var useTUI bool

	cmd := &cobra.Command{
		Use:   "research [url ...]",
		Short: "Fetch and analyze articles through the hybrid pipeline",
		Long: `Research fetches every given article concurrently, analyzes each one
through the bounded worker pool, and prints one aggregated report in the
order the URLs were given. Without arguments it researches a built-in set
of six demo articles.`,
		Example: `  # Research the demo articles with the default two workers
  newsagent research

  # Four workers over custom articles, JSON report
  newsagent research -w 4 -o json http://example.com/a http://example.com/b

  # Watch the run in the live dashboard
  newsagent research --tui`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := args
			if len(urls) == 0 {
				urls = newswire.DemoURLs()
			}

			if useTUI {
				tuiExitCode = tui.Run(cmd.Context(), cfg, urls, version.Get().Version)
				return nil
			}

			opts := []app.Option{}
			if progressEnabled() {
				opts = append(opts, app.WithProgressReporter(SpinnerReporter{}, os.Stderr))
			}

			return app.New(cfg, cmd.OutOrStdout(), opts...).Research(cmd.Context(), urls)
		},
	}

	cmd.Flags().BoolVar(&useTUI, "tui", false, "run with the live dashboard instead of printing a report")

	return cmd
}
