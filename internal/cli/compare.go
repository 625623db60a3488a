package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abdullahfazal969-alt/News-agent/internal/app"
	"github.com/abdullahfazal969-alt/News-agent/internal/newswire"
)

// newCompareCmd creates the compare command
func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [url ...]",
		Short: "Time the hybrid pipeline against a sequential baseline",
		Long: `Compare researches the same articles twice, first through the hybrid
pipeline and then strictly serially, and prints both wall-clock times with
the resulting speedup ratio. Both runs must produce identical analyses;
a divergence fails the command.

The sequential baseline exists to make the concurrency win visible; its
timing depends on the simulated latencies and proves nothing about real
workloads.`,
		Example: `  # Compare over the demo articles
  newsagent compare

  # Compare with a wider pool
  newsagent compare -w 4`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := args
			if len(urls) == 0 {
				urls = newswire.DemoURLs()
			}

			opts := []app.Option{}
			if progressEnabled() {
				opts = append(opts, app.WithProgressReporter(SpinnerReporter{}, os.Stderr))
			}

			return app.New(cfg, cmd.OutOrStdout(), opts...).Compare(cmd.Context(), urls)
		},
	}

	return cmd
}
