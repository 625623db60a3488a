// Package cli defines the newsagent command tree. Commands parse flags,
// load configuration and delegate the actual pipeline work to internal/app;
// the one exception is the TUI, which owns its own lifecycle.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdullahfazal969-alt/News-agent/internal/config"
	apperrors "github.com/abdullahfazal969-alt/News-agent/internal/errors"
	"github.com/abdullahfazal969-alt/News-agent/internal/logging"
)

var (
	cfgFile string
	cfg     config.Config
	quiet   bool

	// tuiExitCode carries the dashboard's exit code out of the cobra run,
	// which only reports errors. ExitSuccess unless the TUI path ran.
	tuiExitCode int
)

// Execute runs the root command with the provided context and returns the
// process exit code.
func Execute(ctx context.Context) int {
	tuiExitCode = apperrors.ExitSuccess

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log := logging.NewLogger("cli")
		log.Error().Err(err).Msg("command failed")
		return apperrors.ExitCode(err)
	}
	return tuiExitCode
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "newsagent",
		Short: "News Agent - hybrid concurrency research pipeline",
		Long: `News Agent fetches articles concurrently and analyzes them through a
bounded worker pool, demonstrating the hybrid I/O + CPU concurrency model.
Fetches all run at once; analyses are limited to the configured worker
count; the report preserves the input order of the articles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	// Define persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.newsagent.yaml)")
	rootCmd.PersistentFlags().IntP("workers", "w", config.DefaultMaxWorkers, "size of the CPU-bound worker pool")
	rootCmd.PersistentFlags().Duration("fetch-latency", config.DefaultFetchLatency, "simulated network latency per article fetch")
	rootCmd.PersistentFlags().Duration("processing-latency", config.DefaultProcessingLatency, "simulated CPU cost per article analysis")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultCallTimeout, "timeout for a whole research run (0 disables)")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutput, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output with debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress display and non-error logs")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")

	// Add subcommands
	rootCmd.AddCommand(newResearchCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// initConfig loads configuration with flags bound over file and environment
// sources, validates it, and configures logging for the rest of the run.
func initConfig(cmd *cobra.Command) error {
	mgr := config.NewManager(cfgFile)

	// Bind flags onto viper so a changed flag wins over env and file values.
	flags := cmd.Flags()
	bindings := map[string]string{
		config.KeyMaxWorkers:        "workers",
		config.KeyFetchLatency:      "fetch-latency",
		config.KeyProcessingLatency: "processing-latency",
		config.KeyCallTimeout:       "timeout",
		config.KeyOutput:            "output",
		config.KeyNoColor:           "no-color",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := mgr.Viper().BindPFlag(key, flag); err != nil {
			return apperrors.WrapError(err, "failed to bind flag --"+name)
		}
	}

	loaded, err := mgr.Load()
	if err != nil {
		return err
	}

	// --verbose and --quiet adjust the level after file/env resolution;
	// --quiet wins when both are given.
	if verbose, _ := flags.GetBool("verbose"); verbose {
		loaded.LogLevel = string(logging.LevelDebug)
	}
	quiet, _ = flags.GetBool("quiet")
	if quiet {
		loaded.LogLevel = string(logging.LevelError)
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	logging.Setup(logging.Config{
		Level:   logging.LogLevel(loaded.LogLevel),
		Pretty:  loaded.LogFormat != "json",
		NoColor: loaded.NoColor,
	})

	log := logging.NewLogger("cli")
	if file := mgr.ConfigFileUsed(); file != "" {
		log.Debug().Str("file", file).Msg("loaded settings file")
	}
	log.Debug().
		Int("workers", loaded.MaxWorkers).
		Dur("fetch_latency", loaded.FetchLatency).
		Dur("processing_latency", loaded.ProcessingLatency).
		Dur("timeout", loaded.CallTimeout).
		Msg("configuration resolved")

	cfg = loaded
	return nil
}

// progressEnabled reports whether a live spinner makes sense: an interactive
// stderr, table output and no --quiet.
func progressEnabled() bool {
	if quiet || cfg.Output != "table" {
		return false
	}
	return isTerminal(os.Stderr)
}
