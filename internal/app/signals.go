package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdullahfazal969-alt/News-agent/internal/logging"
)

// SetupSignalHandler creates a context that is cancelled on receiving SIGINT
// or SIGTERM. A second signal forces immediate exit.
func SetupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log := logging.NewLogger("signals")

		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()

		sig = <-sigCh
		log.Warn().Str("signal", sig.String()).Msg("received second shutdown signal, forcing exit")
		os.Exit(1)
	}()

	return ctx
}
