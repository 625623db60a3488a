package main

import (
	"os"

	"github.com/abdullahfazal969-alt/News-agent/internal/app"
	"github.com/abdullahfazal969-alt/News-agent/internal/cli"
	"github.com/abdullahfazal969-alt/News-agent/internal/logging"
)

func main() {
	// A default logger covers failures that happen before the CLI has
	// resolved its configuration; initConfig reconfigures it afterwards.
	logging.Setup(logging.DefaultConfig())

	// Setup signal handling for graceful shutdown
	ctx := app.SetupSignalHandler()

	os.Exit(cli.Execute(ctx))
}
