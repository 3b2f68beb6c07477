package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/relmeta/internal/cli"
	"github.com/indaco/relmeta/internal/config"
	"github.com/indaco/relmeta/internal/printer"
)

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsageFailed = 2
)

func main() {
	err := runCLI(os.Args)
	if err != nil {
		if !printer.IsTerminal(os.Stderr) {
			printer.SetNoColor(true)
		}
		printer.FprintError(os.Stderr, "Error: "+err.Error())
		if isUsageError(err) {
			printer.FprintFaint(os.Stderr, fmt.Sprintf("Run '%s --help' for usage.", cli.Name))
		}
	}
	os.Exit(exitCode(err))
}

// runCLI loads configuration and runs the root command with args.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return &cli.UsageError{Err: fmt.Errorf("failed to load configuration: %w", err)}
	}

	app := cli.New(cfg, os.Stdout, os.Stderr)
	return cli.Run(context.Background(), app, args)
}

func isUsageError(err error) bool {
	var ue *cli.UsageError
	return errors.As(err, &ue)
}

// exitCode maps an error returned by runCLI to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case isUsageError(err):
		return exitUsageFailed
	default:
		return exitFailure
	}
}
