package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/indaco/relmeta/internal/config"
	"github.com/indaco/relmeta/internal/logging"
	"github.com/indaco/relmeta/internal/output"
	"github.com/indaco/relmeta/internal/printer"
	"github.com/indaco/relmeta/internal/release"
	"github.com/indaco/relmeta/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// Name is the program name used in help and log output.
const Name = "relmeta"

// UsageError marks failures caused by how the tool was invoked, as opposed
// to the content of the version argument.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// New builds and returns the root CLI command.
// Execute it with Run so the version argument reaches the parser verbatim.
// Release metadata is written to stdout; logs go to stderr.
func New(cfg *config.Config, stdout, stderr io.Writer) *urfavecli.Command {
	if cfg == nil {
		cfg = config.Default()
	}

	return &urfavecli.Command{
		Name:      Name,
		Version:   version.GetVersion(),
		Usage:     "Derive release metadata from a version string",
		UsageText: Name + " [--format env|json|yaml|toml] <version>",
		ArgsUsage: "<version>",
		Description: "Prints version, major_minor, release_branch, is_minor and is_first_rc\n" +
			"for a version such as v2.99.0-rc1, one key=value line per field by default.",
		Writer:          stdout,
		ErrWriter:       stderr,
		HideHelpCommand: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format (" + strings.Join(output.Formats(), ", ") + ")",
				Value:   cfg.Format,
			},
			&urfavecli.BoolFlag{
				Name:  "no-color",
				Usage: "Disable colored diagnostics",
				Value: cfg.NoColor,
			},
			&urfavecli.StringFlag{
				Name:  "log-level",
				Usage: "Log level on stderr (debug, info, warn, error)",
				Value: cfg.LogLevel,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(cmd.Bool("no-color") || !printer.IsTerminal(stderr))
			if err := logging.SetDefault(stderr, Name, version.GetVersion(), cmd.String("log-level")); err != nil {
				return ctx, &UsageError{Err: err}
			}
			return ctx, nil
		},
		OnUsageError: func(ctx context.Context, cmd *urfavecli.Command, err error, isSubcommand bool) error {
			return &UsageError{Err: err}
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runRelmeta(ctx, cmd, stdout)
		},
	}
}

// runRelmeta parses the single version argument and prints its metadata.
func runRelmeta(ctx context.Context, cmd *urfavecli.Command, stdout io.Writer) error {
	if n := cmd.Args().Len(); n != 1 {
		return usageErrorf("expected exactly one version argument, got %d", n)
	}

	format, err := output.ParseFormat(cmd.String("format"))
	if err != nil {
		return &UsageError{Err: err}
	}

	formatter := output.NewFormatter(format)
	raw := cmd.Args().First()
	slog.DebugContext(ctx, "parsing version", "input", raw, "format", formatter.Format().String())

	pv, err := release.Parse(raw)
	if err != nil {
		return err
	}

	slog.DebugContext(ctx, "derived release metadata",
		"release_branch", pv.ReleaseBranch,
		"is_minor", pv.IsMinor,
		"is_first_rc", pv.IsFirstRC,
	)

	return formatter.Write(stdout, pv)
}
