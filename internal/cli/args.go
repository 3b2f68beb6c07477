package cli

import (
	"context"
	"strings"

	urfavecli "github.com/urfave/cli/v3"
)

// Run executes cmd with args, passing positional arguments through untouched.
// urfave/cli trims whitespace from positionals and stops at an empty one
// unless they follow "--", so flags are moved to the front and every
// positional is placed after a "--" separator.
func Run(ctx context.Context, cmd *urfavecli.Command, args []string) error {
	return cmd.Run(ctx, literalArgs(cmd, args))
}

// literalArgs reorders args[1:] into flags, then "--", then positionals.
// Flags may appear anywhere; a value flag given as "--name value" keeps its
// value attached. Arguments after an explicit "--" are always positional.
func literalArgs(cmd *urfavecli.Command, args []string) []string {
	if len(args) == 0 {
		return args
	}

	valueFlags := make(map[string]bool)
	for _, f := range cmd.Flags {
		if _, isBool := f.(*urfavecli.BoolFlag); isBool {
			continue
		}
		for _, name := range f.Names() {
			valueFlags[name] = true
		}
	}

	flags := []string{args[0]}
	var positionals []string

	for i := 1; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}

		if len(arg) < 2 || arg[0] != '-' {
			positionals = append(positionals, arg)
			continue
		}

		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if valueFlags[name] && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	if len(positionals) == 0 {
		return flags
	}
	flags = append(flags, "--")
	return append(flags, positionals...)
}
