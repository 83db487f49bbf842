package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/stdsites/cmd/stdsites/commands"
	ferrors "git.home.luguber.info/inful/stdsites/internal/foundation/errors"
	"git.home.luguber.info/inful/stdsites/internal/version"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cli := &commands.CLI{}
	cli.SetLogOutput(stderr)
	glob := &commands.Global{Ctx: ctx, Stdout: stdout, Stderr: stderr}

	exitCode := -1
	parser, err := kong.New(cli,
		kong.Name("stdsites"),
		kong.Description("Generate Hugo configuration for a family of standards sites."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars{"version": version.String()},
		kong.Bind(glob, cli),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
		}),
	)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		// --help or --version
		return exitCode
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err := kctx.Run(glob, cli); err != nil {
		return ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
	return 0
}
