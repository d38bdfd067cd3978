package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/partscope/partscope/internal/cli/commands"
	"github.com/partscope/partscope/internal/cliopt"
)

// Execute runs the CLI and returns an exit code.
func Execute(argv []string) int {
	return Run(argv, os.Stdout, os.Stderr)
}

// Run is Execute with explicit output streams.
func Run(argv []string, stdout, stderr io.Writer) int {
	globalFS := flag.NewFlagSet("partscope", flag.ContinueOnError)
	globalFS.SetOutput(stderr)
	g := cliopt.DefaultGlobalOptions()
	g.Stdout, g.Stderr = stdout, stderr
	cliopt.BindGlobalFlags(globalFS, &g)

	if err := globalFS.Parse(argv); err != nil {
		// flag package already printed the error
		return 2
	}

	args := globalFS.Args()
	if len(args) == 0 {
		PrintRootHelp(stdout)
		return 0
	}

	verb := args[0]
	rest := args[1:]

	switch verb {
	case "--help", "-h", "help":
		PrintRootHelp(stdout)
		return 0
	case "facets":
		return commands.RunFacets(g, rest)
	case "filter":
		return commands.RunFilter(g, rest)
	case "stats":
		return commands.RunStats(g, rest)
	case "import":
		return commands.RunImport(g, rest)
	case "dims":
		return commands.RunDims(g, rest)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", verb)
		PrintRootHelp(stderr)
		return 2
	}
}
