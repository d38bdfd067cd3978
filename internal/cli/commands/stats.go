package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/partscope/partscope/internal/cliopt"
	"github.com/partscope/partscope/internal/cliutil"
	"github.com/partscope/partscope/partscope"
)

// RunStats aggregates a numeric field over the filtered records.
func RunStats(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(g.Stderr)
	var field string
	fs.StringVar(&field, "field", "", "numeric field (see: partscope dims)")
	fs.StringVar(&field, "f", "", "numeric field")
	filters := bindFilterFlags(fs)
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if field == "" {
		fmt.Fprintln(g.Stderr, "missing --field")
		return 2
	}
	f, err := partscope.ParseNumericField(field)
	if err != nil {
		fmt.Fprintln(g.Stderr, err)
		return 2
	}

	rt, code := start(g)
	if rt == nil {
		return code
	}
	defer rt.finish()

	s, err := rt.session(context.Background())
	if err != nil {
		fmt.Fprintln(g.Stderr, err)
		return 1
	}
	if err := filters.apply(s); err != nil {
		fmt.Fprintln(g.Stderr, err)
		return 2
	}

	out := s.Stats(f)
	return rt.print(out, func() {
		fmt.Fprintf(g.Stdout, "field:  %s\n", out.Field)
		fmt.Fprintf(g.Stdout, "count:  %d\n", out.Count)
		fmt.Fprintf(g.Stdout, "min:    %s\n", cliutil.FormatFloat(out.Min))
		fmt.Fprintf(g.Stdout, "max:    %s\n", cliutil.FormatFloat(out.Max))
		fmt.Fprintf(g.Stdout, "avg:    %s\n", cliutil.FormatFloat(out.Avg))
		fmt.Fprintf(g.Stdout, "median: %s\n", cliutil.FormatFloat(out.Median))
	})
}
