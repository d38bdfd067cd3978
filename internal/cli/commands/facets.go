package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/partscope/partscope/internal/cliopt"
	"github.com/partscope/partscope/partscope"
)

type facetsOutput struct {
	Dimension partscope.Dimension    `json:"dimension" yaml:"dimension"`
	Options   []string               `json:"options,omitempty" yaml:"options,omitempty"`
	Counts    []partscope.ValueCount `json:"counts,omitempty" yaml:"counts,omitempty"`
	Matched   int                    `json:"matched" yaml:"matched"`
}

// RunFacets lists the options of one dimension, or value counts over the filtered set.
func RunFacets(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("facets", flag.ContinueOnError)
	fs.SetOutput(g.Stderr)
	var dim string
	var counts bool
	var top int
	fs.StringVar(&dim, "dimension", "", "dimension (see: partscope dims)")
	fs.StringVar(&dim, "d", "", "dimension")
	fs.BoolVar(&counts, "counts", false, "count values over the filtered records")
	fs.IntVar(&top, "top", 0, "with --counts, only the N most frequent values")
	filters := bindFilterFlags(fs)
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	if dim == "" {
		fmt.Fprintln(g.Stderr, "missing --dimension")
		return 2
	}
	d, err := partscope.ParseDimension(dim)
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

	out := facetsOutput{Dimension: d}
	if counts {
		filtered := s.FilteredRecords()
		out.Matched = len(filtered)
		out.Counts = partscope.FacetCounts(filtered, d, top)
	} else {
		out.Options = s.FacetOptions(d)
		out.Matched = s.Catalog().Len()
	}

	return rt.print(out, func() {
		if counts {
			for _, vc := range out.Counts {
				fmt.Fprintf(g.Stdout, "%6d  %s\n", vc.Count, vc.Value)
			}
			return
		}
		for _, o := range out.Options {
			fmt.Fprintln(g.Stdout, o)
		}
	})
}
