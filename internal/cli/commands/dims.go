package commands

import (
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/partscope/partscope/internal/cliopt"
	"github.com/partscope/partscope/internal/cliutil"
	"github.com/partscope/partscope/partscope"
)

type dimsOutput struct {
	Dimensions    []string `json:"dimensions" yaml:"dimensions"`
	Ranges        []string `json:"ranges" yaml:"ranges"`
	NumericFields []string `json:"numeric_fields" yaml:"numeric_fields"`
}

// RunDims lists the names accepted by the other commands. It needs no catalog.
func RunDims(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("dims", flag.ContinueOnError)
	fs.SetOutput(g.Stderr)
	if err := fs.Parse(argv); err != nil {
		return 2
	}
	format, err := cliutil.ParseOutputFormat(g.Format)
	if err != nil {
		fmt.Fprintln(g.Stderr, err)
		return 2
	}

	var out dimsOutput
	for _, d := range partscope.Dimensions() {
		out.Dimensions = append(out.Dimensions, d.String())
	}
	for _, d := range partscope.RangeDimensions() {
		out.Ranges = append(out.Ranges, d.String())
	}
	for _, f := range partscope.NumericFields() {
		out.NumericFields = append(out.NumericFields, string(f))
	}

	done, err := cliutil.PrintStructured(g.Stdout, format, out)
	if err != nil {
		fmt.Fprintln(g.Stderr, err)
		return 1
	}
	if done {
		return 0
	}
	tw := tabwriter.NewWriter(g.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "DIMENSION\tFLAG")
	for _, d := range partscope.Dimensions() {
		fmt.Fprintf(tw, "%s\t--%s\n", d, flagName(d))
	}
	fmt.Fprintln(tw, "\nRANGE\tFLAGS")
	for _, d := range partscope.RangeDimensions() {
		fmt.Fprintf(tw, "%s\t--%s-min --%s-max\n", d, d, d)
	}
	fmt.Fprintln(tw, "\nNUMERIC FIELD\t")
	for _, f := range out.NumericFields {
		fmt.Fprintf(tw, "%s\t\n", f)
	}
	_ = tw.Flush()
	return 0
}
