package commands

import (
	"context"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/partscope/partscope/internal/cliopt"
	"github.com/partscope/partscope/internal/cliutil"
	"github.com/partscope/partscope/partscope"
)

type filterOutput struct {
	Criteria partscope.Criteria   `json:"criteria" yaml:"criteria"`
	Count    int                  `json:"count" yaml:"count"`
	Records  []partscope.Record   `json:"records" yaml:"records"`
	Selected []partscope.RecordID `json:"selected,omitempty" yaml:"selected,omitempty"`
	Plot     partscope.PlotConfig `json:"plot" yaml:"plot"`
}

// RunFilter prints the records matching the filter flags.
func RunFilter(g cliopt.GlobalOptions, argv []string) int {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	fs.SetOutput(g.Stderr)
	var selected cliutil.Int64List
	var selectAll bool
	var limit int
	var xField, yField, scale, zoom string
	fs.Var(&selected, "select", "toggle selection of a record id (repeatable)")
	fs.BoolVar(&selectAll, "select-all", false, "select every filtered record")
	fs.IntVar(&limit, "limit", 0, "pretty output: print at most N records")
	fs.StringVar(&xField, "x", "", "plot x field")
	fs.StringVar(&yField, "y", "", "plot y field")
	fs.StringVar(&scale, "scale", "", "plot scale: linear|log")
	fs.StringVar(&zoom, "zoom", "", "plot zoom mode: xy|x|y")
	filters := bindFilterFlags(fs)
	if err := fs.Parse(argv); err != nil {
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
	if err := applyPlotFlags(s, xField, yField, scale, zoom); err != nil {
		fmt.Fprintln(g.Stderr, err)
		return 2
	}

	records := s.FilteredRecords()
	for _, id := range selected {
		s.ToggleSelection(partscope.RecordID(id))
	}
	if selectAll {
		ids := make([]partscope.RecordID, len(records))
		for i := range records {
			ids[i] = records[i].ID
		}
		s.SelectAll(ids)
	}

	out := filterOutput{
		Criteria: s.Committed(),
		Count:    len(records),
		Records:  records,
		Selected: s.SelectedIDs(),
		Plot:     s.PlotConfig(),
	}
	return rt.print(out, func() { printRecordTable(g, s, records, limit) })
}

func applyPlotFlags(s *partscope.Session, xField, yField, scale, zoom string) error {
	plot := s.PlotConfig()
	if xField != "" || yField != "" {
		if xField == "" {
			xField = plot.XField
		}
		if yField == "" {
			yField = plot.YField
		}
		s.SetAxes(xField, yField)
	}
	if scale != "" {
		sc, err := partscope.ParseScale(scale)
		if err != nil {
			return err
		}
		s.SetScale(sc)
	}
	if zoom != "" {
		z, err := partscope.ParseZoomMode(zoom)
		if err != nil {
			return err
		}
		s.SetZoomMode(z)
	}
	return nil
}

func printRecordTable(g cliopt.GlobalOptions, s *partscope.Session, records []partscope.Record, limit int) {
	fmt.Fprintf(g.Stdout, "Found %d of %d records\n", len(records), s.Catalog().Len())
	if len(records) == 0 {
		return
	}
	tw := tabwriter.NewWriter(g.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "SEL\tID\tPART\tMANUFACTURER\tPACKAGE\tVDS\tRDSON\tVTH\tAUTO")
	for i := range records {
		if limit > 0 && i >= limit {
			fmt.Fprintf(tw, "\t...\t%d more\t\t\t\t\t\t\n", len(records)-limit)
			break
		}
		r := &records[i]
		sel := ""
		if s.IsSelected(r.ID) {
			sel = "*"
		}
		auto := ""
		if r.IsAutomotiveQualified() {
			auto = "yes"
		}
		vds := r.BreakdownVoltage
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			sel, r.ID, r.PartNumber, r.Manufacturer, r.Package,
			cliutil.FormatFloat(&vds),
			cliutil.FormatFloat(partscope.EffectiveOnResistance(r)),
			cliutil.FormatFloat(r.ThresholdVoltage),
			auto)
	}
	_ = tw.Flush()

	if hidden := len(s.SelectedRecords()) - countSelected(s, records); hidden > 0 {
		fmt.Fprintf(g.Stdout, "%d selected record(s) hidden by the filter\n", hidden)
	}
}

func countSelected(s *partscope.Session, records []partscope.Record) int {
	n := 0
	for i := range records {
		if s.IsSelected(records[i].ID) {
			n++
		}
	}
	return n
}
