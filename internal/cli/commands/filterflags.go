package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/partscope/partscope/internal/cliutil"
	"github.com/partscope/partscope/partscope"
)

// filterFlags binds one repeatable flag per dimension, min/max flags per range,
// a search term and the one-shot default.
type filterFlags struct {
	values   map[partscope.Dimension]*cliutil.StringList
	bounds   map[partscope.RangeDimension]*[2]string
	search   string
	defaults bool
}

func flagName(d partscope.Dimension) string {
	return strings.ReplaceAll(d.String(), "_", "-")
}

func bindFilterFlags(fs *flag.FlagSet) *filterFlags {
	f := &filterFlags{
		values: make(map[partscope.Dimension]*cliutil.StringList),
		bounds: make(map[partscope.RangeDimension]*[2]string),
	}
	for _, d := range partscope.Dimensions() {
		list := &cliutil.StringList{}
		f.values[d] = list
		fs.Var(list, flagName(d), fmt.Sprintf("accept %s value (repeatable)", d))
	}
	for _, d := range partscope.RangeDimensions() {
		b := &[2]string{}
		f.bounds[d] = b
		fs.StringVar(&b[0], d.String()+"-min", "", "minimum "+d.String())
		fs.StringVar(&b[1], d.String()+"-max", "", "maximum "+d.String())
	}
	fs.StringVar(&f.search, "search", "", "part number substring (case-insensitive)")
	fs.BoolVar(&f.defaults, "defaults", false, "start from every facet option selected")
	return f
}

// apply edits the session's pending criteria from the flags and confirms them.
// Malformed bounds are usage errors.
func (f *filterFlags) apply(s *partscope.Session) error {
	if f.defaults {
		s.Activate()
	}
	for _, d := range partscope.Dimensions() {
		if list := *f.values[d]; len(list) > 0 {
			s.SetPendingValues(d, list)
		}
	}
	for _, d := range partscope.RangeDimensions() {
		raw := f.bounds[d]
		for i, side := range []partscope.BoundSide{partscope.BoundMin, partscope.BoundMax} {
			if strings.TrimSpace(raw[i]) == "" {
				continue
			}
			v := partscope.ParseBound(raw[i])
			if v == nil {
				return fmt.Errorf("invalid --%s-%s value %q", d, [2]string{"min", "max"}[i], raw[i])
			}
			s.SetPendingBound(d, side, v)
		}
	}
	if f.search != "" {
		s.SetPendingSearchTerm(f.search)
	}
	s.Confirm()
	return nil
}
