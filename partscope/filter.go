package partscope

import "strings"

// matcher is Criteria compiled for a single pass over the catalog.
type matcher struct {
	term   string
	sets   []dimensionSet
	ranges []rangeClause
}

type dimensionSet struct {
	dim    Dimension
	accept map[string]struct{}
}

type rangeClause struct {
	dim RangeDimension
	r   Range
}

func compile(c Criteria) matcher {
	m := matcher{term: strings.ToLower(c.search)}
	for d := range c.values {
		if len(c.values[d]) == 0 {
			continue
		}
		m.sets = append(m.sets, dimensionSet{dim: Dimension(d), accept: toSet(c.values[d])})
	}
	for d := range c.ranges {
		if c.ranges[d].IsSet() {
			m.ranges = append(m.ranges, rangeClause{dim: RangeDimension(d), r: c.ranges[d]})
		}
	}
	return m
}

func (m matcher) match(r *Record) bool {
	if m.term != "" && !strings.Contains(strings.ToLower(r.PartNumber), m.term) {
		return false
	}
	for _, s := range m.sets {
		v := s.dim.Value(r)
		if strings.TrimSpace(v) == "" {
			return false
		}
		if _, ok := s.accept[v]; !ok {
			return false
		}
	}
	for _, rc := range m.ranges {
		if !rc.r.Contains(rc.dim.Value(r)) {
			return false
		}
	}
	return true
}

// Matches reports whether a single record satisfies every active clause of c.
func Matches(r *Record, c Criteria) bool {
	return compile(c).match(r)
}

// ApplyFilters returns copies of the records satisfying c, in input order.
func ApplyFilters(records []Record, c Criteria) []Record {
	m := compile(c)
	out := make([]Record, 0, len(records))
	for i := range records {
		if m.match(&records[i]) {
			out = append(out, records[i].clone())
		}
	}
	return out
}
