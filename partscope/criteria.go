package partscope

import "encoding/json"

// Range is an inclusive numeric interval; a nil side is unbounded.
type Range struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// IsSet reports whether either side is bounded.
func (r Range) IsSet() bool {
	return r.Min != nil || r.Max != nil
}

// Contains reports whether v satisfies the bounds. Absent values fail any set bound.
func (r Range) Contains(v *float64) bool {
	if !r.IsSet() {
		return true
	}
	if v == nil {
		return false
	}
	if r.Min != nil && *v < *r.Min {
		return false
	}
	if r.Max != nil && *v > *r.Max {
		return false
	}
	return true
}

func (r Range) clone() Range {
	return Range{Min: copyFloat(r.Min), Max: copyFloat(r.Max)}
}

// BoundSide selects the lower or upper side of a Range.
type BoundSide int

const (
	BoundMin BoundSide = iota
	BoundMax
)

// Criteria is the full set of filter selections. The zero value accepts everything.
type Criteria struct {
	values [numDimensions][]string
	ranges [numRangeDimensions]Range
	search string
}

// Clone returns a deep copy sharing no storage with c.
func (c Criteria) Clone() Criteria {
	var out Criteria
	for d := range c.values {
		if len(c.values[d]) > 0 {
			out.values[d] = append([]string(nil), c.values[d]...)
		}
	}
	for d := range c.ranges {
		out.ranges[d] = c.ranges[d].clone()
	}
	out.search = c.search
	return out
}

// IsEmpty reports whether no clause is active.
func (c Criteria) IsEmpty() bool {
	return c.ActiveCount() == 0
}

// ActiveCount is the number of active clauses (non-empty sets, set ranges, search term).
func (c Criteria) ActiveCount() int {
	n := 0
	for d := range c.values {
		if len(c.values[d]) > 0 {
			n++
		}
	}
	for d := range c.ranges {
		if c.ranges[d].IsSet() {
			n++
		}
	}
	if c.search != "" {
		n++
	}
	return n
}

// Values returns a copy of the accepted values for d.
func (c Criteria) Values(d Dimension) []string {
	if !d.Valid() {
		return nil
	}
	return append([]string(nil), c.values[d]...)
}

// Contains reports whether v is an accepted value for d.
func (c Criteria) Contains(d Dimension, v string) bool {
	if !d.Valid() {
		return false
	}
	for _, s := range c.values[d] {
		if s == v {
			return true
		}
	}
	return false
}

// SetValues replaces the accepted values for d; duplicates are dropped, order kept.
func (c *Criteria) SetValues(d Dimension, values []string) {
	if !d.Valid() {
		return
	}
	if len(values) == 0 {
		c.values[d] = nil
		return
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	c.values[d] = out
}

// Toggle adds v to the accepted values for d, or removes it if present.
func (c *Criteria) Toggle(d Dimension, v string) {
	if !d.Valid() {
		return
	}
	cur := c.values[d]
	for i, s := range cur {
		if s == v {
			next := make([]string, 0, len(cur)-1)
			next = append(next, cur[:i]...)
			next = append(next, cur[i+1:]...)
			if len(next) == 0 {
				next = nil
			}
			c.values[d] = next
			return
		}
	}
	c.values[d] = append(append([]string(nil), cur...), v)
}

// ToggleAll clears d when every option is already accepted, otherwise accepts every option.
func (c *Criteria) ToggleAll(d Dimension, options []string) {
	if !d.Valid() {
		return
	}
	all := len(options) > 0
	for _, o := range options {
		if !c.Contains(d, o) {
			all = false
			break
		}
	}
	if all {
		c.values[d] = nil
		return
	}
	c.SetValues(d, options)
}

func (c Criteria) Range(d RangeDimension) Range {
	if !d.Valid() {
		return Range{}
	}
	return c.ranges[d].clone()
}

// SetRange replaces both bounds of d. Non-finite bounds are treated as unset.
func (c *Criteria) SetRange(d RangeDimension, r Range) {
	if !d.Valid() {
		return
	}
	c.ranges[d] = Range{Min: NormalizeBound(r.Min), Max: NormalizeBound(r.Max)}
}

// SetBound replaces one side of d. A nil or non-finite v clears it.
func (c *Criteria) SetBound(d RangeDimension, side BoundSide, v *float64) {
	if !d.Valid() {
		return
	}
	switch side {
	case BoundMin:
		c.ranges[d].Min = NormalizeBound(v)
	case BoundMax:
		c.ranges[d].Max = NormalizeBound(v)
	}
}

func (c Criteria) SearchTerm() string {
	return c.search
}

func (c *Criteria) SetSearchTerm(term string) {
	c.search = term
}

// Equal compares two criteria, treating value lists as sets.
func (c Criteria) Equal(o Criteria) bool {
	if c.search != o.search {
		return false
	}
	for d := range c.ranges {
		if !floatEqual(c.ranges[d].Min, o.ranges[d].Min) || !floatEqual(c.ranges[d].Max, o.ranges[d].Max) {
			return false
		}
	}
	for d := range c.values {
		if !sameSet(c.values[d], o.values[d]) {
			return false
		}
	}
	return true
}

func sameSet(a, b []string) bool {
	sa := toSet(a)
	sb := toSet(b)
	if len(sa) != len(sb) {
		return false
	}
	for k := range sa {
		if _, ok := sb[k]; !ok {
			return false
		}
	}
	return true
}

func toSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}

func floatEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

type criteriaView struct {
	Values map[string][]string `json:"values,omitempty" yaml:"values,omitempty"`
	Ranges map[string]Range    `json:"ranges,omitempty" yaml:"ranges,omitempty"`
	Search string              `json:"search,omitempty" yaml:"search,omitempty"`
}

func (c Criteria) view() criteriaView {
	v := criteriaView{Search: c.search}
	for d := range c.values {
		if len(c.values[d]) == 0 {
			continue
		}
		if v.Values == nil {
			v.Values = make(map[string][]string)
		}
		v.Values[Dimension(d).String()] = append([]string(nil), c.values[d]...)
	}
	for d := range c.ranges {
		if !c.ranges[d].IsSet() {
			continue
		}
		if v.Ranges == nil {
			v.Ranges = make(map[string]Range)
		}
		v.Ranges[RangeDimension(d).String()] = c.ranges[d].clone()
	}
	return v
}

func (c Criteria) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.view())
}

func (c Criteria) MarshalYAML() (interface{}, error) {
	return c.view(), nil
}
