package partscope

import "sync"

// Catalog is an immutable, identifier-unique record list. It is safe for
// concurrent readers.
type Catalog struct {
	records []Record
	index   map[RecordID]int
	facets  [numDimensions]facetMemo
}

type facetMemo struct {
	once   sync.Once
	values []string
}

// NewCatalog deep-copies records into a catalog, keeping their order.
func NewCatalog(records []Record) (*Catalog, error) {
	c := &Catalog{
		records: cloneRecords(records),
		index:   make(map[RecordID]int, len(records)),
	}
	for i := range c.records {
		id := c.records[i].ID
		if _, dup := c.index[id]; dup {
			return nil, DuplicateIDError(id)
		}
		c.index[id] = i
	}
	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns a deep copy of the catalog, in order.
func (c *Catalog) Records() []Record {
	return cloneRecords(c.records)
}

func (c *Catalog) Record(id RecordID) (Record, bool) {
	i, ok := c.index[id]
	if !ok {
		return Record{}, false
	}
	return c.records[i].clone(), true
}

func (c *Catalog) Has(id RecordID) bool {
	_, ok := c.index[id]
	return ok
}

// IDs returns every record identifier in catalog order.
func (c *Catalog) IDs() []RecordID {
	out := make([]RecordID, len(c.records))
	for i := range c.records {
		out[i] = c.records[i].ID
	}
	return out
}

// FacetOptions returns the sorted distinct values of d. Results are computed once per
// dimension; callers get their own copy.
func (c *Catalog) FacetOptions(d Dimension) []string {
	if !d.Valid() {
		return nil
	}
	if d.Derived() {
		return QualificationOptions()
	}
	m := &c.facets[d]
	m.once.Do(func() {
		m.values = DistinctValues(c.records, d)
	})
	return append([]string(nil), m.values...)
}

// Filter applies criteria to the whole catalog.
func (c *Catalog) Filter(criteria Criteria) []Record {
	return ApplyFilters(c.records, criteria)
}
