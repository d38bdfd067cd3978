package partscope

import (
	"sort"
	"strings"
)

// DistinctValues collects the non-empty values of d across records, deduplicated
// and sorted ascending.
func DistinctValues(records []Record, d Dimension) []string {
	if !d.Valid() {
		return nil
	}
	seen := make(map[string]struct{})
	for i := range records {
		v := d.Value(&records[i])
		if strings.TrimSpace(v) == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FacetCounts returns the top values of d with their record counts, most frequent
// first and ties broken by value. top <= 0 returns every value.
func FacetCounts(records []Record, d Dimension, top int) []ValueCount {
	if !d.Valid() {
		return nil
	}
	counts := make(map[string]uint64)
	for i := range records {
		v := d.Value(&records[i])
		if strings.TrimSpace(v) == "" {
			continue
		}
		counts[v]++
	}
	result := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		result = append(result, ValueCount{Value: v, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Value < result[j].Value
	})
	if top > 0 && len(result) > top {
		result = result[:top]
	}
	return result
}
