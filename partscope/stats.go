package partscope

import "sort"

// Stats aggregates f over records. Records without a value for f are skipped.
func Stats(records []Record, f NumericField) StatsResult {
	result := StatsResult{Field: string(f)}

	values := make([]float64, 0, len(records))
	for i := range records {
		if v := f.Value(&records[i]); v != nil {
			values = append(values, *v)
		}
	}
	if len(values) == 0 {
		return result
	}

	sort.Float64s(values)
	count := len(values)
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	minVal, maxVal := values[0], values[count-1]
	avg := sum / float64(count)

	result.Count = uint64(count)
	result.Min = &minVal
	result.Max = &maxVal
	result.Avg = &avg
	result.Median = median(values)
	return result
}

// median expects sorted input.
func median(sorted []float64) *float64 {
	count := len(sorted)
	if count == 0 {
		return nil
	}
	offset := (count - 1) / 2
	m := sorted[offset]
	if count%2 == 0 {
		m = (sorted[offset] + sorted[offset+1]) / 2
	}
	return &m
}
