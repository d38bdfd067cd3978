package partscope

import (
	"math"
	"strconv"
	"strings"
)

// ParseBound turns user input into a range bound. Empty, non-numeric and
// non-finite input yields nil (unset).
func ParseBound(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return NormalizeBound(&v)
}

// NormalizeBound drops NaN and infinite bounds.
func NormalizeBound(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	out := *v
	return &out
}
