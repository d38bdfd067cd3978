package partscope

// EffectiveOnResistance is the smallest present per-condition reading, falling back to
// the typical reading. Nil means unknown.
func EffectiveOnResistance(r *Record) *float64 {
	var best *float64
	for _, v := range r.OnResistance {
		if v == nil {
			continue
		}
		if best == nil || *v < *best {
			best = v
		}
	}
	if best != nil {
		out := *best
		return &out
	}
	if r.TypicalOnResistance != nil {
		out := *r.TypicalOnResistance
		return &out
	}
	return nil
}
