package partscope

import "sort"

// Selection is a set of record identifiers. It is independent of filtering:
// ids stay selected when their records are filtered out.
type Selection struct {
	ids map[RecordID]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[RecordID]struct{})}
}

// Toggle adds id, or removes it if already selected. Reports whether id is selected afterwards.
func (s *Selection) Toggle(id RecordID) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// SelectAll adds every id not already selected. It never removes.
func (s *Selection) SelectAll(ids []RecordID) int {
	added := 0
	for _, id := range ids {
		if _, ok := s.ids[id]; ok {
			continue
		}
		s.ids[id] = struct{}{}
		added++
	}
	return added
}

func (s *Selection) Clear() {
	s.ids = make(map[RecordID]struct{})
}

func (s *Selection) Contains(id RecordID) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *Selection) Len() int {
	return len(s.ids)
}

func (s *Selection) Empty() bool {
	return len(s.ids) == 0
}

// IDs returns the selected identifiers in ascending order.
func (s *Selection) IDs() []RecordID {
	out := make([]RecordID, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
