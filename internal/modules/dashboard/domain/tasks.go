package domain

// CompletedSet holds action-item indices marked done. Indices are never
// checked against the current action-item list.
type CompletedSet []int

func (s CompletedSet) Contains(index int) bool {
	for _, v := range s {
		if v == index {
			return true
		}
	}
	return false
}

// Toggle returns a new set with index removed when present, appended
// otherwise. Every occurrence is removed.
func (s CompletedSet) Toggle(index int) CompletedSet {
	if !s.Contains(index) {
		out := make(CompletedSet, len(s), len(s)+1)
		copy(out, s)
		return append(out, index)
	}
	out := make(CompletedSet, 0, len(s))
	for _, v := range s {
		if v != index {
			out = append(out, v)
		}
	}
	return out
}

// Dangling returns the members that do not address an item in a list of
// itemCount entries.
func (s CompletedSet) Dangling(itemCount int) []int {
	var out []int
	for _, v := range s {
		if v < 0 || v >= itemCount {
			out = append(out, v)
		}
	}
	return out
}
