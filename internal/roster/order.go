package roster

import "sort"

// OrderBySlots sorts a lineup's entries by the canonical slot order of the
// site's upload template. Labels absent from slotOrder sort after all known
// labels. The sort is stable, so entries sharing a label (two FLEX, three
// OF) keep their relative order.
func OrderBySlots(entries []Entry, slotOrder []string) []Entry {
	index := make(map[string]int, len(slotOrder))
	for i, label := range slotOrder {
		index[label] = i
	}
	unranked := len(slotOrder)

	rank := func(label string) int {
		if i, ok := index[label]; ok {
			return i
		}
		return unranked
	}

	ordered := make([]Entry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return rank(ordered[i].Position) < rank(ordered[j].Position)
	})
	return ordered
}
