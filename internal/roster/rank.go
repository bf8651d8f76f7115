package roster

// RankPositions assigns each entry a 1-based rank within its position group.
// Ranks are handed out in original input order, so the first occurrence of a
// label always receives rank 1. The input is never re-sorted.
func RankPositions(positions []string) []int {
	ranks := make([]int, len(positions))
	counts := make(map[string]int, len(positions))

	for i, pos := range positions {
		counts[pos]++
		ranks[i] = counts[pos]
	}
	return ranks
}

// ReassignOverflow rewrites any position whose rank exceeds its slot capacity
// to the wildcard label. A label missing from the capacity table is
// unconstrained and never overflows. Length and order of the input are
// preserved exactly.
func ReassignOverflow(positions []string, ranks []int, capacities map[string]int, wildcard string) []string {
	out := make([]string, len(positions))
	for i, pos := range positions {
		limit, constrained := capacities[pos]
		if constrained && ranks[i] > limit {
			out[i] = wildcard
		} else {
			out[i] = pos
		}
	}
	return out
}
