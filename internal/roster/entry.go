package roster

// Entry represents one drafted player in one lineup. It is the immutable
// input unit of the normalization pipeline: the position label is rewritten
// on copies, never in place.
type Entry struct {
	PlayerID string `json:"player_id"`
	Position string `json:"position"`
	LineupID string `json:"lineup_id"`
}

// SplitLineups partitions a batch of entries by lineup id, preserving the
// order in which lineup ids first appear and the entry order within each
// lineup.
func SplitLineups(entries []Entry) [][]Entry {
	groups := make(map[string][]Entry, len(entries))
	order := make([]string, 0)

	for _, e := range entries {
		if _, seen := groups[e.LineupID]; !seen {
			order = append(order, e.LineupID)
		}
		groups[e.LineupID] = append(groups[e.LineupID], e)
	}

	lineups := make([][]Entry, len(order))
	for i, id := range order {
		lineups[i] = groups[id]
	}
	return lineups
}

// Positions extracts the position column from a batch of entries.
func Positions(entries []Entry) []string {
	positions := make([]string, len(entries))
	for i, e := range entries {
		positions[i] = e.Position
	}
	return positions
}
