package roster

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownProfile = errors.New("unknown site/sport profile")
	ErrRosterSize     = errors.New("invalid roster size")
)

// Site represents a DFS platform
type Site string

const (
	SiteDraftKings Site = "draftkings"
	SiteFanDuel    Site = "fanduel"
)

// Sport represents the sport type
type Sport string

const (
	SportNFL Sport = "nfl"
	SportMLB Sport = "mlb"
	SportNBA Sport = "nba"
	SportNHL Sport = "nhl"
)

// Phase is one rank-and-reassign pass: entries whose rank within their
// position group exceeds the slot capacity are rewritten to the wildcard
// label. Multi-phase sports (NBA) chain phases so that overflow collapses
// into G/F first and UTIL last.
type Phase struct {
	Capacities map[string]int
	Wildcard   string
}

// Profile describes how one site/sport upload template normalizes a drafted
// roster: an optional label merge applied before ranking, the ordered
// normalization phases, the canonical slot order of the upload template, and
// the template itself (one header per roster slot, duplicates allowed).
type Profile struct {
	Site       Site
	Sport      Sport
	Preprocess func(position string) string
	Phases     []Phase
	SlotOrder  []string
	Template   []string
}

// RosterSize returns the fixed number of players the site/sport template
// expects per lineup.
func (p Profile) RosterSize() int {
	return len(p.Template)
}

// mergeLabels builds a preprocessor that collapses synonymous raw labels
// into a single ranking group. The merged label itself is included so the
// rewrite is idempotent.
func mergeLabels(merged string, raw ...string) func(string) string {
	group := make(map[string]bool, len(raw)+1)
	group[merged] = true
	for _, label := range raw {
		group[label] = true
	}
	return func(position string) string {
		if group[position] {
			return merged
		}
		return position
	}
}

type profileKey struct {
	site  Site
	sport Sport
}

// profiles is the closed registry of supported site/sport combinations.
// There is no dynamic registration: anything not listed here is a
// configuration error. Pass-through profiles (no preprocessor, no phases)
// still get canonical ordering.
var profiles = map[profileKey]Profile{
	{SiteDraftKings, SportNFL}: {
		Site:  SiteDraftKings,
		Sport: SportNFL,
		Phases: []Phase{
			{Capacities: map[string]int{"QB": 1, "RB": 2, "WR": 3, "TE": 1}, Wildcard: "FLEX"},
		},
		SlotOrder: []string{"QB", "RB", "WR", "TE", "FLEX", "DST"},
		Template:  []string{"QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "DST"},
	},
	{SiteDraftKings, SportNBA}: {
		Site:  SiteDraftKings,
		Sport: SportNBA,
		Phases: []Phase{
			{Capacities: map[string]int{"PG": 1, "SG": 1}, Wildcard: "G"},
			{Capacities: map[string]int{"SF": 1, "PF": 1}, Wildcard: "F"},
			{Capacities: map[string]int{"PG": 1, "SG": 1, "SF": 1, "PF": 1, "C": 1, "G": 1, "F": 1}, Wildcard: "UTIL"},
		},
		SlotOrder: []string{"PG", "SG", "SF", "PF", "C", "G", "F", "UTIL"},
		Template:  []string{"PG", "SG", "SF", "PF", "C", "G", "F", "UTIL"},
	},
	{SiteDraftKings, SportNHL}: {
		Site:       SiteDraftKings,
		Sport:      SportNHL,
		Preprocess: mergeLabels("W", "LW", "RW"),
		Phases: []Phase{
			{Capacities: map[string]int{"C": 2, "W": 3, "D": 2, "G": 1}, Wildcard: "UTIL"},
		},
		SlotOrder: []string{"C", "W", "D", "G", "UTIL"},
		Template:  []string{"C", "C", "W", "W", "W", "D", "D", "G", "UTIL"},
	},
	{SiteDraftKings, SportMLB}: {
		Site:      SiteDraftKings,
		Sport:     SportMLB,
		SlotOrder: []string{"P", "C", "1B", "2B", "3B", "SS", "OF"},
		Template:  []string{"P", "P", "C", "1B", "2B", "3B", "SS", "OF", "OF", "OF"},
	},
	{SiteFanDuel, SportNFL}: {
		Site:      SiteFanDuel,
		Sport:     SportNFL,
		SlotOrder: []string{"QB", "RB", "WR", "TE", "FLEX", "D/ST"},
		Template:  []string{"QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "D/ST"},
	},
	{SiteFanDuel, SportMLB}: {
		Site:       SiteFanDuel,
		Sport:      SportMLB,
		Preprocess: mergeLabels("C/1B", "C", "1B"),
		Phases: []Phase{
			{Capacities: map[string]int{"P": 1, "C/1B": 1, "2B": 1, "3B": 1, "SS": 1, "OF": 3}, Wildcard: "UTIL"},
		},
		SlotOrder: []string{"P", "C/1B", "2B", "3B", "SS", "OF", "UTIL"},
		Template:  []string{"P", "C/1B", "2B", "3B", "SS", "OF", "OF", "OF", "UTIL"},
	},
	{SiteFanDuel, SportNBA}: {
		Site:      SiteFanDuel,
		Sport:     SportNBA,
		SlotOrder: []string{"PG", "SG", "SF", "PF", "C"},
		Template:  []string{"PG", "PG", "SG", "SG", "SF", "SF", "PF", "PF", "C"},
	},
	{SiteFanDuel, SportNHL}: {
		Site:       SiteFanDuel,
		Sport:      SportNHL,
		Preprocess: mergeLabels("W", "LW", "RW"),
		Phases: []Phase{
			{Capacities: map[string]int{"C": 2, "W": 4, "D": 2, "G": 1}, Wildcard: "UTIL"},
		},
		SlotOrder: []string{"C", "W", "D", "G"},
		Template:  []string{"C", "C", "W", "W", "W", "W", "D", "D", "G"},
	},
}

// ProfileFor resolves the profile for a site/sport pair. Unknown pairs are a
// configuration error, reported before any roster data is touched.
func ProfileFor(site Site, sport Sport) (Profile, error) {
	profile, ok := profiles[profileKey{site, sport}]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s/%s", ErrUnknownProfile, site, sport)
	}
	return profile, nil
}

// AllProfiles returns every registered profile in a fixed site/sport order.
func AllProfiles() []Profile {
	keys := []profileKey{
		{SiteDraftKings, SportNFL},
		{SiteDraftKings, SportMLB},
		{SiteDraftKings, SportNBA},
		{SiteDraftKings, SportNHL},
		{SiteFanDuel, SportNFL},
		{SiteFanDuel, SportMLB},
		{SiteFanDuel, SportNBA},
		{SiteFanDuel, SportNHL},
	}
	all := make([]Profile, 0, len(keys))
	for _, k := range keys {
		all = append(all, profiles[k])
	}
	return all
}

// Normalize applies the profile pipeline to a single drafted lineup:
// roster-size precondition, label merge, phased rank/overflow reassignment,
// then canonical slot ordering. The input is not mutated; entries come back
// in template order with overflow positions rewritten to wildcard labels.
func (p Profile) Normalize(entries []Entry) ([]Entry, error) {
	if len(entries) == 0 {
		return []Entry{}, nil
	}
	if len(entries) != p.RosterSize() {
		return nil, fmt.Errorf("%w: %s/%s lineup requires %d players, got %d",
			ErrRosterSize, p.Site, p.Sport, p.RosterSize(), len(entries))
	}

	positions := Positions(entries)
	if p.Preprocess != nil {
		for i, pos := range positions {
			positions[i] = p.Preprocess(pos)
		}
	}

	for _, phase := range p.Phases {
		ranks := RankPositions(positions)
		positions = ReassignOverflow(positions, ranks, phase.Capacities, phase.Wildcard)
	}

	normalized := make([]Entry, len(entries))
	for i, e := range entries {
		normalized[i] = e
		normalized[i].Position = positions[i]
	}
	return OrderBySlots(normalized, p.SlotOrder), nil
}

// NormalizeBatch splits a multi-lineup batch by lineup id and normalizes
// each lineup independently. The first lineup that violates the roster-size
// precondition aborts the batch.
func (p Profile) NormalizeBatch(entries []Entry) ([]Entry, error) {
	normalized := make([]Entry, 0, len(entries))
	for _, lineup := range SplitLineups(entries) {
		out, err := p.Normalize(lineup)
		if err != nil {
			return nil, fmt.Errorf("lineup %s: %w", lineup[0].LineupID, err)
		}
		normalized = append(normalized, out...)
	}
	return normalized, nil
}
