package roster

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLineups_FirstAppearanceOrder(t *testing.T) {
	entries := []Entry{
		{PlayerID: "p1", Position: "QB", LineupID: "b"},
		{PlayerID: "p2", Position: "QB", LineupID: "a"},
		{PlayerID: "p3", Position: "RB", LineupID: "b"},
		{PlayerID: "p4", Position: "RB", LineupID: "a"},
	}

	lineups := SplitLineups(entries)

	require.Len(t, lineups, 2)
	assert.Equal(t, "b", lineups[0][0].LineupID)
	assert.Equal(t, []string{"p1", "p3"}, []string{lineups[0][0].PlayerID, lineups[0][1].PlayerID})
	assert.Equal(t, "a", lineups[1][0].LineupID)
	assert.Equal(t, []string{"p2", "p4"}, []string{lineups[1][0].PlayerID, lineups[1][1].PlayerID})
}

func twoLineupBatch() []Entry {
	labels := []string{"QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "FLEX"}
	var entries []Entry
	for _, id := range []string{"1", "2"} {
		for i, label := range labels {
			entries = append(entries, Entry{
				PlayerID: id + "-" + string(rune('a'+i)),
				Position: label,
				LineupID: id,
			})
		}
	}
	return entries
}

func TestSerialize_TwoLineups(t *testing.T) {
	table := Serialize(twoLineupBatch())

	// Duplicate slot labels are preserved verbatim as repeated headers
	assert.Equal(t, []string{"QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "FLEX"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"1-a", "1-b", "1-c", "1-d", "1-e", "1-f", "1-g", "1-h", "1-i"}, table.Rows[0])
	assert.Equal(t, []string{"2-a", "2-b", "2-c", "2-d", "2-e", "2-f", "2-g", "2-h", "2-i"}, table.Rows[1])
	assert.True(t, table.IsAligned())
}

func TestSerialize_ExtraColumnsAppended(t *testing.T) {
	entries := []Entry{
		{PlayerID: "a1", Position: "P", LineupID: "short"},
		{PlayerID: "a2", Position: "OF", LineupID: "short"},
		{PlayerID: "b1", Position: "P", LineupID: "long"},
		{PlayerID: "b2", Position: "OF", LineupID: "long"},
		{PlayerID: "b3", Position: "UTIL", LineupID: "long"},
	}

	table := Serialize(entries)

	// Layout comes from the first lineup; extra trailing labels are appended
	assert.Equal(t, []string{"P", "OF", "UTIL"}, table.Header)
	assert.Equal(t, []string{"a1", "a2"}, table.Rows[0])
	assert.Equal(t, []string{"b1", "b2", "b3"}, table.Rows[1])
	assert.False(t, table.IsAligned())
}

func TestSerialize_Empty(t *testing.T) {
	table := Serialize(nil)
	assert.Empty(t, table.Header)
	assert.Empty(t, table.Rows)

	data, err := table.CSV()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestTableCSV(t *testing.T) {
	table := Serialize(twoLineupBatch())

	data, err := table.CSV()
	require.NoError(t, err)

	expected := "QB,RB,RB,WR,WR,WR,TE,FLEX,FLEX\n" +
		"1-a,1-b,1-c,1-d,1-e,1-f,1-g,1-h,1-i\n" +
		"2-a,2-b,2-c,2-d,2-e,2-f,2-g,2-h,2-i\n"
	assert.Equal(t, expected, string(data))
}

func TestTableCSV_PadsShortRows(t *testing.T) {
	table := Table{
		Header: []string{"P", "OF", "UTIL"},
		Rows:   [][]string{{"a1", "a2"}},
	}

	data, err := table.CSV()
	require.NoError(t, err)
	assert.Equal(t, "P,OF,UTIL\na1,a2,\n", string(data))
}

func TestTableWriteCSV(t *testing.T) {
	path := t.TempDir() + "/lineups.csv"
	table := Serialize(twoLineupBatch())

	require.NoError(t, table.WriteCSV(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "QB,RB,RB,WR,WR,WR,TE,FLEX,FLEX")
}
