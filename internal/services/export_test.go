package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/dfs-uploader/internal/roster"
)

func newTestService() *ExportService {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.ErrorLevel)
	return NewExportService(log)
}

func nflLineup(id string, positions ...string) []roster.Entry {
	entries := make([]roster.Entry, len(positions))
	for i, pos := range positions {
		entries[i] = roster.Entry{
			PlayerID: id + "-" + string(rune('a'+i)),
			Position: pos,
			LineupID: id,
		}
	}
	return entries
}

func TestGetAvailableFormats(t *testing.T) {
	formats := newTestService().GetAvailableFormats()

	require.Len(t, formats, 8)

	byID := make(map[string]ExportFormat, len(formats))
	for _, f := range formats {
		byID[f.ID] = f
	}

	dkNFL, ok := byID["dk_nfl"]
	require.True(t, ok)
	assert.Equal(t, "DraftKings NFL", dkNFL.Name)
	assert.Equal(t, []string{"QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "DST"}, dkNFL.Headers)

	fdMLB, ok := byID["fd_mlb"]
	require.True(t, ok)
	assert.Equal(t, "fanduel", fdMLB.Platform)
	assert.Contains(t, fdMLB.Headers, "C/1B")
}

func TestExportCSV_EndToEnd(t *testing.T) {
	svc := newTestService()

	batch := append(
		nflLineup("a", "QB", "RB", "RB", "RB", "WR", "WR", "WR", "WR", "TE"),
		nflLineup("b", "QB", "RB", "RB", "RB", "WR", "WR", "WR", "WR", "TE")...)

	data, err := svc.ExportCSV(roster.SiteDraftKings, roster.SportNFL, batch)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "QB,RB,RB,WR,WR,WR,TE,FLEX,FLEX", lines[0])
	assert.Equal(t, "a-a,a-b,a-c,a-e,a-f,a-g,a-i,a-d,a-h", lines[1])
	assert.Equal(t, "b-a,b-b,b-c,b-e,b-f,b-g,b-i,b-d,b-h", lines[2])
}

func TestExportLineups_UnknownProfileCheckedFirst(t *testing.T) {
	svc := newTestService()

	// The profile lookup fails before any roster data is touched, so even a
	// structurally broken batch reports the configuration error
	_, err := svc.ExportLineups(roster.SiteDraftKings, roster.Sport("nfl2"), nflLineup("a", "QB"))
	require.Error(t, err)
	assert.ErrorIs(t, err, roster.ErrUnknownProfile)
}

func TestExportLineups_RosterSize(t *testing.T) {
	svc := newTestService()

	_, err := svc.ExportLineups(roster.SiteFanDuel, roster.SportNBA, nflLineup("a", "PG", "SG"))
	require.Error(t, err)
	assert.ErrorIs(t, err, roster.ErrRosterSize)
}

func TestBatchExportLineups_SkipsInvalidLineups(t *testing.T) {
	svc := newTestService()

	batch := append(
		nflLineup("good", "QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "DST"),
		nflLineup("bad", "QB", "RB")...)

	result, err := svc.BatchExportLineups(roster.SiteDraftKings, roster.SportNFL, batch)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalLineups)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Lineup bad")
	require.NotNil(t, result.CSVData)
	assert.True(t, strings.HasPrefix(string(result.CSVData), "QB,RB,RB,WR,WR,WR,TE,FLEX,DST\n"))
	assert.True(t, strings.HasPrefix(result.FileName, "lineups_dk_nfl_"))
}

func TestExportToFile(t *testing.T) {
	svc := newTestService()
	dir := t.TempDir()
	path := filepath.Join(dir, "upload.csv")

	batch := nflLineup("a", "QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "DST")

	table, err := svc.ExportToFile(roster.SiteDraftKings, roster.SportNFL, batch, path)
	require.NoError(t, err)
	assert.Len(t, table.Rows, 1)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "QB,RB,RB,WR,WR,WR,TE,FLEX,DST")
}

func TestExportToFile_EmptyPathSkipsWrite(t *testing.T) {
	svc := newTestService()

	batch := nflLineup("a", "QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "DST")

	table, err := svc.ExportToFile(roster.SiteDraftKings, roster.SportNFL, batch, "")
	require.NoError(t, err)
	assert.NotEmpty(t, table.Header)
}

func TestSaveBatchExport(t *testing.T) {
	svc := newTestService()
	dir := t.TempDir()

	batch := nflLineup("a", "QB", "RB", "RB", "WR", "WR", "WR", "TE", "FLEX", "DST")
	result, err := svc.BatchExportLineups(roster.SiteDraftKings, roster.SportNFL, batch)
	require.NoError(t, err)

	path, err := svc.SaveBatchExport(result, dir)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, result.CSVData, data)
}

func TestSaveBatchExport_NoData(t *testing.T) {
	svc := newTestService()

	_, err := svc.SaveBatchExport(&BatchExportResult{}, t.TempDir())
	require.Error(t, err)
}
