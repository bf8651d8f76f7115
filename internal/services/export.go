package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/dfs-uploader/internal/roster"
	"github.com/jstittsworth/dfs-uploader/pkg/utils"
)

// ExportService handles lineup normalization and upload exports for the
// supported platforms
type ExportService struct {
	log *logrus.Logger
}

func NewExportService(log *logrus.Logger) *ExportService {
	return &ExportService{log: log}
}

// ExportFormat represents a supported export format
type ExportFormat struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Platform    string   `json:"platform"`
	Sport       string   `json:"sport"`
	Description string   `json:"description"`
	Headers     []string `json:"headers"`
}

var platformNames = map[roster.Site]string{
	roster.SiteDraftKings: "DraftKings",
	roster.SiteFanDuel:    "FanDuel",
}

var platformShort = map[roster.Site]string{
	roster.SiteDraftKings: "dk",
	roster.SiteFanDuel:    "fd",
}

// GetAvailableFormats returns all supported export formats, one per
// registered site/sport profile
func (s *ExportService) GetAvailableFormats() []ExportFormat {
	profiles := roster.AllProfiles()
	formats := make([]ExportFormat, 0, len(profiles))
	for _, p := range profiles {
		name := fmt.Sprintf("%s %s", platformNames[p.Site], strings.ToUpper(string(p.Sport)))
		formats = append(formats, ExportFormat{
			ID:          fmt.Sprintf("%s_%s", platformShort[p.Site], p.Sport),
			Name:        name,
			Platform:    string(p.Site),
			Sport:       string(p.Sport),
			Description: fmt.Sprintf("CSV format for %s contests", name),
			Headers:     p.Template,
		})
	}
	return formats
}

// NormalizeLineups runs the full position-normalization pipeline for a
// site/sport over a multi-lineup batch. The profile lookup happens before
// any roster data is touched.
func (s *ExportService) NormalizeLineups(site roster.Site, sport roster.Sport, entries []roster.Entry) ([]roster.Entry, error) {
	profile, err := roster.ProfileFor(site, sport)
	if err != nil {
		return nil, err
	}
	return profile.NormalizeBatch(entries)
}

// ExportLineups normalizes a batch and pivots it into a submission table.
func (s *ExportService) ExportLineups(site roster.Site, sport roster.Sport, entries []roster.Entry) (roster.Table, error) {
	normalized, err := s.NormalizeLineups(site, sport, entries)
	if err != nil {
		return roster.Table{}, err
	}

	table := roster.Serialize(normalized)
	if !table.IsAligned() {
		// Documented hazard, not an error: mixed slot counts misalign columns.
		s.log.WithFields(logrus.Fields{
			"site":    site,
			"sport":   sport,
			"columns": len(table.Header),
		}).Warn("Lineups produced inconsistent column sets, CSV may be misaligned")
	}
	return table, nil
}

// ExportCSV exports a batch as CSV bytes ready for upload.
func (s *ExportService) ExportCSV(site roster.Site, sport roster.Sport, entries []roster.Entry) ([]byte, error) {
	table, err := s.ExportLineups(site, sport, entries)
	if err != nil {
		return nil, err
	}
	return table.CSV()
}

// ExportToFile persists the submission CSV at the caller-supplied path. An
// empty path writes nothing and returns the generated in-memory table only.
func (s *ExportService) ExportToFile(site roster.Site, sport roster.Sport, entries []roster.Entry, path string) (roster.Table, error) {
	table, err := s.ExportLineups(site, sport, entries)
	if err != nil {
		return roster.Table{}, err
	}
	if path == "" {
		return table, nil
	}
	if err := table.WriteCSV(path); err != nil {
		return roster.Table{}, fmt.Errorf("failed to write CSV: %w", err)
	}
	s.log.WithField("path", path).Info("Wrote submission CSV")
	return table, nil
}

// ExportFileName generates a unique file name for a batch export.
func (s *ExportService) ExportFileName(site roster.Site, sport roster.Sport) string {
	return fmt.Sprintf("lineups_%s_%s_%s.csv", platformShort[site], sport, uuid.NewString()[:8])
}

// BatchExportResult represents the result of a batch export
type BatchExportResult struct {
	Success      int      `json:"success"`
	Failed       int      `json:"failed"`
	Errors       []string `json:"errors,omitempty"`
	CSVData      []byte   `json:"-"`
	FileName     string   `json:"file_name"`
	TotalLineups int      `json:"total_lineups"`
}

// BatchExportLineups exports multiple lineups, skipping the ones that fail
// the roster-size precondition and reporting them per lineup.
func (s *ExportService) BatchExportLineups(site roster.Site, sport roster.Sport, entries []roster.Entry) (*BatchExportResult, error) {
	profile, err := roster.ProfileFor(site, sport)
	if err != nil {
		return nil, err
	}

	lineups := roster.SplitLineups(entries)
	result := &BatchExportResult{
		TotalLineups: len(lineups),
		Errors:       make([]string, 0),
	}

	normalized := make([]roster.Entry, 0, len(entries))
	for _, lineup := range lineups {
		out, err := profile.Normalize(lineup)
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Lineup %s: %s", lineup[0].LineupID, err.Error()))
			continue
		}
		normalized = append(normalized, out...)
		result.Success++
	}

	if result.Success > 0 {
		table := roster.Serialize(normalized)
		csvData, err := table.CSV()
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Export error: %s", err.Error()))
		} else {
			result.CSVData = csvData
			result.FileName = s.ExportFileName(site, sport)
		}
	}

	return result, nil
}

// SaveBatchExport writes a batch result's CSV into the export directory and
// returns the full path.
func (s *ExportService) SaveBatchExport(result *BatchExportResult, dir string) (string, error) {
	if result.CSVData == nil {
		return "", fmt.Errorf("%w: batch produced no CSV data", utils.ErrExportFailed)
	}
	path := filepath.Join(dir, result.FileName)
	if err := os.WriteFile(path, result.CSVData, 0o644); err != nil {
		return "", fmt.Errorf("failed to write CSV: %w", err)
	}
	return path, nil
}
