package roster

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

// Table is the wide submission artifact: one header row of slot labels and
// one row of player ids per lineup. Duplicate headers are intentional — the
// upload templates expect, e.g., three consecutive OF columns — so the
// header is an ordered slice, never a map.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

// Serialize pivots a normalized batch into a submission table. Entries are
// grouped by lineup id in first-appearance order; each group's slot labels
// and player ids are emitted verbatim in their (already canonical) order.
// The column layout is taken from the first lineup; a later lineup with more
// slots appends its extra trailing labels to the header. Lineups with
// inconsistent slot sets are aligned positionally, not validated — callers
// that mix templates get misaligned columns.
func Serialize(entries []Entry) Table {
	var table Table
	for i, lineup := range SplitLineups(entries) {
		if i == 0 {
			table.Header = Positions(lineup)
		} else if extra := len(lineup) - len(table.Header); extra > 0 {
			table.Header = append(table.Header, Positions(lineup[len(lineup)-extra:])...)
		}

		row := make([]string, len(lineup))
		for j, e := range lineup {
			row[j] = e.PlayerID
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// IsAligned reports whether every row has exactly one cell per header
// column. A false result means the batch mixed lineups with different slot
// counts and the CSV will be positionally misaligned.
func (t Table) IsAligned() bool {
	for _, row := range t.Rows {
		if len(row) != len(t.Header) {
			return false
		}
	}
	return true
}

// CSV renders the table as an upload-ready CSV document: header row first,
// comma-separated, no index column. Short rows are padded with empty cells
// so the document stays rectangular.
func (t Table) CSV() ([]byte, error) {
	if len(t.Header) == 0 && len(t.Rows) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(t.Header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range t.Rows {
		if len(row) < len(t.Header) {
			padded := make([]string, len(t.Header))
			copy(padded, row)
			row = padded
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteCSV persists the table to a caller-supplied path.
func (t Table) WriteCSV(path string) error {
	data, err := t.CSV()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
