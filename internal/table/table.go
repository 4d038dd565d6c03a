package table

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// NodeNameCol is the fixed column holding the node name in every BLM row.
// BLM exports never move it; it is positional, not header-derived.
const NodeNameCol = 4

// ErrMalformedTable means a table is missing its header row or a row is too
// short to carry a node name. Fatal for the file it occurs in.
var ErrMalformedTable = errors.New("malformed table")

// Table is one fully loaded tab-separated file. Row 0 is the header.
type Table struct {
	Rows [][]string
}

// Read loads a tab-separated table. Cells are taken verbatim between tabs
// with no quoting interpretation, so a quote character is ordinary data.
// Blank lines are skipped. Rows may be ragged at this stage; width is
// checked where the node name is actually consumed.
func Read(path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}

	var rows [][]string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		rows = append(rows, strings.Split(line, "\t"))
	}
	return &Table{Rows: rows}, nil
}

// Write serializes the table in the same tab-separated, unquoted
// convention it was read in: cells joined by tabs, byte for byte as they
// stand, one row per line. Empty cells stay empty strings.
func Write(path string, t *Table) error {
	var b strings.Builder
	for _, row := range t.Rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write table %s: %w", path, err)
	}
	return nil
}
