package annotate

import (
	"fmt"
	"io"

	"github.com/agentic-research/blmcode/internal/grouping"
	"github.com/agentic-research/blmcode/internal/table"
)

// CodeHeader is the header cell spliced in above the code column.
const CodeHeader = "Code"

// Summary counts the outcome of one table's annotation.
type Summary struct {
	Rows      int // data rows, header excluded
	Matched   int
	Unmatched int
}

// Annotate returns a copy of tbl with one cell spliced into every row
// immediately after the node-name column: the literal "Code" in the
// header, and each row's resolved code below it. A name missing from the
// index gets an empty cell and a line on diag; it never fails the run.
// Matching is exact string equality, no trimming.
func Annotate(tbl *table.Table, idx grouping.CodeIndex, diag io.Writer) (*table.Table, Summary, error) {
	if diag == nil {
		diag = io.Discard
	}
	var sum Summary

	if len(tbl.Rows) == 0 {
		return nil, sum, fmt.Errorf("%w: no header row", table.ErrMalformedTable)
	}

	out := make([][]string, 0, len(tbl.Rows))
	for i, row := range tbl.Rows {
		if len(row) < table.NodeNameCol+1 {
			return nil, sum, fmt.Errorf("%w: row %d has %d columns, need at least %d",
				table.ErrMalformedTable, i+1, len(row), table.NodeNameCol+1)
		}
		if i == 0 {
			out = append(out, spliceCell(row, CodeHeader))
			continue
		}

		sum.Rows++
		name := row[table.NodeNameCol]
		code, ok := idx[name]
		if ok {
			sum.Matched++
		} else {
			sum.Unmatched++
			fmt.Fprintf(diag, "no code for node %q (row %d)\n", name, i+1)
		}
		out = append(out, spliceCell(row, code))
	}
	return &table.Table{Rows: out}, sum, nil
}

// spliceCell copies row with cell inserted after the node-name column:
// result = prefix + cell + suffix.
func spliceCell(row []string, cell string) []string {
	at := table.NodeNameCol + 1
	result := make([]string, 0, len(row)+1)
	result = append(result, row[:at]...)
	result = append(result, cell)
	result = append(result, row[at:]...)
	return result
}

// File annotates a single table file end to end: read, annotate, write.
func File(inPath, outPath string, idx grouping.CodeIndex, diag io.Writer) (Summary, error) {
	tbl, err := table.Read(inPath)
	if err != nil {
		return Summary{}, err
	}
	out, sum, err := Annotate(tbl, idx, diag)
	if err != nil {
		return sum, err
	}
	if err := table.Write(outPath, out); err != nil {
		return sum, err
	}
	return sum, nil
}
