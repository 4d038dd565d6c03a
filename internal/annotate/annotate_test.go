package annotate

import (
	"bytes"
	"testing"

	"github.com/agentic-research/blmcode/internal/grouping"
	"github.com/agentic-research/blmcode/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnotate_MatchedRows(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{
		{"H1", "H2", "H3", "H4", "Name"},
		{"a", "b", "c", "d", "node1"},
		{"e", "f", "g", "h", "node2"},
	}}
	idx := grouping.CodeIndex{"node1": "Alpha", "node2": "Alpha"}

	out, sum, err := Annotate(tbl, idx, nil)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"H1", "H2", "H3", "H4", "Name", "Code"},
		{"a", "b", "c", "d", "node1", "Alpha"},
		{"e", "f", "g", "h", "node2", "Alpha"},
	}, out.Rows)
	assert.Equal(t, Summary{Rows: 2, Matched: 2}, sum)
}

func TestAnnotate_SpliceInvariant(t *testing.T) {
	// trailing columns shift right by exactly one, everything up to the
	// name column stays put
	tbl := &table.Table{Rows: [][]string{
		{"H1", "H2", "H3", "H4", "Name", "L1", "L2"},
		{"a", "b", "c", "d", "node1", "1", "0"},
	}}
	idx := grouping.CodeIndex{"node1": "Alpha"}

	out, _, err := Annotate(tbl, idx, nil)
	require.NoError(t, err)

	for i, row := range tbl.Rows {
		require.Len(t, out.Rows[i], len(row)+1)
		for c := 0; c <= table.NodeNameCol; c++ {
			assert.Equal(t, row[c], out.Rows[i][c])
		}
		for c := table.NodeNameCol + 1; c < len(row); c++ {
			assert.Equal(t, row[c], out.Rows[i][c+1])
		}
	}
	assert.Equal(t, "Alpha", out.Rows[1][table.NodeNameCol+1])
}

func TestAnnotate_UnmatchedRow(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{
		{"H1", "H2", "H3", "H4", "Name"},
		{"a", "b", "c", "d", "nonexistent-node"},
		{"e", "f", "g", "h", "node1"},
	}}
	idx := grouping.CodeIndex{"node1": "Alpha"}

	var diag bytes.Buffer
	out, sum, err := Annotate(tbl, idx, &diag)
	require.NoError(t, err)

	assert.Equal(t, "", out.Rows[1][table.NodeNameCol+1])
	assert.Equal(t, "Alpha", out.Rows[2][table.NodeNameCol+1])
	assert.Equal(t, Summary{Rows: 2, Matched: 1, Unmatched: 1}, sum)
	assert.Contains(t, diag.String(), `"nonexistent-node"`)
}

func TestAnnotate_ExactMatchOnly(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{
		{"H1", "H2", "H3", "H4", "Name"},
		{"a", "b", "c", "d", " node1"},
		{"a", "b", "c", "d", "Node1"},
	}}
	idx := grouping.CodeIndex{"node1": "Alpha"}

	out, sum, err := Annotate(tbl, idx, nil)
	require.NoError(t, err)
	assert.Equal(t, "", out.Rows[1][table.NodeNameCol+1])
	assert.Equal(t, "", out.Rows[2][table.NodeNameCol+1])
	assert.Equal(t, 2, sum.Unmatched)
}

func TestAnnotate_EmptyTable(t *testing.T) {
	_, _, err := Annotate(&table.Table{}, grouping.CodeIndex{}, nil)
	assert.ErrorIs(t, err, table.ErrMalformedTable)
}

func TestAnnotate_ShortRow(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{
		{"H1", "H2", "H3", "H4", "Name"},
		{"a", "b"},
	}}
	_, _, err := Annotate(tbl, grouping.CodeIndex{}, nil)
	require.ErrorIs(t, err, table.ErrMalformedTable)
	assert.Contains(t, err.Error(), "row 2")
}

func TestAnnotate_HeaderOnly(t *testing.T) {
	tbl := &table.Table{Rows: [][]string{{"H1", "H2", "H3", "H4", "Name"}}}
	out, sum, err := Annotate(tbl, grouping.CodeIndex{}, nil)
	require.NoError(t, err)
	assert.Equal(t, Summary{}, sum)
	assert.Equal(t, [][]string{{"H1", "H2", "H3", "H4", "Name", "Code"}}, out.Rows)
}

func TestAnnotate_DoesNotMutateInput(t *testing.T) {
	row := []string{"a", "b", "c", "d", "node1", "tail"}
	tbl := &table.Table{Rows: [][]string{
		{"H1", "H2", "H3", "H4", "Name", "L1"},
		row,
	}}
	_, _, err := Annotate(tbl, grouping.CodeIndex{"node1": "Alpha"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "node1", "tail"}, row)
}
