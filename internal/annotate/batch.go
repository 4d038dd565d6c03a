package annotate

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentic-research/blmcode/internal/grouping"
)

// Filename convention for batch runs: survey1-BLM.csv in, survey1-CBLM.csv out.
const (
	DefaultInSuffix  = "-BLM.csv"
	DefaultOutSuffix = "-CBLM.csv"
)

// BatchSummary aggregates one directory run.
type BatchSummary struct {
	Files     int // tables matching the input suffix
	Failed    int // tables aborted as malformed
	Rows      int
	Matched   int
	Unmatched int
}

// OutputName derives the output filename from an input filename by
// swapping suffixes. Reports false when name does not carry inSuffix.
func OutputName(name, inSuffix, outSuffix string) (string, bool) {
	if !strings.HasSuffix(name, inSuffix) {
		return "", false
	}
	return strings.TrimSuffix(name, inSuffix) + outSuffix, true
}

// Batch annotates every table in inDir whose name ends in inSuffix,
// writing results under outDir (created if absent) with derived names.
// The index is shared across files; files are processed sequentially. A
// malformed table aborts that file only — it is reported on diag, the
// siblings still run, and the accumulated failure comes back as the error.
func Batch(inDir, outDir string, idx grouping.CodeIndex, inSuffix, outSuffix string, diag io.Writer) (BatchSummary, error) {
	if diag == nil {
		diag = io.Discard
	}
	var sum BatchSummary

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return sum, fmt.Errorf("read input dir: %w", err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return sum, fmt.Errorf("create output dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		outName, ok := OutputName(e.Name(), inSuffix, outSuffix)
		if !ok {
			continue
		}
		sum.Files++

		s, err := File(filepath.Join(inDir, e.Name()), filepath.Join(outDir, outName), idx, diag)
		if err != nil {
			sum.Failed++
			fmt.Fprintf(diag, "%s: %v\n", e.Name(), err)
			continue
		}
		sum.Rows += s.Rows
		sum.Matched += s.Matched
		sum.Unmatched += s.Unmatched
	}

	if sum.Failed > 0 {
		return sum, fmt.Errorf("%d of %d tables failed", sum.Failed, sum.Files)
	}
	return sum, nil
}
