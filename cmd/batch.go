package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/agentic-research/blmcode/internal/annotate"
	"github.com/agentic-research/blmcode/internal/grouping"
	"github.com/spf13/cobra"
)

var (
	inSuffix  string
	outSuffix string
)

var batchCmd = &cobra.Command{
	Use:   "batch [grouping.json] [input-dir] [output-dir]",
	Short: "Annotate every BLM table in a directory",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := grouping.Load(args[0])
		if err != nil {
			return err
		}
		idx := grouping.BuildIndex(g)

		start := time.Now()
		sum, err := annotate.Batch(args[1], args[2], idx, inSuffix, outSuffix, os.Stderr)
		if err != nil {
			return err
		}
		fmt.Printf("Annotated %d tables (%d rows, %d unmatched) in %v.\n",
			sum.Files, sum.Rows, sum.Unmatched, time.Since(start))
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&inSuffix, "suffix", annotate.DefaultInSuffix, "input filename suffix to match")
	batchCmd.Flags().StringVar(&outSuffix, "out-suffix", annotate.DefaultOutSuffix, "suffix replacing --suffix on output names")
	rootCmd.AddCommand(batchCmd)
}
