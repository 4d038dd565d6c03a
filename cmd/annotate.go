package cmd

import (
	"fmt"
	"os"

	"github.com/agentic-research/blmcode/internal/annotate"
	"github.com/agentic-research/blmcode/internal/grouping"
	"github.com/spf13/cobra"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [grouping.json] [input.csv] [output.csv]",
	Short: "Annotate one BLM table with codes from a grouping file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := grouping.Load(args[0])
		if err != nil {
			return err
		}
		idx := grouping.BuildIndex(g)

		sum, err := annotate.File(args[1], args[2], idx, os.Stderr)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "%s: %d rows, %d matched, %d unmatched\n",
			args[2], sum.Rows, sum.Matched, sum.Unmatched)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}
