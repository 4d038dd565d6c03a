package cmd

import (
	"fmt"
	"strings"

	"github.com/agentic-research/blmcode/internal/grouping"
	"github.com/spf13/cobra"
)

var showDupes bool

var codesCmd = &cobra.Command{
	Use:   "codes [grouping.json]",
	Short: "Print the code index built from a grouping file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := grouping.Load(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, grp := range g.Groups {
			fmt.Fprintf(out, "%s (%d)\n", grp.Code, len(grp.Names))
			for _, name := range grp.Names {
				fmt.Fprintf(out, "  %s\n", name)
			}
		}
		idx := grouping.BuildIndex(g)
		fmt.Fprintf(out, "%d codes, %d indexed names\n", len(g.Groups), len(idx))

		if showDupes {
			for _, d := range grouping.Dupes(g) {
				// the last code listed is the one the index keeps
				fmt.Fprintf(out, "duplicate: %s -> %s\n", d.Name, strings.Join(d.Codes, ", "))
			}
		}
		return nil
	},
}

func init() {
	codesCmd.Flags().BoolVar(&showDupes, "dupes", false, "list node names filed under more than one code")
	rootCmd.AddCommand(codesCmd)
}
