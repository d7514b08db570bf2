package commands

import (
	"fmt"
	"modfinder/lib/render"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(vocabCmd)
}

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Lists the mod sets, the shapes and the primary stats each shape can roll.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, render.Sets(table.StyleRounded))
		fmt.Fprintln(out, render.Vocabulary(table.StyleRounded))
	},
}
