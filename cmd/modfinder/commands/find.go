package commands

import (
	"fmt"
	"modfinder/lib/render"
	"strings"

	"github.com/spf13/cobra"
)

var findColumns int
var findLayout string

func init() {
	findCmd.Flags().IntVar(&findColumns, "columns", 0, "Number of table columns, defaults to output.columns of the config.")
	findCmd.Flags().StringVar(&findLayout, "layout", "", "Fill the table by \"row\" or by \"column\", defaults to output.layout of the config.")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <set> [shape] [primary]",
	Short: "Lists the characters using a mod set, optionally with a primary stat on a shape.",
	Example: `  modfinder find speed
  modfinder find health arrow speed
  modfinder find critical damage triangle critical chance`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := cfg.Output
		if findColumns > 0 {
			output.Columns = findColumns
		}
		if findLayout != "" {
			output.Layout = findLayout
		}
		opts, err := output.renderOptions()
		if err != nil {
			return err
		}

		service, err := newService()
		if err != nil {
			return err
		}
		result, err := service.Find(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w)
		}
		if result.Empty() {
			fmt.Fprintln(out, msgNoMatch)
			return nil
		}
		fmt.Fprintln(out, describeResult(result))
		fmt.Fprintln(out, render.Table(result.Characters, opts))
		return nil
	},
}
