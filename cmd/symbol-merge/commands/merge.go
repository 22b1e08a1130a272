package commands

import (
	"github.com/Debian/apt/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge <dist>...",
		Short: "Merge the symbols of the given distributions into the symbols file",
		Long: `Merge the symbols of the given distributions into the symbols file.

Distributions are processed in order. Symbols missing from the last one are
dropped, so list the newest distribution last.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, _ := cmd.Flags().GetString("catalog")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			_, err := c.app.Merge(cmd.Context(), args, app.MergeOptions{
				Options:     c.options(),
				CatalogPath: catalog,
				DryRun:      dryRun,
				Output:      cmd.OutOrStdout(),
			})
			return err
		},
	}
	cmd.Flags().String("catalog", "", "Symbols file to update instead of the configured pattern")
	cmd.Flags().BoolP("dry-run", "n", false, "Print the merged symbols file instead of writing it")
	return cmd
}
