package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newArchsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archs <dist>",
		Short: "Print the architectures of a distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			archs, err := c.app.Archs(cmd.Context(), args[0], c.options())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), archs.String())
			return err
		},
	}
}
