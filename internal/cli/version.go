package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgrid/pkg/buildinfo"
)

// versionCommand creates the version command.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return nil
		},
	}
}
