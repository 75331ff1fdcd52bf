package cli

import "github.com/spf13/cobra"

// newTabletsCmd groups the tablet record subcommands.
func newTabletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tablets",
		Short: "Work with tablet records",
		Long:  "List and inspect the medicine records held by the inventory service",
	}
	cmd.AddCommand(newTabletsListCmd())
	return cmd
}
