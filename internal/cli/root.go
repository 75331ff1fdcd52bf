package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// logger is the package-level logger for CLI operations, configured in the
// root command's PersistentPreRunE.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the rxdesk CLI. It wires up
// configuration loading, logging, and the tablets subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *setupResult

	cmd := &cobra.Command{
		Use:     "rxdesk",
		Short:   "Pharmacy inventory terminal client",
		Long:    "RxDesk: browse the tablet inventory of a pharmacy service from your terminal",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().Bool("plain", false, "force plain text output")

	cmd.AddCommand(newTabletsCmd())

	return cmd
}

const rootCmdExample = `  # Browse the inventory interactively
  rxdesk tablets list

  # Point at a specific inventory service
  rxdesk tablets list --api-url https://pharmacy.example.com/api/tablets

  # Render records from a local JSON file, no network
  rxdesk tablets list --file tablets.json

  # Script-friendly output
  rxdesk tablets list --output json`
