package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rxdesk/rxdesk/internal/api"
	"github.com/rxdesk/rxdesk/internal/tablet"
	"github.com/rxdesk/rxdesk/internal/tui"
)

// Output format flag values.
const (
	outputAuto        = "auto"
	outputInteractive = "interactive"
	outputTable       = "table"
	outputJSON        = "json"
)

// newTabletsListCmd creates the "tablets list" command. It loads the full
// tablet collection (from the inventory service or from a local file) and
// renders it interactively, as a plain table, or as JSON.
func newTabletsListCmd() *cobra.Command {
	var (
		apiURL   string
		filePath string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tablets",
		Long:  "List all tablet records from the inventory service, or from a local JSON file",
		Example: `  # Interactive card grid
  rxdesk tablets list

  # Plain table for pipes
  rxdesk tablets list --output table

  # Records from a file, bypassing the network
  rxdesk tablets list --file tablets.json --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTabletsList(cmd, apiURL, filePath, output)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "inventory endpoint (overrides config and RXDESK_API_URL)")
	cmd.Flags().StringVar(&filePath, "file", "", "read the collection from a JSON file instead of the network")
	cmd.Flags().StringVar(&output, "output", outputAuto, "output mode: auto, interactive, table, or json")

	return cmd
}

func runTabletsList(cmd *cobra.Command, apiURL, filePath, output string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := currentConfig()

	if apiURL == "" {
		apiURL = cfg.API.URL
	}

	var provided []tablet.Tablet
	if filePath != "" {
		var err error
		provided, err = readTabletsFile(filePath)
		if err != nil {
			return err
		}
	}

	client := api.NewClient(apiURL, logger)
	if cfg.API.Timeout > 0 {
		client.HTTPClient.Timeout = cfg.API.Timeout.Std()
	}
	notifier := tui.NewLogNotifier(logger)

	mode, err := resolveOutputMode(cmd, output)
	if err != nil {
		return err
	}

	if mode == tui.OutputModeInteractive {
		model := tui.NewListModel(ctx, tui.Options{
			Provided: provided,
			Fetcher:  client,
			Notifier: notifier,
		})
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("running tablets view: %w", err)
		}
		return nil
	}

	// Non-interactive: resolve the collection once, then render.
	tablets, err := loadCollection(ctx, provided, client)
	if err != nil {
		notifier.Notify(tui.Notification{
			Severity: tui.SeverityDestructive,
			Title:    "Failed to load tablets",
			Message:  err.Error(),
		})
		return err
	}

	switch {
	case output == outputJSON:
		return renderTabletsJSON(cmd.OutOrStdout(), tablets)
	case mode == tui.OutputModeStyled:
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTabletGrid(tablets, tui.TerminalWidth()))
		return nil
	default:
		return renderTabletsTable(cmd.OutOrStdout(), tablets)
	}
}

// resolveOutputMode maps the --output flag onto an output mode, consulting
// terminal detection for "auto".
func resolveOutputMode(cmd *cobra.Command, output string) (tui.OutputMode, error) {
	switch output {
	case outputInteractive:
		return tui.OutputModeInteractive, nil
	case outputTable, outputJSON:
		return tui.OutputModePlain, nil
	case outputAuto:
		plain, _ := cmd.Flags().GetBool("plain")
		noColor, _ := cmd.Flags().GetBool("no-color")
		return tui.DetectOutputMode(plain, noColor), nil
	default:
		return tui.OutputModePlain, fmt.Errorf("unsupported output mode: %s", output)
	}
}

// loadCollection resolves the data source once per invocation: a provided
// non-empty collection is used directly and the network is never touched.
func loadCollection(ctx context.Context, provided []tablet.Tablet, fetcher tui.Fetcher) ([]tablet.Tablet, error) {
	if len(provided) > 0 {
		return provided, nil
	}
	return fetcher.ListTablets(ctx)
}

// readTabletsFile reads a tablet collection from a local JSON file. The file
// uses the same wire shape as the service: a bare array or a records
// envelope.
func readTabletsFile(path string) ([]tablet.Tablet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tablets file %s: %w", path, err)
	}
	tablets, err := api.DecodeCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing tablets file %s: %w", path, err)
	}
	return tablets, nil
}
