package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rxdesk/rxdesk/internal/config"
	"github.com/rxdesk/rxdesk/internal/logging"
)

// setupResult carries everything PersistentPostRunE needs to clean up.
type setupResult struct {
	logging logging.Result
	cfg     *config.Config
}

// appConfig is the configuration loaded for the current invocation. Set in
// PersistentPreRunE, read by subcommands through currentConfig.
var appConfig *config.Config //nolint:gochecknoglobals // Set once per invocation before subcommands run

// currentConfig returns the invocation's configuration, falling back to
// defaults when PersistentPreRunE has not run (unit tests).
func currentConfig() *config.Config {
	if appConfig == nil {
		return config.Default()
	}
	return appConfig
}

// setupLogging loads configuration and builds the zerolog logger from it,
// honoring the --debug flag. Config and log-file problems degrade to
// warnings; a CLI that cannot log to a file still works.
func setupLogging(cmd *cobra.Command) *setupResult {
	cfg, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not load config: %v\n", err)
		cfg = config.Default()
	}
	appConfig = cfg

	loggingCfg := cfg.Logging
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = "console"
		loggingCfg.File = ""
	}

	result, err := logging.New(loggingCfg.ToLoggingConfig())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v, logging to console only\n", err)
	}
	logger = logging.ComponentLogger(result.Logger, "cli")

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Debug().Ctx(ctx).Str("command", cmd.Name()).Str("trace_id", traceID).Msg("command started")

	return &setupResult{logging: result, cfg: cfg}
}

// cleanupLogging releases the log file handle, if any.
func cleanupLogging(result *setupResult) error {
	if result == nil {
		return nil
	}
	return result.logging.Close()
}
