package commands

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/itemdb/internal/cli/config"
	"github.com/leapstack-labs/itemdb/internal/cli/output"
	"github.com/leapstack-labs/itemdb/internal/store"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Store    *store.SQLiteStore
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with an open, migrated store.
// Returns the context and a cleanup function that must be called (typically via defer).
func NewCommandContext(cmd *cobra.Command) (*CommandContext, func(), error) {
	cmdCtx := NewCommandContextWithoutStore(cmd)

	s, err := store.Open(cmd.Context(), cmdCtx.Cfg.DatabasePath, cmdCtx.Logger)
	if err != nil {
		return nil, nil, err
	}
	if err := s.Migrate(cmd.Context()); err != nil {
		_ = s.Close()
		return nil, nil, err
	}
	cmdCtx.Store = s

	cleanup := func() {
		if err := s.Close(); err != nil {
			cmdCtx.Logger.Warn("failed to close database", "error", err)
		}
	}
	return cmdCtx, cleanup, nil
}

// NewCommandContextWithoutStore creates a CommandContext without a store.
// Useful for commands that don't need database access.
func NewCommandContextWithoutStore(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode, err := output.ParseMode(cfg.OutputFormat)
	if err != nil {
		mode = output.ModeAuto
	}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// getConfig returns the current configuration, or the defaults when none
// has been loaded.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		DatabasePath: config.DefaultDatabase,
		InputPath:    config.DefaultInput,
		InputFormat:  config.DefaultInputFormat,
		PreviewLines: config.DefaultPreviewLines,
		OutputFormat: config.DefaultOutput,
	}
}

// inputPath returns the positional file argument, or the configured input.
func inputPath(cfg *config.Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.InputPath
}

func formatTime(t time.Time) string {
	return t.Local().Format(time.DateTime)
}

// limitFlagUsage is shared by commands that accept --limit.
func limitFlagUsage(what string) string {
	return fmt.Sprintf("Maximum number of %s to show (0 for all)", what)
}
