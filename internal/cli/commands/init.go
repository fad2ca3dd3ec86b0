package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/itemdb/internal/cli/config"
	"github.com/leapstack-labs/itemdb/internal/cli/output"
	"github.com/leapstack-labs/itemdb/internal/item"
)

// configFileName is the file written by init --write-config.
const configFileName = "itemdb.yaml"

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var writeConfig bool
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create or migrate the item database",
		Long: `Create the item database if it does not exist and bring its schema up to date.

This creates:
  - the items table with one column per item field
  - the load_runs table holding the load history

Running init on an existing database is harmless. Use --write-config to also
write an itemdb.yaml holding the current settings.`,
		Example: `  # Create items.db in the current directory
  itemdb init

  # Create a database elsewhere
  itemdb init --database data/world.db

  # Also write itemdb.yaml
  itemdb init --write-config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, writeConfig, force)
		},
	}

	cmd.Flags().BoolVar(&writeConfig, "write-config", false, "Write "+configFileName+" with the current settings")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing "+configFileName)

	return cmd
}

func runInit(cmd *cobra.Command, writeConfig, force bool) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	version, err := cmdCtx.Store.MigrationVersion(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	columns, err := cmdCtx.Store.TableColumns(cmd.Context(), item.TableName)
	if err != nil {
		return err
	}

	if writeConfig {
		if err := writeConfigFile(configFileName, cmdCtx.Cfg, force); err != nil {
			return err
		}
		cmdCtx.Renderer.Messagef("Wrote %s", configFileName)
	}

	return cmdCtx.Renderer.Record(output.Fields{
		{Name: "database", Value: cmdCtx.Cfg.DatabasePath},
		{Name: "schema_version", Value: version},
		{Name: "table", Value: item.TableName},
		{Name: "columns", Value: len(columns)},
	})
}

// writeConfigFile saves the persistent settings of cfg as YAML.
func writeConfigFile(path string, cfg *config.Config, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", path, err)
	}

	data, err := yaml.Marshal(output.Fields{
		{Name: "database", Value: cfg.DatabasePath},
		{Name: "input", Value: cfg.InputPath},
		{Name: "input_format", Value: cfg.InputFormat},
		{Name: "preview_lines", Value: cfg.PreviewLines},
		{Name: "output", Value: cfg.OutputFormat},
	})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
