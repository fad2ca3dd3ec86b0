package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/itemdb/internal/item"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored items",
		Long: `List stored items ordered by entry.

Output adapts to environment:
  - Terminal: table
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, table, markdown, json, yaml`,
		Example: `  # List the first 20 items
  itemdb list

  # List every item as JSON
  itemdb list --limit 0 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, limitFlagUsage("items"))

	return cmd
}

func runList(cmd *cobra.Command, limit int) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	items, err := cmdCtx.Store.ListItems(cmd.Context(), limit)
	if err != nil {
		return err
	}
	total, err := cmdCtx.Store.CountItems(cmd.Context())
	if err != nil {
		return err
	}
	cmdCtx.Logger.Debug("listed items", "shown", len(items), "total", total)

	rows := make([][]any, 0, len(items))
	for _, it := range items {
		rows = append(rows, []any{it.Entry, it.Name, it.Quality, it.ItemLevel, it.RequiredLevel})
	}
	if err := cmdCtx.Renderer.Table([]string{"entry", "name", "quality", "item_level", "required_level"}, rows); err != nil {
		return err
	}
	if int64(len(items)) < total {
		cmdCtx.Renderer.Messagef("Showing %d of %d items in %s", len(items), total, item.TableName)
	}
	return nil
}
