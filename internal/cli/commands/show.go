package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/itemdb/internal/cli/output"
	"github.com/leapstack-labs/itemdb/internal/item"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <entry>",
		Short: "Show every column of one item",
		Example: `  # Show the Hearthstone
  itemdb show 6948

  # As YAML
  itemdb show 6948 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry %q: must be an integer", args[0])
			}

			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			it, err := cmdCtx.Store.GetItem(cmd.Context(), entry)
			if err != nil {
				return err
			}
			return cmdCtx.Renderer.Record(itemFields(it))
		},
	}
	return cmd
}

// itemFields lists an item's values in column order.
func itemFields(it *item.Item) output.Fields {
	names := item.ColumnNames()
	values := it.Values()
	fields := make(output.Fields, len(names))
	for i, name := range names {
		fields[i] = output.Field{Name: name, Value: values[i]}
	}
	return fields
}
