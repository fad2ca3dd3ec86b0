package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/itemdb/internal/item"
	"github.com/leapstack-labs/itemdb/internal/itemfile"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write stored items as tuple lines",
		Long: `Write every stored item as one value tuple per line, ordered by entry.

The result can be loaded again with 'itemdb load'. Without a file the
tuples go to stdout.`,
		Example: `  # Copy items from one database to another
  itemdb export backup_items -d items.db
  itemdb load backup_items -d copy.db`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			items, err := cmdCtx.Store.ListItems(cmd.Context(), 0)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				if err := itemfile.EncodeTuples(cmd.OutOrStdout(), items); err != nil {
					return fmt.Errorf("failed to write items: %w", err)
				}
			} else {
				if err := exportFile(args[0], items); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d items to %s\n", len(items), args[0])
			}
			cmdCtx.Logger.Debug("exported items", "count", len(items))
			return nil
		},
	}
	return cmd
}

// exportFile writes items to path. A failed close is reported like a failed write.
func exportFile(path string, items []*item.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	return writeAndClose(f, items)
}

func writeAndClose(w io.WriteCloser, items []*item.Item) error {
	if err := itemfile.EncodeTuples(w, items); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write items: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	return nil
}
