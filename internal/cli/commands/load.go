package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/itemdb/internal/cli/output"
	"github.com/leapstack-labs/itemdb/internal/itemfile"
	"github.com/leapstack-labs/itemdb/internal/loader"
)

// NewLoadCommand creates the load command.
func NewLoadCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load [file]",
		Short: "Insert every item of an input file",
		Long: `Decode an input file and insert its items into the database in order.

Formats:
  - tuple: one SQL value tuple per line, as in item_template dumps
  - csv:   a header row naming item columns, then one item per row

Decoding fails before anything is written. Inserts are not transactional:
if one fails, the items before it stay and the load is recorded as failed.
Every load is recorded; see 'itemdb runs'.`,
		Example: `  # Load items_to_insert into items.db
  itemdb load

  # Load a CSV export into another database
  itemdb load items.csv --format csv -d world.db`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContextWithoutStore(cmd)

			format, err := itemfile.ParseFormat(cmdCtx.Cfg.InputFormat)
			if err != nil {
				return err
			}

			res, err := loader.Run(cmd.Context(), loader.Options{
				DatabasePath: cmdCtx.Cfg.DatabasePath,
				InputPath:    inputPath(cmdCtx.Cfg, args),
				Format:       format,
				Logger:       cmdCtx.Logger,
			})
			if err != nil {
				if res != nil {
					cmdCtx.Logger.Error("load failed", "run_id", res.RunID, "inserted", res.Inserted)
				}
				return err
			}

			return cmdCtx.Renderer.Record(output.Fields{
				{Name: "run_id", Value: res.RunID},
				{Name: "source", Value: res.Source},
				{Name: "database", Value: cmdCtx.Cfg.DatabasePath},
				{Name: "inserted", Value: res.Inserted},
			})
		},
	}

	cmd.Flags().String("format", string(itemfile.FormatTuple), "Input format (tuple|csv)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return itemfile.Formats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
