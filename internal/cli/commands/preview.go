package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/itemdb/internal/itemfile"
)

// NewPreviewCommand creates the preview command.
func NewPreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Print the first lines of an input file",
		Long: `Print the first lines of an input file exactly as they are, without parsing.

The file defaults to the configured input (items_to_insert). Trailing
whitespace is trimmed from each line.`,
		Example: `  # Show the first 11 lines of items_to_insert
  itemdb preview

  # Show the first 3 lines of another dump
  itemdb preview dumps/item_template.sql -n 3

  # As JSON
  itemdb preview -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContextWithoutStore(cmd)
			path := inputPath(cmdCtx.Cfg, args)

			lines, err := itemfile.ReadFile(path, cmdCtx.Cfg.PreviewLines)
			if err != nil {
				return err
			}
			cmdCtx.Logger.Debug("read preview lines", "path", path, "lines", len(lines))
			return cmdCtx.Renderer.Lines(lines)
		},
	}

	cmd.Flags().IntP("lines", "n", itemfile.DefaultPreviewLines, "Number of lines to print")

	return cmd
}
