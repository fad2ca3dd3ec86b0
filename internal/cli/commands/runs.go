package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/itemdb/internal/store"
)

// NewRunsCommand creates the runs command.
func NewRunsCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Show the load history",
		Long: `Show recorded loads, most recent first, with their status and the number
of items each one inserted.`,
		Example: `  # Show the last 10 loads
  itemdb runs

  # Show all loads as YAML
  itemdb runs --limit 0 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			runs, err := cmdCtx.Store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return cmdCtx.Renderer.Table(
				[]string{"id", "source", "status", "items_loaded", "started_at", "completed_at", "error"},
				runRows(runs),
			)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, limitFlagUsage("runs"))

	return cmd
}

func runRows(runs []*store.Run) [][]any {
	rows := make([][]any, 0, len(runs))
	for _, r := range runs {
		var completed any
		if r.CompletedAt != nil {
			completed = formatTime(*r.CompletedAt)
		}
		var errMsg any
		if r.Error != "" {
			errMsg = r.Error
		}
		rows = append(rows, []any{r.ID, r.Source, string(r.Status), r.ItemsLoaded, formatTime(r.StartedAt), completed, errMsg})
	}
	return rows
}
