package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/smuggler-go/internal/application/trading/queries"
)

// newHavensCommand lists terminals considered low-risk for restricted goods
func newHavensCommand(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "havens",
		Short: "List safe-haven terminals",
		Long: `List terminals whose names mark them as low-risk for restricted goods
(GrimHEX, Ruin Station, Pyro and similar), in the order they first appear.

Examples:
  smuggler havens
  smuggler havens --limit 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must not be negative")
			}

			app, err := opts.loadApp()
			if err != nil {
				return err
			}

			resp, err := send[*queries.ListSafeHavensResponse](cmd.Context(), app.Mediator, &queries.ListSafeHavensQuery{Limit: limit})
			if err != nil {
				return err
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp.Havens)
			}
			return renderHavens(cmd.OutOrStdout(), resp.Havens)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum havens to list (default from engine.safe_haven.limit)")

	return cmd
}
