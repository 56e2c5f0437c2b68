package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/smuggler-go/internal/application/trading/queries"
)

// newRouteCommand computes the most profitable single-hop route for a good
func newRouteCommand(opts *rootOptions) *cobra.Command {
	var units int

	cmd := &cobra.Command{
		Use:   "route <good>",
		Short: "Find the most profitable buy/sell pair for a good",
		Long: `Pick the cheapest terminal selling the good and the best-paying terminal
buying it, and report profit per unit, margin and projected profit.

Examples:
  smuggler route "WiDoW"
  smuggler route "WiDoW" --units 250`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if units < 0 {
				return fmt.Errorf("--units must not be negative")
			}

			app, err := opts.loadApp()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("units") {
				units = app.Config.Engine.ProjectionUnits
			}

			resp, err := send[*queries.FindRouteResponse](cmd.Context(), app.Mediator, &queries.FindRouteQuery{
				Commodity: args[0],
				Units:     units,
			})
			if err != nil {
				return err
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderRoute(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().IntVarP(&units, "units", "u", 100, "Quantity for the profit projection (default from engine.projection_units)")

	return cmd
}
