package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrescamacho/smuggler-go/internal/application/trading/queries"
)

// newOffersCommand shows where a good can be bought and sold
func newOffersCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "offers <good>",
		Short: "Show buy and sell locations for a good",
		Long: `Show every terminal selling the good (with stock on hand) and every
terminal buying it. Buy offers are listed cheapest first, sell offers best-paying first.

Example:
  smuggler offers "WiDoW"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.loadApp()
			if err != nil {
				return err
			}

			resp, err := send[*queries.GetOffersResponse](cmd.Context(), app.Mediator, &queries.GetOffersQuery{Commodity: args[0]})
			if err != nil {
				return err
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return renderOffers(cmd.OutOrStdout(), resp.Commodity, resp.BuyOffers, resp.SellOffers)
		},
	}
}
