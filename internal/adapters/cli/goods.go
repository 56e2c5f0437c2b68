package cli

import (
	"github.com/spf13/cobra"

	"github.com/andrescamacho/smuggler-go/internal/application/trading/queries"
)

// newGoodsCommand lists the restricted goods that can be bought somewhere
func newGoodsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "goods",
		Short: "List restricted goods available for purchase",
		Long: `List every illegal commodity with a positive reference buy price,
along with its reference prices, profit and margin.

Example:
  smuggler goods
  smuggler goods -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.loadApp()
			if err != nil {
				return err
			}

			resp, err := send[*queries.ListEligibleGoodsResponse](cmd.Context(), app.Mediator, &queries.ListEligibleGoodsQuery{})
			if err != nil {
				return err
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), resp.Goods)
			}
			return renderGoods(cmd.OutOrStdout(), resp.Goods)
		},
	}
}
