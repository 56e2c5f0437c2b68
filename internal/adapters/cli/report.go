package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/smuggler-go/internal/application/mediator"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/queries"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/types"
)

// report is everything the dashboard shows, computed from one snapshot
type report struct {
	Overview *queries.GetMarketOverviewResponse `json:"overview"`
	Goods    []types.EligibleGoodDTO            `json:"goods"`
	Routes   []*queries.FindRouteResponse       `json:"routes"`
	Havens   []types.SafeHavenDTO               `json:"safe_havens"`
}

// newReportCommand prints the full market report
func newReportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the full market report",
		Long: `Print market counts, the restricted goods overview, the best route for
every restricted good, and the safe-haven list.

Example:
  smuggler report`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := opts.loadApp()
			if err != nil {
				return err
			}

			r, err := buildReport(cmd.Context(), app.Mediator, app.Config.Engine.ProjectionUnits)
			if err != nil {
				return err
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), r)
			}
			return renderReport(cmd.OutOrStdout(), r, time.Now())
		},
	}
}

func buildReport(ctx context.Context, m mediator.Mediator, units int) (*report, error) {
	overview, err := send[*queries.GetMarketOverviewResponse](ctx, m, &queries.GetMarketOverviewQuery{})
	if err != nil {
		return nil, err
	}

	goods, err := send[*queries.ListEligibleGoodsResponse](ctx, m, &queries.ListEligibleGoodsQuery{})
	if err != nil {
		return nil, err
	}

	routes := make([]*queries.FindRouteResponse, 0, len(goods.Goods))
	for _, name := range goods.Names() {
		route, err := send[*queries.FindRouteResponse](ctx, m, &queries.FindRouteQuery{Commodity: name, Units: units})
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	havens, err := send[*queries.ListSafeHavensResponse](ctx, m, &queries.ListSafeHavensQuery{})
	if err != nil {
		return nil, err
	}

	return &report{
		Overview: overview,
		Goods:    goods.Goods,
		Routes:   routes,
		Havens:   havens.Havens,
	}, nil
}

func renderReport(w io.Writer, r *report, now time.Time) error {
	fmt.Fprintln(w, "Market")
	fmt.Fprintln(w, "══════")
	if err := renderOverview(w, r.Overview, now); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nRestricted goods")
	fmt.Fprintln(w, "════════════════")
	if err := renderGoods(w, r.Goods); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nBest routes")
	fmt.Fprintln(w, "═══════════")
	if err := renderRouteSummary(w, r.Routes); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nSafe havens")
	fmt.Fprintln(w, "═══════════")
	return renderHavens(w, r.Havens)
}

func renderRouteSummary(w io.Writer, routes []*queries.FindRouteResponse) error {
	if len(routes) == 0 {
		_, err := fmt.Fprintln(w, "No routes.")
		return err
	}

	t := newTable(w)
	fmt.Fprintln(t, "Good\tBuy at\tSell at\tProfit/unit\tMargin")
	fmt.Fprintln(t, "────\t──────\t───────\t───────────\t──────")
	for _, r := range routes {
		if r.Route == nil {
			fmt.Fprintf(t, "%s\t-\t-\t-\t%s\n", r.Commodity, describeNoRoute(r.Reason))
			continue
		}
		fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\n",
			r.Commodity,
			r.Route.BuyTerminal,
			r.Route.SellTerminal,
			formatAUEC(r.Route.ProfitPerUnit),
			formatPercent(r.Route.MarginPercent),
		)
	}
	return t.Flush()
}
