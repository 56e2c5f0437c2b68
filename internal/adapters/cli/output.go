package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/andrescamacho/smuggler-go/internal/application/trading/queries"
	"github.com/andrescamacho/smuggler-go/internal/application/trading/types"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderGoods(w io.Writer, goods []types.EligibleGoodDTO) error {
	if len(goods) == 0 {
		_, err := fmt.Fprintln(w, "No restricted goods are currently for sale.")
		return err
	}

	t := newTable(w)
	fmt.Fprintln(t, "Name\tType\tAvg Buy\tAvg Sell\tProfit\tMargin")
	fmt.Fprintln(t, "────\t────\t───────\t────────\t──────\t──────")
	for _, g := range goods {
		fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\t%s\n",
			g.Name,
			g.Kind,
			formatAUEC(g.AvgBuy),
			formatAUEC(g.AvgSell),
			formatAUEC(g.Profit),
			formatPercent(g.MarginPercent),
		)
	}
	return t.Flush()
}

// renderOffers shows buy offers cheapest first and sell offers best-paying first
func renderOffers(w io.Writer, commodity string, buys []types.BuyOfferDTO, sells []types.SellOfferDTO) error {
	fmt.Fprintf(w, "Where to buy %s:\n", commodity)
	if len(buys) == 0 {
		fmt.Fprintln(w, "  No terminal is selling this good with stock on hand.")
	} else {
		t := newTable(w)
		fmt.Fprintln(t, "  Terminal\tBuy Price\tStock (SCU)")
		fmt.Fprintln(t, "  ────────\t─────────\t───────────")
		for _, o := range trading.SortBuyOffers(types.BuyOffersFromDTO(buys)) {
			fmt.Fprintf(t, "  %s\t%s\t%d\n", o.Terminal, formatAUEC(o.BuyPrice), o.Stock)
		}
		if err := t.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nWhere to sell %s:\n", commodity)
	if len(sells) == 0 {
		_, err := fmt.Fprintln(w, "  No terminal is buying this good.")
		return err
	}
	t := newTable(w)
	fmt.Fprintln(t, "  Terminal\tSell Price")
	fmt.Fprintln(t, "  ────────\t──────────")
	for _, o := range trading.SortSellOffers(types.SellOffersFromDTO(sells)) {
		fmt.Fprintf(t, "  %s\t%s\n", o.Terminal, formatAUEC(o.SellPrice))
	}
	return t.Flush()
}

func renderRoute(w io.Writer, resp *queries.FindRouteResponse) error {
	if resp.Route == nil {
		_, err := fmt.Fprintf(w, "No route for %s: %s.\n", resp.Commodity, describeNoRoute(resp.Reason))
		return err
	}

	r := resp.Route
	fmt.Fprintf(w, "Optimal route for %s:\n", resp.Commodity)
	t := newTable(w)
	fmt.Fprintf(t, "  Buy at\t%s\t%s\t(%d SCU in stock)\n", r.BuyTerminal, formatAUEC(r.BuyPrice), r.BuyStock)
	fmt.Fprintf(t, "  Sell at\t%s\t%s\t\n", r.SellTerminal, formatAUEC(r.SellPrice))
	fmt.Fprintf(t, "  Profit/unit\t%s\t%s margin\t\n", formatAUEC(r.ProfitPerUnit), formatPercent(r.MarginPercent))
	if resp.Units > 0 {
		fmt.Fprintf(t, "  Profit x%d\t%s\t\t\n", resp.Units, formatAUEC(resp.ProjectedTotal))
	}
	if err := t.Flush(); err != nil {
		return err
	}

	if r.SameTerminal {
		fmt.Fprintln(w, "  Note: best buy and best sell are at the same terminal.")
	}
	if r.ProfitPerUnit <= 0 {
		fmt.Fprintln(w, "  Warning: this route loses money at current prices.")
	}
	return nil
}

func describeNoRoute(reason types.NoRouteReason) string {
	switch reason {
	case types.NoRouteNoBuyOffers:
		return "no terminal sells it with stock on hand"
	case types.NoRouteNoSellOffers:
		return "no terminal buys it"
	default:
		return "no offers"
	}
}

func renderHavens(w io.Writer, havens []types.SafeHavenDTO) error {
	if len(havens) == 0 {
		_, err := fmt.Fprintln(w, "No safe havens found among known terminals.")
		return err
	}
	t := newTable(w)
	fmt.Fprintln(t, "Terminal\tSystem")
	fmt.Fprintln(t, "────────\t──────")
	for _, h := range havens {
		fmt.Fprintf(t, "%s\t%s\n", h.Terminal, h.System)
	}
	return t.Flush()
}

func renderOverview(w io.Writer, o *queries.GetMarketOverviewResponse, now time.Time) error {
	t := newTable(w)
	fmt.Fprintf(t, "Restricted goods\t%d\n", o.EligibleGoods)
	fmt.Fprintf(t, "Terminals\t%d\n", o.Terminals)
	fmt.Fprintf(t, "Price quotes\t%d\n", o.Quotes)
	fmt.Fprintf(t, "Last update\t%s (%s ago)\n", o.FetchedAt.Local().Format("15:04"), now.Sub(o.FetchedAt).Round(time.Second))
	if err := t.Flush(); err != nil {
		return err
	}

	if !o.Degraded() {
		return nil
	}
	fmt.Fprintln(w, "\nSome data could not be fetched:")
	for _, c := range o.Collections {
		if c.Error != "" {
			fmt.Fprintf(w, "  %s: %s\n", c.Collection, c.Error)
		}
	}
	return nil
}

func renderCollections(w io.Writer, collections []types.CollectionStatusDTO) error {
	t := newTable(w)
	fmt.Fprintln(t, "Collection\tRecords\tSkipped\tDuration\tStatus")
	fmt.Fprintln(t, "──────────\t───────\t───────\t────────\t──────")
	for _, c := range collections {
		status := "ok"
		if c.Error != "" {
			status = "failed: " + c.Error
		}
		fmt.Fprintf(t, "%s\t%d\t%d\t%s\t%s\n", c.Collection, c.Records, c.Skipped, c.Duration.Round(time.Millisecond), status)
	}
	return t.Flush()
}

// formatAUEC formats an amount with thousands separators, keeping cents only when present
func formatAUEC(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole, frac := math.Modf(amount)
	cents := int(math.Round(frac * 100))
	if cents == 100 {
		whole++
		cents = 0
	}

	s := sign + addThousandsSeparator(int64(whole))
	if cents > 0 {
		s += fmt.Sprintf(".%02d", cents)
	}
	return s + " aUEC"
}

// addThousandsSeparator adds commas to a number (e.g., 1234567 -> "1,234,567")
func addThousandsSeparator(n int64) string {
	str := strconv.FormatInt(n, 10)
	if len(str) <= 3 {
		return str
	}

	var result []byte
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
