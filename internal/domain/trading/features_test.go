package trading_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeRouteEngineScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type routeEngineContext struct {
	commodities []market.Commodity
	eligible    []market.Commodity
	quotes      []market.PriceQuote
	buys        []trading.BuyOffer
	sells       []trading.SellOffer
	route       *trading.Route
	noRoute     bool
	classifier  *trading.SafeHavenClassifier
}

func InitializeRouteEngineScenario(sc *godog.ScenarioContext) {
	c := &routeEngineContext{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*c = routeEngineContext{}
		return ctx, nil
	})

	// Given steps
	sc.Step(`^the commodities:$`, c.theCommodities)
	sc.Step(`^the price quotes:$`, c.thePriceQuotes)
	sc.Step(`^the safe haven fragments "([^"]*)"$`, c.theSafeHavenFragments)

	// When steps
	sc.Step(`^I list the eligible goods$`, c.iListTheEligibleGoods)
	sc.Step(`^I extract offers for "([^"]*)"$`, c.iExtractOffersFor)
	sc.Step(`^I extract offers for "([^"]*)" using exact matching$`, c.iExtractOffersUsingExactMatching)
	sc.Step(`^I compute the optimal route$`, c.iComputeTheOptimalRoute)

	// Then steps
	sc.Step(`^the eligible goods should be "([^"]*)"$`, c.theEligibleGoodsShouldBe)
	sc.Step(`^the buy offers should be:$`, c.theBuyOffersShouldBe)
	sc.Step(`^the sell offers should be:$`, c.theSellOffersShouldBe)
	sc.Step(`^there should be (\d+) buy offers and (\d+) sell offers$`, c.thereShouldBeOffers)
	sc.Step(`^the route should buy at "([^"]*)" for (\d+(?:\.\d+)?) and sell at "([^"]*)" for (\d+(?:\.\d+)?)$`, c.theRouteShouldBuyAndSell)
	sc.Step(`^the profit per unit should be (-?\d+(?:\.\d+)?) with a margin of (-?\d+(?:\.\d+)?) percent$`, c.theProfitAndMarginShouldBe)
	sc.Step(`^the route should use the same terminal for buying and selling$`, c.theRouteShouldUseTheSameTerminal)
	sc.Step(`^no route should be available$`, c.noRouteShouldBeAvailable)
	sc.Step(`^terminal "([^"]*)" should be a safe haven$`, c.terminalShouldBeASafeHaven)
	sc.Step(`^terminal "([^"]*)" should not be a safe haven$`, c.terminalShouldNotBeASafeHaven)
}

// tableRecords maps every data row to its header names
func tableRecords(table *godog.Table) []map[string]string {
	if len(table.Rows) == 0 {
		return nil
	}
	header := table.Rows[0].Cells
	records := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		record := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			record[header[i].Value] = cell.Value
		}
		records = append(records, record)
	}
	return records
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func (c *routeEngineContext) theCommodities(table *godog.Table) error {
	for _, r := range tableRecords(table) {
		buy, err := parseFloat(r["price_buy"])
		if err != nil {
			return err
		}
		sell, err := parseFloat(r["price_sell"])
		if err != nil {
			return err
		}
		commodity, err := market.NewCommodity(r["name"], "Drug", r["illegal"] == "1", buy, sell)
		if err != nil {
			return err
		}
		c.commodities = append(c.commodities, *commodity)
	}
	return nil
}

func (c *routeEngineContext) thePriceQuotes(table *godog.Table) error {
	for _, r := range tableRecords(table) {
		buy, err := parseFloat(r["price_buy"])
		if err != nil {
			return err
		}
		sell, err := parseFloat(r["price_sell"])
		if err != nil {
			return err
		}
		stock, err := strconv.Atoi(r["scu_buy"])
		if err != nil {
			return err
		}
		q, err := market.NewPriceQuote(r["commodity"], r["terminal"], buy, sell, stock)
		if err != nil {
			return err
		}
		c.quotes = append(c.quotes, *q)
	}
	return nil
}

func (c *routeEngineContext) theSafeHavenFragments(fragments string) error {
	c.classifier = trading.NewSafeHavenClassifier(strings.Split(fragments, ","), trading.DefaultSafeHavenLimit)
	return nil
}

func (c *routeEngineContext) iListTheEligibleGoods() error {
	c.eligible = trading.EligibleGoods(c.commodities)
	return nil
}

func (c *routeEngineContext) iExtractOffersFor(target string) error {
	c.buys, c.sells = trading.NewOfferExtractor(trading.SubstringMatcher{}).Extract(target, c.quotes)
	return nil
}

func (c *routeEngineContext) iExtractOffersUsingExactMatching(target string) error {
	c.buys, c.sells = trading.NewOfferExtractor(trading.ExactMatcher{}).Extract(target, c.quotes)
	return nil
}

// iComputeTheOptimalRoute checks the lists first, the way callers of the optimizer must
func (c *routeEngineContext) iComputeTheOptimalRoute() error {
	if len(c.buys) == 0 || len(c.sells) == 0 {
		c.noRoute = true
		return nil
	}
	route, err := trading.NewRouteOptimizer().Optimize(c.buys, c.sells)
	if err != nil {
		return err
	}
	c.route = route
	return nil
}

func (c *routeEngineContext) theEligibleGoodsShouldBe(expected string) error {
	got := make([]string, len(c.eligible))
	for i, g := range c.eligible {
		got[i] = g.Name()
	}
	if strings.Join(got, ",") != expected {
		return fmt.Errorf("expected eligible goods %q, got %q", expected, strings.Join(got, ","))
	}
	return nil
}

func (c *routeEngineContext) theBuyOffersShouldBe(table *godog.Table) error {
	records := tableRecords(table)
	if len(records) != len(c.buys) {
		return fmt.Errorf("expected %d buy offers, got %d", len(records), len(c.buys))
	}
	for i, r := range records {
		price, err := parseFloat(r["price"])
		if err != nil {
			return err
		}
		stock, err := strconv.Atoi(r["stock"])
		if err != nil {
			return err
		}
		want := trading.BuyOffer{Terminal: r["terminal"], BuyPrice: price, Stock: stock}
		if c.buys[i] != want {
			return fmt.Errorf("buy offer %d: expected %+v, got %+v", i, want, c.buys[i])
		}
	}
	return nil
}

func (c *routeEngineContext) theSellOffersShouldBe(table *godog.Table) error {
	records := tableRecords(table)
	if len(records) != len(c.sells) {
		return fmt.Errorf("expected %d sell offers, got %d", len(records), len(c.sells))
	}
	for i, r := range records {
		price, err := parseFloat(r["price"])
		if err != nil {
			return err
		}
		want := trading.SellOffer{Terminal: r["terminal"], SellPrice: price}
		if c.sells[i] != want {
			return fmt.Errorf("sell offer %d: expected %+v, got %+v", i, want, c.sells[i])
		}
	}
	return nil
}

func (c *routeEngineContext) thereShouldBeOffers(buys, sells int) error {
	if len(c.buys) != buys || len(c.sells) != sells {
		return fmt.Errorf("expected %d buy and %d sell offers, got %d and %d", buys, sells, len(c.buys), len(c.sells))
	}
	return nil
}

func (c *routeEngineContext) theRouteShouldBuyAndSell(buyTerminal string, buyPrice float64, sellTerminal string, sellPrice float64) error {
	if c.route == nil {
		return fmt.Errorf("expected a route, got none")
	}
	if c.route.BuyTerminal() != buyTerminal || c.route.BuyPrice() != buyPrice {
		return fmt.Errorf("expected buy at %s for %.2f, got %s for %.2f", buyTerminal, buyPrice, c.route.BuyTerminal(), c.route.BuyPrice())
	}
	if c.route.SellTerminal() != sellTerminal || c.route.SellPrice() != sellPrice {
		return fmt.Errorf("expected sell at %s for %.2f, got %s for %.2f", sellTerminal, sellPrice, c.route.SellTerminal(), c.route.SellPrice())
	}
	return nil
}

func (c *routeEngineContext) theProfitAndMarginShouldBe(profit, margin float64) error {
	if c.route == nil {
		return fmt.Errorf("expected a route, got none")
	}
	if c.route.ProfitPerUnit() != profit {
		return fmt.Errorf("expected profit %.2f, got %.2f", profit, c.route.ProfitPerUnit())
	}
	if diff := c.route.MarginPercent() - margin; diff > 1e-9 || diff < -1e-9 {
		return fmt.Errorf("expected margin %.2f%%, got %.2f%%", margin, c.route.MarginPercent())
	}
	return nil
}

func (c *routeEngineContext) theRouteShouldUseTheSameTerminal() error {
	if c.route == nil || !c.route.SameTerminal() {
		return fmt.Errorf("expected a same-terminal route")
	}
	return nil
}

func (c *routeEngineContext) noRouteShouldBeAvailable() error {
	if !c.noRoute || c.route != nil {
		return fmt.Errorf("expected no route to be available")
	}
	return nil
}

func (c *routeEngineContext) terminalShouldBeASafeHaven(terminal string) error {
	if !c.classifier.IsSafeHaven(terminal) {
		return fmt.Errorf("expected %q to be a safe haven", terminal)
	}
	return nil
}

func (c *routeEngineContext) terminalShouldNotBeASafeHaven(terminal string) error {
	if c.classifier.IsSafeHaven(terminal) {
		return fmt.Errorf("expected %q not to be a safe haven", terminal)
	}
	return nil
}
