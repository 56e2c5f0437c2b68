package trading_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
)

func commodity(t *testing.T, name string, illegal bool, buy, sell float64) market.Commodity {
	t.Helper()
	c, err := market.NewCommodity(name, "Drug", illegal, buy, sell)
	require.NoError(t, err)
	return *c
}

func quote(name, terminal string, buy, sell float64, stock int) market.PriceQuote {
	return market.MustNewPriceQuote(name, terminal, buy, sell, stock)
}

func names(commodities []market.Commodity) []string {
	out := make([]string, len(commodities))
	for i, c := range commodities {
		out[i] = c.Name()
	}
	return out
}
