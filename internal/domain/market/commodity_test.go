package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
)

func TestNewCommodity_Validation(t *testing.T) {
	tests := []struct {
		name      string
		commodity string
		buy, sell float64
		wantErr   error
	}{
		{name: "valid", commodity: "Neon", buy: 100, sell: 150},
		{name: "zero prices allowed", commodity: "Altruciatoxin", buy: 0, sell: 0},
		{name: "empty name", commodity: "", buy: 1, sell: 1, wantErr: market.ErrInvalidCommodity},
		{name: "negative buy", commodity: "Neon", buy: -1, sell: 1, wantErr: market.ErrInvalidPrice},
		{name: "negative sell", commodity: "Neon", buy: 1, sell: -1, wantErr: market.ErrInvalidPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := market.NewCommodity(tt.commodity, "Drug", true, tt.buy, tt.sell)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.commodity, c.Name())
			assert.Equal(t, "Drug", c.Kind())
			assert.True(t, c.IsIllegal())
		})
	}
}

func TestCommodity_ReferenceProfitAndMargin(t *testing.T) {
	c, err := market.NewCommodity("Neon", "Drug", true, 100, 150)
	require.NoError(t, err)

	assert.Equal(t, 50.0, c.ReferenceProfit())
	assert.InDelta(t, 50.0, c.ReferenceMargin(), 1e-9)

	free, err := market.NewCommodity("Placeholder", "Drug", true, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 0.0, free.ReferenceMargin())
}

func TestNewPriceQuote_Validation(t *testing.T) {
	_, err := market.NewPriceQuote("", "T1", 1, 1, 1)
	assert.ErrorIs(t, err, market.ErrInvalidPriceQuote)

	_, err = market.NewPriceQuote("Neon", "", 1, 1, 1)
	assert.ErrorIs(t, err, market.ErrInvalidPriceQuote)

	_, err = market.NewPriceQuote("Neon", "T1", -5, 1, 1)
	assert.ErrorIs(t, err, market.ErrInvalidPrice)

	_, err = market.NewPriceQuote("Neon", "T1", 5, 1, -1)
	assert.ErrorIs(t, err, market.ErrInvalidStock)

	q, err := market.NewPriceQuote("Neon", "T1", 80, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, "Neon", q.CommodityName())
	assert.Equal(t, "T1", q.TerminalName())
	assert.Equal(t, 80.0, q.PriceBuy())
	assert.Equal(t, 0.0, q.PriceSell())
	assert.Equal(t, 10, q.StockBuy())
}

func TestMustNewPriceQuote_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() {
		market.MustNewPriceQuote("Neon", "", 1, 1, 1)
	})
}

func TestCollection_Endpoint(t *testing.T) {
	path, err := market.CollectionPrices.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, "commodities_prices_all", path)

	path, err = market.CollectionStations.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, "space_stations", path)

	_, err = market.Collection("vehicles").Endpoint()
	assert.ErrorIs(t, err, market.ErrUnknownCollection)
}

func TestNewLocations_RequireName(t *testing.T) {
	_, err := market.NewTerminal(1, "", "Stanton")
	assert.ErrorIs(t, err, market.ErrInvalidLocation)

	_, err = market.NewStation(2, "", "Stanton")
	assert.ErrorIs(t, err, market.ErrInvalidLocation)

	_, err = market.NewStarSystem(3, "", "ST")
	assert.ErrorIs(t, err, market.ErrInvalidLocation)

	sys, err := market.NewStarSystem(3, "Pyro", "PY")
	require.NoError(t, err)
	assert.Equal(t, "PY", sys.Code)
}
