package market

import "fmt"

// PriceQuote is one terminal's current offer for one commodity.
// Quotes reference their commodity by name only.
type PriceQuote struct {
	commodityName string
	terminalName  string
	priceBuy      float64 // what the terminal charges us
	priceSell     float64 // what the terminal pays us
	stockBuy      int     // SCU available to buy
}

// NewPriceQuote creates a PriceQuote with validation
func NewPriceQuote(commodityName, terminalName string, priceBuy, priceSell float64, stockBuy int) (*PriceQuote, error) {
	if commodityName == "" {
		return nil, fmt.Errorf("%w: commodity name cannot be empty", ErrInvalidPriceQuote)
	}
	if terminalName == "" {
		return nil, fmt.Errorf("%w: terminal name cannot be empty", ErrInvalidPriceQuote)
	}
	if priceBuy < 0 || priceSell < 0 {
		return nil, fmt.Errorf("%w: %s at %s", ErrInvalidPrice, commodityName, terminalName)
	}
	if stockBuy < 0 {
		return nil, fmt.Errorf("%w: %s at %s", ErrInvalidStock, commodityName, terminalName)
	}

	return &PriceQuote{
		commodityName: commodityName,
		terminalName:  terminalName,
		priceBuy:      priceBuy,
		priceSell:     priceSell,
		stockBuy:      stockBuy,
	}, nil
}

// MustNewPriceQuote is NewPriceQuote for fixtures; it panics on invalid input
func MustNewPriceQuote(commodityName, terminalName string, priceBuy, priceSell float64, stockBuy int) PriceQuote {
	q, err := NewPriceQuote(commodityName, terminalName, priceBuy, priceSell, stockBuy)
	if err != nil {
		panic(err)
	}
	return *q
}

func (q PriceQuote) CommodityName() string {
	return q.commodityName
}

func (q PriceQuote) TerminalName() string {
	return q.terminalName
}

func (q PriceQuote) PriceBuy() float64 {
	return q.priceBuy
}

func (q PriceQuote) PriceSell() float64 {
	return q.priceSell
}

func (q PriceQuote) StockBuy() int {
	return q.stockBuy
}
