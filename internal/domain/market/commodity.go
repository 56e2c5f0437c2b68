package market

import "fmt"

// Commodity is a class of tradeable good with reference (average) prices.
// Immutable value object; per-terminal prices live in PriceQuote.
type Commodity struct {
	name      string
	kind      string
	isIllegal bool
	priceBuy  float64
	priceSell float64
}

// NewCommodity creates a Commodity with validation
func NewCommodity(name, kind string, isIllegal bool, priceBuy, priceSell float64) (*Commodity, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidCommodity)
	}
	if priceBuy < 0 || priceSell < 0 {
		return nil, fmt.Errorf("%w: %s has negative reference price", ErrInvalidPrice, name)
	}

	return &Commodity{
		name:      name,
		kind:      kind,
		isIllegal: isIllegal,
		priceBuy:  priceBuy,
		priceSell: priceSell,
	}, nil
}

func (c Commodity) Name() string {
	return c.name
}

func (c Commodity) Kind() string {
	return c.kind
}

func (c Commodity) IsIllegal() bool {
	return c.isIllegal
}

// PriceBuy is the average price terminals charge for the good
func (c Commodity) PriceBuy() float64 {
	return c.priceBuy
}

// PriceSell is the average price terminals pay for the good
func (c Commodity) PriceSell() float64 {
	return c.priceSell
}

// ReferenceProfit is the spread between the average sell and buy prices
func (c Commodity) ReferenceProfit() float64 {
	return c.priceSell - c.priceBuy
}

// ReferenceMargin returns the reference profit as a percentage of the buy price.
// Returns 0 when the buy price is zero.
func (c Commodity) ReferenceMargin() float64 {
	if c.priceBuy == 0 {
		return 0
	}
	return c.ReferenceProfit() / c.priceBuy * 100
}
