package trading

// Route is the optimal single-hop pairing for one commodity: buy at the cheapest
// terminal, sell at the best paying one.
//
// Immutable value object. Profit is not clamped: a negative ProfitPerUnit is still a
// valid route and tells the caller no profitable trade exists right now.
type Route struct {
	buy           BuyOffer
	sell          SellOffer
	profitPerUnit float64 // sell.SellPrice - buy.BuyPrice
	marginPercent float64 // profitPerUnit / buy.BuyPrice * 100
}

func newRoute(buy BuyOffer, sell SellOffer) *Route {
	profit := sell.SellPrice - buy.BuyPrice
	return &Route{
		buy:           buy,
		sell:          sell,
		profitPerUnit: profit,
		marginPercent: profit / buy.BuyPrice * 100,
	}
}

func (r *Route) BuyTerminal() string {
	return r.buy.Terminal
}

func (r *Route) BuyPrice() float64 {
	return r.buy.BuyPrice
}

// BuyStock is the stock on hand at the buy terminal
func (r *Route) BuyStock() int {
	return r.buy.Stock
}

func (r *Route) SellTerminal() string {
	return r.sell.Terminal
}

func (r *Route) SellPrice() float64 {
	return r.sell.SellPrice
}

func (r *Route) ProfitPerUnit() float64 {
	return r.profitPerUnit
}

func (r *Route) MarginPercent() float64 {
	return r.marginPercent
}

// ProfitFor projects the profit of hauling the given number of units
func (r *Route) ProfitFor(units int) float64 {
	return r.profitPerUnit * float64(units)
}

// Profitable reports whether the route makes money per unit
func (r *Route) Profitable() bool {
	return r.profitPerUnit > 0
}

// SameTerminal reports whether the best buy and best sell are at one terminal.
// The optimizer allows this; callers that want distinct terminals must filter.
func (r *Route) SameTerminal() bool {
	return r.buy.Terminal == r.sell.Terminal
}
