package trading

import "fmt"

// RouteOptimizer picks the optimal single-hop route from a commodity's offers.
//
// Stateless domain service: the best buy and the best sell are chosen independently,
// so nothing forces them onto different terminals.
type RouteOptimizer struct{}

// NewRouteOptimizer creates a new optimizer
func NewRouteOptimizer() *RouteOptimizer {
	return &RouteOptimizer{}
}

// Optimize returns the route buying at the lowest buy price and selling at the highest
// sell price. Ties go to the offer that appears first.
//
// Both lists must be non-empty; callers are expected to check before calling and
// ErrDegenerateRoute is returned if they did not.
func (o *RouteOptimizer) Optimize(buys []BuyOffer, sells []SellOffer) (*Route, error) {
	if len(buys) == 0 || len(sells) == 0 {
		return nil, fmt.Errorf("%w: %d buy, %d sell", ErrDegenerateRoute, len(buys), len(sells))
	}

	best := BestBuy(buys)
	if best.BuyPrice <= 0 {
		return nil, fmt.Errorf("%w: %s quotes %.2f", ErrInvalidBuyPrice, best.Terminal, best.BuyPrice)
	}

	return newRoute(best, BestSell(sells)), nil
}

// BestBuy returns the first offer with the minimum buy price. buys must be non-empty.
func BestBuy(buys []BuyOffer) BuyOffer {
	best := buys[0]
	for _, offer := range buys[1:] {
		if offer.BuyPrice < best.BuyPrice {
			best = offer
		}
	}
	return best
}

// BestSell returns the first offer with the maximum sell price. sells must be non-empty.
func BestSell(sells []SellOffer) SellOffer {
	best := sells[0]
	for _, offer := range sells[1:] {
		if offer.SellPrice > best.SellPrice {
			best = offer
		}
	}
	return best
}
