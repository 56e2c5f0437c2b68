package trading

import "github.com/andrescamacho/smuggler-go/internal/domain/market"

// IsEligible reports whether a commodity belongs to the restricted set the tool trades:
// flagged illegal and carrying a positive reference buy price.
// The price check drops placeholder entries the API lists at zero.
func IsEligible(c market.Commodity) bool {
	return c.IsIllegal() && c.PriceBuy() > 0
}

// EligibleGoods filters commodities down to eligible goods, preserving source order
func EligibleGoods(commodities []market.Commodity) []market.Commodity {
	eligible := make([]market.Commodity, 0, len(commodities))
	for _, c := range commodities {
		if IsEligible(c) {
			eligible = append(eligible, c)
		}
	}
	return eligible
}
