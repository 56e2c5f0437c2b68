package trading

import (
	"sort"

	"github.com/andrescamacho/smuggler-go/internal/domain/market"
)

// BuyOffer is a terminal we can buy from: it charges BuyPrice and holds Stock units
type BuyOffer struct {
	Terminal string
	BuyPrice float64
	Stock    int
}

// SellOffer is a terminal we can sell to at SellPrice. Stock is not tracked for selling.
type SellOffer struct {
	Terminal  string
	SellPrice float64
}

// OfferExtractor partitions a commodity's quotes into buy and sell offers
type OfferExtractor struct {
	matcher NameMatcher
}

// NewOfferExtractor creates an extractor; a nil matcher falls back to substring matching
func NewOfferExtractor(matcher NameMatcher) *OfferExtractor {
	if matcher == nil {
		matcher = SubstringMatcher{}
	}
	return &OfferExtractor{matcher: matcher}
}

// Extract returns the buy and sell offers for target in source order.
//
// A quote yields a buy offer when it has a positive buy price and stock on hand, and a
// sell offer when it has a positive sell price. Both checks are independent, so one
// quote can land in both lists, one, or neither.
func (e *OfferExtractor) Extract(target string, quotes []market.PriceQuote) ([]BuyOffer, []SellOffer) {
	buys := make([]BuyOffer, 0)
	sells := make([]SellOffer, 0)

	for _, q := range QuotesFor(target, quotes, e.matcher) {
		if q.PriceBuy() > 0 && q.StockBuy() > 0 {
			buys = append(buys, BuyOffer{
				Terminal: q.TerminalName(),
				BuyPrice: q.PriceBuy(),
				Stock:    q.StockBuy(),
			})
		}
		if q.PriceSell() > 0 {
			sells = append(sells, SellOffer{
				Terminal:  q.TerminalName(),
				SellPrice: q.PriceSell(),
			})
		}
	}

	return buys, sells
}

// SortBuyOffers returns a copy ordered cheapest first; equal prices keep source order
func SortBuyOffers(offers []BuyOffer) []BuyOffer {
	sorted := append([]BuyOffer(nil), offers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BuyPrice < sorted[j].BuyPrice
	})
	return sorted
}

// SortSellOffers returns a copy ordered best paying first; equal prices keep source order
func SortSellOffers(offers []SellOffer) []SellOffer {
	sorted := append([]SellOffer(nil), offers...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].SellPrice > sorted[j].SellPrice
	})
	return sorted
}
