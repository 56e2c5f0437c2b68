package types

import (
	"github.com/andrescamacho/smuggler-go/internal/domain/market"
	"github.com/andrescamacho/smuggler-go/internal/domain/trading"
)

// EligibleGoodToDTO converts an eligible commodity into an overview row
func EligibleGoodToDTO(c market.Commodity) EligibleGoodDTO {
	return EligibleGoodDTO{
		Name:          c.Name(),
		Kind:          c.Kind(),
		AvgBuy:        c.PriceBuy(),
		AvgSell:       c.PriceSell(),
		Profit:        c.ReferenceProfit(),
		MarginPercent: c.ReferenceMargin(),
	}
}

func BuyOffersToDTO(offers []trading.BuyOffer) []BuyOfferDTO {
	dtos := make([]BuyOfferDTO, len(offers))
	for i, o := range offers {
		dtos[i] = BuyOfferDTO{Terminal: o.Terminal, BuyPrice: o.BuyPrice, Stock: o.Stock}
	}
	return dtos
}

func SellOffersToDTO(offers []trading.SellOffer) []SellOfferDTO {
	dtos := make([]SellOfferDTO, len(offers))
	for i, o := range offers {
		dtos[i] = SellOfferDTO{Terminal: o.Terminal, SellPrice: o.SellPrice}
	}
	return dtos
}

func BuyOffersFromDTO(dtos []BuyOfferDTO) []trading.BuyOffer {
	offers := make([]trading.BuyOffer, len(dtos))
	for i, d := range dtos {
		offers[i] = trading.BuyOffer{Terminal: d.Terminal, BuyPrice: d.BuyPrice, Stock: d.Stock}
	}
	return offers
}

func SellOffersFromDTO(dtos []SellOfferDTO) []trading.SellOffer {
	offers := make([]trading.SellOffer, len(dtos))
	for i, d := range dtos {
		offers[i] = trading.SellOffer{Terminal: d.Terminal, SellPrice: d.SellPrice}
	}
	return offers
}

// RouteToDTO converts a route; nil stays nil
func RouteToDTO(r *trading.Route) *RouteDTO {
	if r == nil {
		return nil
	}
	return &RouteDTO{
		BuyTerminal:   r.BuyTerminal(),
		BuyPrice:      r.BuyPrice(),
		BuyStock:      r.BuyStock(),
		SellTerminal:  r.SellTerminal(),
		SellPrice:     r.SellPrice(),
		ProfitPerUnit: r.ProfitPerUnit(),
		MarginPercent: r.MarginPercent(),
		SameTerminal:  r.SameTerminal(),
	}
}

// OutcomesToDTO converts the per-collection fetch outcomes of a snapshot
func OutcomesToDTO(outcomes []market.FetchOutcome) []CollectionStatusDTO {
	dtos := make([]CollectionStatusDTO, len(outcomes))
	for i, o := range outcomes {
		dtos[i] = CollectionStatusDTO{
			Collection: o.Collection.String(),
			Records:    o.Records,
			Skipped:    o.Skipped,
			Duration:   o.Duration,
		}
		if o.Err != nil {
			dtos[i].Error = o.Err.Error()
		}
	}
	return dtos
}
