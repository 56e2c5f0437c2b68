package types

import "time"

// EligibleGoodDTO is one row of the restricted-goods overview
type EligibleGoodDTO struct {
	Name          string  `json:"name"`
	Kind          string  `json:"kind"`
	AvgBuy        float64 `json:"avg_buy"`
	AvgSell       float64 `json:"avg_sell"`
	Profit        float64 `json:"profit"`
	MarginPercent float64 `json:"margin_percent"`
}

// BuyOfferDTO is a terminal selling the good to us
type BuyOfferDTO struct {
	Terminal string  `json:"terminal"`
	BuyPrice float64 `json:"buy_price"`
	Stock    int     `json:"stock"`
}

// SellOfferDTO is a terminal buying the good from us
type SellOfferDTO struct {
	Terminal  string  `json:"terminal"`
	SellPrice float64 `json:"sell_price"`
}

// RouteDTO is the optimal single-hop route for a good
type RouteDTO struct {
	BuyTerminal   string  `json:"buy_terminal"`
	BuyPrice      float64 `json:"buy_price"`
	BuyStock      int     `json:"buy_stock"`
	SellTerminal  string  `json:"sell_terminal"`
	SellPrice     float64 `json:"sell_price"`
	ProfitPerUnit float64 `json:"profit_per_unit"`
	MarginPercent float64 `json:"margin_percent"`
	SameTerminal  bool    `json:"same_terminal"`
}

// SafeHavenDTO is a low-risk terminal
type SafeHavenDTO struct {
	Terminal string `json:"terminal"`
	System   string `json:"system"`
}

// CollectionStatusDTO reports how one collection fared in the last fetch
type CollectionStatusDTO struct {
	Collection string        `json:"collection"`
	Records    int           `json:"records"`
	Skipped    int           `json:"skipped"`
	Duration   time.Duration `json:"duration"`
	Error      string        `json:"error,omitempty"`
}

// NoRouteReason explains why no route was computed
type NoRouteReason string

const (
	NoRouteNone         NoRouteReason = ""
	NoRouteNoBuyOffers  NoRouteReason = "no_buy_offers"
	NoRouteNoSellOffers NoRouteReason = "no_sell_offers"
)
