package market

import "errors"

// Domain errors for market data

var (
	// ErrInvalidCommodity is returned when a commodity record has no name
	ErrInvalidCommodity = errors.New("invalid commodity")

	// ErrInvalidPriceQuote is returned when a price quote lacks a commodity or terminal name
	ErrInvalidPriceQuote = errors.New("invalid price quote")

	// ErrInvalidLocation is returned when a terminal, station or system record has no name
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidPrice is returned when a price is negative
	ErrInvalidPrice = errors.New("invalid price")

	// ErrInvalidStock is returned when a stock level is negative
	ErrInvalidStock = errors.New("invalid stock")

	// ErrSnapshotUnusable is returned when every collection of a snapshot is empty
	ErrSnapshotUnusable = errors.New("no market data available")

	// ErrUnknownCollection is returned for a collection name outside the known set
	ErrUnknownCollection = errors.New("unknown collection")
)
