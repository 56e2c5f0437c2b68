package trading

import "errors"

var (
	// ErrDegenerateRoute indicates the optimizer was given an empty buy or sell list
	ErrDegenerateRoute = errors.New("route requires at least one buy offer and one sell offer")

	// ErrInvalidBuyPrice indicates a buy offer with a non-positive price reached the optimizer
	ErrInvalidBuyPrice = errors.New("buy price must be positive")

	// ErrUnknownMatchMode indicates an unsupported name matching mode
	ErrUnknownMatchMode = errors.New("unknown match mode")
)
