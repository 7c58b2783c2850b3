package domain

import "errors"

var (
	ErrEmptySymbol       = errors.New("cex: empty symbol")
	ErrInvalidSide       = errors.New("cex: invalid order side")
	ErrInvalidType       = errors.New("cex: invalid order type")
	ErrInvalidQuantity   = errors.New("cex: quantity must be positive")
	ErrMissingLimitPrice = errors.New("cex: limit order requires a price")
)
