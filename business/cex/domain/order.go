package domain

import (
	"github.com/shopspring/decimal"
)

// Side is the order side.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// OrderType is the order type.
type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
)

// Order is a trade instruction for the exchange.
// Price is required for limit orders and ignored for market orders.
type Order struct {
	Symbol   string
	Side     Side
	Type     OrderType
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// Validate checks the order shape before submission.
func (o Order) Validate() error {
	if o.Symbol == "" {
		return ErrEmptySymbol
	}
	if o.Side != SideBuy && o.Side != SideSell {
		return ErrInvalidSide
	}
	if o.Type != OrderTypeMarket && o.Type != OrderTypeLimit {
		return ErrInvalidType
	}
	if !o.Quantity.IsPositive() {
		return ErrInvalidQuantity
	}
	if o.Type == OrderTypeLimit && !o.Price.IsPositive() {
		return ErrMissingLimitPrice
	}
	return nil
}

// OrderResult is the exchange's acknowledgement of an order.
type OrderResult struct {
	OrderID     string
	Status      string
	ExecutedQty decimal.Decimal
}

// IsFilled reports whether the order fully executed.
func (r *OrderResult) IsFilled() bool {
	return r.Status == "FILLED"
}
