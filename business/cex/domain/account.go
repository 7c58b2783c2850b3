package domain

import (
	"github.com/shopspring/decimal"
)

// Balance is the free and locked quantity of a single exchange asset.
type Balance struct {
	Asset  string
	Free   decimal.Decimal
	Locked decimal.Decimal
}

// Total returns free plus locked.
func (b Balance) Total() decimal.Decimal {
	return b.Free.Add(b.Locked)
}
