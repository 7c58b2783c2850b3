package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

// Opportunity is one evaluated arbitrage candidate. Opportunities are
// recomputed every cycle and discarded after the best one is acted on;
// nothing here is persisted.
//
// All profit figures are denominated in source-token units.
type Opportunity struct {
	ID        string
	Pair      Pair
	Direction Direction

	// TradeSize is the quantity of the source token sold on the DEX leg.
	TradeSize asset.Amount

	// IntermediateReceived is what the DEX quote returns for TradeSize.
	IntermediateReceived asset.Amount

	// CounterAmountBuyable is how much source token the exchange price
	// implies is purchasable with IntermediateReceived's USD value.
	CounterAmountBuyable decimal.Decimal

	// FeeTier is the pool tier the DEX quote actually priced against.
	FeeTier int

	// CexSymbol is the exchange market the source token is priced and
	// repurchased against.
	CexSymbol string

	// CexPrice is the exchange price of the source token used in the
	// conversion.
	CexPrice decimal.Decimal

	VenueAFee decimal.Decimal
	VenueBFee decimal.Decimal
	GasFee    decimal.Decimal
	TotalFees decimal.Decimal
	NetProfit decimal.Decimal

	CreatedAt time.Time
}

// MeetsThreshold reports whether the opportunity clears the configured
// minimum profit.
func (o *Opportunity) MeetsThreshold(minProfit decimal.Decimal) bool {
	return o.NetProfit.GreaterThanOrEqual(minProfit)
}

// WithinLossTolerance reports whether a sub-threshold opportunity is
// still acceptable under an explicit loss-tolerance override.
func (o *Opportunity) WithinLossTolerance(tolerance decimal.Decimal) bool {
	return o.NetProfit.GreaterThanOrEqual(tolerance.Neg())
}

// BetterThan reports whether this opportunity strictly beats other.
// Equal profits are not better, so the first-found candidate wins ties.
func (o *Opportunity) BetterThan(other *Opportunity) bool {
	if other == nil {
		return true
	}
	return o.NetProfit.GreaterThan(other.NetProfit)
}
