// Package domain contains the core domain types for the dex context.
package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

// feeTierDivisor converts a pool fee tier into a rate.
// Tiers follow the v3 convention: 500 = 0.05%, 3000 = 0.30%, 10000 = 1.00%.
var feeTierDivisor = decimal.NewFromInt(1_000_000)

// FeeTierRate returns the fee rate for a pool fee tier as a decimal
// fraction (10000 -> 0.01).
func FeeTierRate(tier int) decimal.Decimal {
	return decimal.NewFromInt(int64(tier)).Div(feeTierDivisor)
}

// Quote is the result of an exact-input quote against a liquidity pool.
type Quote struct {
	TokenIn    *asset.Asset
	TokenOut   *asset.Asset
	AmountIn   asset.Amount
	AmountOut  asset.Amount
	FeeTier    int // the tier of the pool that actually priced this quote
	SqrtPrice  decimal.Decimal
	ObservedAt time.Time
}

// FeeRate returns the fee rate implied by the quote's pool tier.
func (q *Quote) FeeRate() decimal.Decimal {
	return FeeTierRate(q.FeeTier)
}

// FeeAmount returns the pool fee paid, denominated in TokenIn.
func (q *Quote) FeeAmount() asset.Amount {
	return q.AmountIn.MulDecimal(q.FeeRate())
}

// EffectivePrice returns the output per unit of input.
func (q *Quote) EffectivePrice() decimal.Decimal {
	if q.AmountIn.IsZero() {
		return decimal.Zero
	}
	return q.AmountOut.Value().Div(q.AmountIn.Value())
}
