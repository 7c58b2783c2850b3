package domain

import (
	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

// Pool is a snapshot of an on-chain liquidity pool.
// Token0 and Token1 are ordered lexicographically by class key, as the
// chain stores them.
type Pool struct {
	Token0    asset.ClassKey
	Token1    asset.ClassKey
	FeeTier   int
	SqrtPrice decimal.Decimal
	Liquidity decimal.Decimal
}

// SpotPrice returns the token1-per-token0 price implied by sqrtPrice.
func (p *Pool) SpotPrice() decimal.Decimal {
	return p.SqrtPrice.Mul(p.SqrtPrice)
}

// HasLiquidity reports whether the pool can absorb any trade at all.
func (p *Pool) HasLiquidity() bool {
	return p.Liquidity.IsPositive()
}

// OrderTokens returns a and b in pool order plus whether they were swapped.
func OrderTokens(a, b asset.ClassKey) (token0, token1 asset.ClassKey, swapped bool) {
	if a.Compare(b) > 0 {
		return b, a, true
	}
	return a, b, false
}
