// Package app contains application services and port definitions for the dex context.
package app

import (
	"context"

	"github.com/Tariq3654467/trading-bot-galaswap/business/dex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

// QuoteProvider fetches exact-input quotes from the on-chain venue.
type QuoteProvider interface {
	// BestQuote quotes amountIn of tokenIn for tokenOut across all
	// configured fee tiers and returns the quote with the highest output.
	// Liquidity exhaustion is reported via apperror.CodeInsufficientLiquidity.
	BestQuote(ctx context.Context, tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*domain.Quote, error)

	// Pool fetches the composite pool snapshot for a token pair and tier.
	Pool(ctx context.Context, a, b asset.ClassKey, feeTier int) (*domain.Pool, error)
}

// SwapService submits signed swaps to the on-chain venue.
type SwapService interface {
	// Swap commits an exact-input swap with a minimum acceptable output.
	Swap(ctx context.Context, tokenIn, tokenOut *asset.Asset, amountIn, minAmountOut asset.Amount, feeTier int) (*domain.SwapReceipt, error)
}

// BalanceProvider reads wallet balances from the chain.
type BalanceProvider interface {
	Balances(ctx context.Context) ([]domain.Balance, error)
}
