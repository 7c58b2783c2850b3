package app

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	cexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
	dexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/dex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

// DexClient is the slice of the dex context this context needs.
// Satisfied by *dex/app.DexService.
type DexClient interface {
	BestQuote(ctx context.Context, tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error)
	Swap(ctx context.Context, tokenIn, tokenOut *asset.Asset, amountIn, minAmountOut asset.Amount, feeTier int) (*dexdomain.SwapReceipt, error)
	Balances(ctx context.Context) ([]dexdomain.Balance, error)
}

// ExchangeClient is the slice of the cex context this context needs.
// Satisfied by *cex/app.ExchangeService.
type ExchangeClient interface {
	GetPrice(ctx context.Context, symbol string) (*cexdomain.Ticker, error)
	GetBalances(ctx context.Context) (map[string]cexdomain.Balance, error)
	ExecuteTrade(ctx context.Context, order cexdomain.Order) (*cexdomain.OrderResult, error)
	FeeMode() cexdomain.FeeMode
	FeeRate() decimal.Decimal
}

// Alerter delivers operator notifications.
type Alerter interface {
	Alert(ctx context.Context, alert domain.Alert)
}

// HistoryStore persists execution outcomes.
type HistoryStore interface {
	Record(ctx context.Context, rec domain.ExecutionRecord) error
	Recent(ctx context.Context, limit int) ([]domain.ExecutionRecord, error)
}
