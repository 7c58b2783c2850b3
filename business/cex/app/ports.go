// Package app contains application services and port definitions for the cex context.
package app

import (
	"context"

	"github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
)

// PriceProvider fetches last-trade prices from the exchange.
type PriceProvider interface {
	// GetPrice returns the latest price for a symbol. A missing or stale
	// price is reported via apperror.CodePriceUnavailable.
	GetPrice(ctx context.Context, symbol string) (*domain.Ticker, error)
}

// PriceStream is an optional push source of prices. When connected, the
// service prefers streamed prices over REST lookups.
type PriceStream interface {
	Connect(ctx context.Context) error
	Latest(symbol string) (*domain.Ticker, bool)
	Close() error
}

// TradingClient places orders and reads account state.
type TradingClient interface {
	GetBalances(ctx context.Context) (map[string]domain.Balance, error)
	ExecuteTrade(ctx context.Context, order domain.Order) (*domain.OrderResult, error)
}
