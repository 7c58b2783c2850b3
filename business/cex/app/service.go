package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apperror"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
)

// ExchangeService is the public facade of the cex context.
// Prices come from the stream when available and fall back to REST.
type ExchangeService struct {
	prices       PriceProvider
	stream       PriceStream
	trading      TradingClient
	fees         domain.FeeSchedule
	feeMode      domain.FeeMode
	staleTimeout time.Duration
	logger       logger.LoggerInterface
	dryRun       bool
}

// NewExchangeService creates a new ExchangeService. stream may be nil.
func NewExchangeService(
	prices PriceProvider,
	stream PriceStream,
	trading TradingClient,
	fees domain.FeeSchedule,
	feeMode domain.FeeMode,
	staleTimeout time.Duration,
	log logger.LoggerInterface,
	dryRun bool,
) *ExchangeService {
	return &ExchangeService{
		prices:       prices,
		stream:       stream,
		trading:      trading,
		fees:         fees,
		feeMode:      feeMode,
		staleTimeout: staleTimeout,
		logger:       log,
		dryRun:       dryRun,
	}
}

// FeeMode returns the configured fee mode.
func (s *ExchangeService) FeeMode() domain.FeeMode {
	return s.feeMode
}

// FeeRate returns the fee rate the executor will actually pay.
func (s *ExchangeService) FeeRate() decimal.Decimal {
	return s.fees.Rate(s.feeMode)
}

// GetPrice returns the latest price for a symbol.
func (s *ExchangeService) GetPrice(ctx context.Context, symbol string) (*domain.Ticker, error) {
	if s.stream != nil {
		if ticker, ok := s.stream.Latest(symbol); ok && !ticker.IsStale(s.staleTimeout) {
			return ticker, nil
		}
	}

	ticker, err := s.prices.GetPrice(ctx, symbol)
	if err != nil {
		return nil, err
	}
	if ticker == nil || !ticker.Price.IsPositive() {
		return nil, apperror.New(apperror.CodePriceUnavailable)
	}
	return ticker, nil
}

// GetBalances returns the exchange account balances.
func (s *ExchangeService) GetBalances(ctx context.Context) (map[string]domain.Balance, error) {
	return s.trading.GetBalances(ctx)
}

// ExecuteTrade validates and submits an order. In dry-run mode the order
// is logged and acknowledged as filled without hitting the exchange.
func (s *ExchangeService) ExecuteTrade(ctx context.Context, order domain.Order) (*domain.OrderResult, error) {
	if err := order.Validate(); err != nil {
		return nil, apperror.New(apperror.CodeOrderExecutionFailed, apperror.WithCause(err))
	}

	if s.dryRun {
		s.logger.Info(ctx, "dry-run: skipping exchange order",
			"symbol", order.Symbol,
			"side", string(order.Side),
			"type", string(order.Type),
			"quantity", order.Quantity.String())
		return &domain.OrderResult{
			OrderID:     "dry-run-" + uuid.NewString(),
			Status:      "FILLED",
			ExecutedQty: order.Quantity,
		}, nil
	}

	result, err := s.trading.ExecuteTrade(ctx, order)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "exchange order submitted",
		"order_id", result.OrderID,
		"symbol", order.Symbol,
		"side", string(order.Side),
		"status", result.Status,
		"executed_qty", result.ExecutedQty.String())

	return result, nil
}
