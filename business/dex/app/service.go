package app

import (
	"context"

	"github.com/Tariq3654467/trading-bot-galaswap/business/dex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
)

// DexService is the public facade of the dex context.
type DexService struct {
	quotes   QuoteProvider
	swaps    SwapService
	balances BalanceProvider
	logger   logger.LoggerInterface
	dryRun   bool
}

// NewDexService creates a new DexService.
func NewDexService(
	quotes QuoteProvider,
	swaps SwapService,
	balances BalanceProvider,
	log logger.LoggerInterface,
	dryRun bool,
) *DexService {
	return &DexService{
		quotes:   quotes,
		swaps:    swaps,
		balances: balances,
		logger:   log,
		dryRun:   dryRun,
	}
}

// BestQuote returns the best exact-input quote across fee tiers.
func (s *DexService) BestQuote(ctx context.Context, tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*domain.Quote, error) {
	quote, err := s.quotes.BestQuote(ctx, tokenIn, tokenOut, amountIn)
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "dex quote",
		"token_in", tokenIn.Symbol(),
		"token_out", tokenOut.Symbol(),
		"amount_in", amountIn.WireString(),
		"amount_out", quote.AmountOut.WireString(),
		"fee_tier", quote.FeeTier)

	return quote, nil
}

// Swap commits an exact-input swap. In dry-run mode the swap is logged
// and acknowledged without touching the chain.
func (s *DexService) Swap(ctx context.Context, tokenIn, tokenOut *asset.Asset, amountIn, minAmountOut asset.Amount, feeTier int) (*domain.SwapReceipt, error) {
	if s.dryRun {
		s.logger.Info(ctx, "dry-run: skipping dex swap",
			"token_in", tokenIn.Symbol(),
			"token_out", tokenOut.Symbol(),
			"amount_in", amountIn.WireString(),
			"min_amount_out", minAmountOut.WireString(),
			"fee_tier", feeTier)
		return &domain.SwapReceipt{
			TransactionID: "dry-run",
			TokenIn:       tokenIn,
			TokenOut:      tokenOut,
			AmountIn:      amountIn,
			MinAmountOut:  minAmountOut,
			FeeTier:       feeTier,
		}, nil
	}

	receipt, err := s.swaps.Swap(ctx, tokenIn, tokenOut, amountIn, minAmountOut, feeTier)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "dex swap submitted",
		"tx_id", receipt.TransactionID,
		"token_in", tokenIn.Symbol(),
		"token_out", tokenOut.Symbol(),
		"amount_in", amountIn.WireString())

	return receipt, nil
}

// Balances returns the wallet's token balances.
func (s *DexService) Balances(ctx context.Context) ([]domain.Balance, error) {
	return s.balances.Balances(ctx)
}
