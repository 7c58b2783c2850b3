package app

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	cexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
	dexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/dex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apperror"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

func galaUsdtPair(t *testing.T) domain.Pair {
	t.Helper()
	pair, err := domain.ParsePair("GALA-GUSDT", asset.DefaultRegistry())
	if err != nil {
		t.Fatal(err)
	}
	return pair
}

func galaAmount(t *testing.T, s string) asset.Amount {
	t.Helper()
	amt, err := asset.ParseString(asset.GALA, s)
	if err != nil {
		t.Fatal(err)
	}
	return amt
}

func TestEvaluator_ProfitableOpportunity(t *testing.T) {
	// 1000 GALA sold on the DEX yields 150 GUSDT. At 0.015 USDT per GALA
	// that buys back 10000 GALA. Fees: 0.3% pool tier on the way in (3),
	// 0.1% exchange fee on the way back (10), plus 1 flat gas.
	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			return stableQuote(tokenIn, tokenOut, amountIn, "150", 3000), nil
		},
	}
	cex := &fakeCex{
		priceFn: fixedPrice("0.015"),
		feeRate: decimal.RequireFromString("0.001"),
	}

	eval := NewEvaluator(dex, cex, asset.GUSDT, decimal.NewFromInt(1), testLogger())
	result := eval.Evaluate(context.Background(), galaUsdtPair(t), domain.DirectionDexToCex, galaAmount(t, "1000"))

	if !result.OK() {
		t.Fatalf("expected opportunity, got failure %q", result.Failure)
	}

	op := result.Opportunity
	if op.FeeTier != 3000 {
		t.Errorf("FeeTier = %d, want 3000", op.FeeTier)
	}
	if !op.CounterAmountBuyable.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("CounterAmountBuyable = %s, want 10000", op.CounterAmountBuyable)
	}
	if !op.VenueAFee.Equal(decimal.NewFromInt(3)) {
		t.Errorf("VenueAFee = %s, want 3", op.VenueAFee)
	}
	if !op.VenueBFee.Equal(decimal.NewFromInt(10)) {
		t.Errorf("VenueBFee = %s, want 10", op.VenueBFee)
	}
	// 10000 - 1000 - 3 - 10 - 1
	if !op.NetProfit.Equal(decimal.NewFromInt(8986)) {
		t.Errorf("NetProfit = %s, want 8986", op.NetProfit)
	}
}

func TestEvaluator_FeeUsesQuotedTierNotAssumption(t *testing.T) {
	// Same trade but the only pool with depth is the 1% tier. The venue A
	// fee must follow the quote's tier.
	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			return stableQuote(tokenIn, tokenOut, amountIn, "150", 10000), nil
		},
	}
	cex := &fakeCex{
		priceFn: fixedPrice("0.015"),
		feeRate: decimal.RequireFromString("0.001"),
	}

	eval := NewEvaluator(dex, cex, asset.GUSDT, decimal.NewFromInt(1), testLogger())
	result := eval.Evaluate(context.Background(), galaUsdtPair(t), domain.DirectionDexToCex, galaAmount(t, "1000"))

	if !result.OK() {
		t.Fatalf("expected opportunity, got failure %q", result.Failure)
	}
	if result.Opportunity.FeeTier != 10000 {
		t.Errorf("FeeTier = %d, want 10000", result.Opportunity.FeeTier)
	}
	if !result.Opportunity.VenueAFee.Equal(decimal.NewFromInt(10)) {
		t.Errorf("VenueAFee = %s, want 10 (1%% of 1000)", result.Opportunity.VenueAFee)
	}
	// 10000 - 1000 - 10 - 10 - 1
	if !result.Opportunity.NetProfit.Equal(decimal.NewFromInt(8979)) {
		t.Errorf("NetProfit = %s, want 8979", result.Opportunity.NetProfit)
	}
}

func TestEvaluator_NonStableIntermediatePricedThroughOwnMarket(t *testing.T) {
	registry := asset.DefaultRegistry()
	pair, err := domain.ParsePair("GALA-GWETH", registry)
	if err != nil {
		t.Fatal(err)
	}

	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			return stableQuote(tokenIn, tokenOut, amountIn, "0.05", 3000), nil
		},
	}
	cex := &fakeCex{
		priceFn: func(symbol string) (*cexdomain.Ticker, error) {
			switch symbol {
			case "ETHUSDT":
				return &cexdomain.Ticker{Symbol: symbol, Price: decimal.NewFromInt(3000)}, nil
			case "GALAUSDT":
				return &cexdomain.Ticker{Symbol: symbol, Price: decimal.RequireFromString("0.015")}, nil
			default:
				t.Fatalf("unexpected symbol %q", symbol)
				return nil, nil
			}
		},
		feeRate: decimal.RequireFromString("0.001"),
	}

	eval := NewEvaluator(dex, cex, asset.GUSDT, decimal.NewFromInt(1), testLogger())
	result := eval.Evaluate(context.Background(), pair, domain.DirectionDexToCex, galaAmount(t, "1000"))

	if !result.OK() {
		t.Fatalf("expected opportunity, got failure %q", result.Failure)
	}
	// 0.05 ETH * 3000 = 150 USD -> 10000 GALA at 0.015
	if !result.Opportunity.CounterAmountBuyable.Equal(decimal.NewFromInt(10000)) {
		t.Errorf("CounterAmountBuyable = %s, want 10000", result.Opportunity.CounterAmountBuyable)
	}
}

func TestEvaluator_UsesConfiguredQuoteMarket(t *testing.T) {
	// With GUSDC configured as the quote currency, every exchange lookup
	// targets the USDC market and the opportunity carries that symbol
	// through to execution.
	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			return stableQuote(tokenIn, tokenOut, amountIn, "150", 3000), nil
		},
	}
	var symbols []string
	cex := &fakeCex{
		priceFn: func(symbol string) (*cexdomain.Ticker, error) {
			symbols = append(symbols, symbol)
			return &cexdomain.Ticker{Symbol: symbol, Price: decimal.RequireFromString("0.015")}, nil
		},
		feeRate: decimal.Zero,
	}

	eval := NewEvaluator(dex, cex, asset.GUSDC, decimal.Zero, testLogger())
	result := eval.Evaluate(context.Background(), galaUsdtPair(t), domain.DirectionDexToCex, galaAmount(t, "1000"))

	if !result.OK() {
		t.Fatalf("expected opportunity, got failure %q", result.Failure)
	}
	if len(symbols) != 1 || symbols[0] != "GALAUSDC" {
		t.Errorf("price lookups = %v, want one against GALAUSDC", symbols)
	}
	if result.Opportunity.CexSymbol != "GALAUSDC" {
		t.Errorf("CexSymbol = %q, want GALAUSDC", result.Opportunity.CexSymbol)
	}
}

func TestEvaluator_ReportsUnprofitableHonestly(t *testing.T) {
	// The quote only returns 10 GUSDT for 1000 GALA. The evaluator still
	// produces an opportunity; rejecting it is the search driver's job.
	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			return stableQuote(tokenIn, tokenOut, amountIn, "10", 3000), nil
		},
	}
	cex := &fakeCex{
		priceFn: fixedPrice("0.015"),
		feeRate: decimal.RequireFromString("0.001"),
	}

	eval := NewEvaluator(dex, cex, asset.GUSDT, decimal.NewFromInt(1), testLogger())
	result := eval.Evaluate(context.Background(), galaUsdtPair(t), domain.DirectionDexToCex, galaAmount(t, "1000"))

	if !result.OK() {
		t.Fatalf("expected opportunity, got failure %q", result.Failure)
	}
	if !result.Opportunity.NetProfit.IsNegative() {
		t.Errorf("NetProfit = %s, want negative", result.Opportunity.NetProfit)
	}
}

func TestEvaluator_FailureClassification(t *testing.T) {
	tests := []struct {
		name     string
		quoteErr error
		priceErr error
		want     domain.FailureKind
	}{
		{
			name:     "insufficient_liquidity",
			quoteErr: apperror.New(apperror.CodeInsufficientLiquidity),
			want:     domain.FailureLiquidity,
		},
		{
			name:     "pool_not_found",
			quoteErr: apperror.New(apperror.CodePoolNotFound),
			want:     domain.FailureLiquidity,
		},
		{
			name:     "price_unavailable",
			priceErr: apperror.New(apperror.CodePriceUnavailable),
			want:     domain.FailurePriceUnavailable,
		},
		{
			name:     "gateway_down",
			quoteErr: apperror.New(apperror.CodeGalaSwapConnectionFailed),
			want:     domain.FailureTransport,
		},
		{
			name:     "exchange_down",
			priceErr: apperror.New(apperror.CodeExchangeConnectionFailed),
			want:     domain.FailureTransport,
		},
		{
			name:     "plain_error",
			quoteErr: errors.New("boom"),
			want:     domain.FailureTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dex := &fakeDex{
				quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
					if tt.quoteErr != nil {
						return nil, tt.quoteErr
					}
					return stableQuote(tokenIn, tokenOut, amountIn, "150", 3000), nil
				},
			}
			cex := &fakeCex{
				priceFn: func(symbol string) (*cexdomain.Ticker, error) {
					if tt.priceErr != nil {
						return nil, tt.priceErr
					}
					return &cexdomain.Ticker{Symbol: symbol, Price: decimal.RequireFromString("0.015")}, nil
				},
				feeRate: decimal.Zero,
			}

			eval := NewEvaluator(dex, cex, asset.GUSDT, decimal.Zero, testLogger())
			result := eval.Evaluate(context.Background(), galaUsdtPair(t), domain.DirectionDexToCex, galaAmount(t, "1000"))

			if result.OK() {
				t.Fatal("expected a failure result")
			}
			if result.Failure != tt.want {
				t.Errorf("Failure = %q, want %q", result.Failure, tt.want)
			}
		})
	}
}
