package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apperror"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
)

// Evaluator computes whether a single (pair, size, direction) candidate
// is profitable. It makes no trading decisions and moves no funds.
type Evaluator struct {
	dex    DexClient
	cex    ExchangeClient
	quote  *asset.Asset
	gasFee decimal.Decimal
	logger logger.LoggerInterface
	now    func() time.Time
}

// NewEvaluator creates a new Evaluator. quote is the exchange quote
// currency all markets are priced against (GUSDT when nil); gasFee is a
// flat per-trade cost estimate denominated in source-token units.
func NewEvaluator(dex DexClient, cex ExchangeClient, quote *asset.Asset, gasFee decimal.Decimal, log logger.LoggerInterface) *Evaluator {
	if quote == nil {
		quote = asset.GUSDT
	}
	return &Evaluator{
		dex:    dex,
		cex:    cex,
		quote:  quote,
		gasFee: gasFee,
		logger: log,
		now:    time.Now,
	}
}

// Evaluate runs one candidate through the profit pipeline:
// quote the DEX leg, price the CEX leg, charge both venues' fees plus
// gas, and net everything out in source-token units.
func (e *Evaluator) Evaluate(ctx context.Context, pair domain.Pair, direction domain.Direction, tradeSize asset.Amount) domain.EvalResult {
	quote, err := e.dex.BestQuote(ctx, pair.Source, pair.Intermediate, tradeSize)
	if err != nil {
		kind := classifyFailure(err)
		e.logger.Debug(ctx, "candidate quote failed",
			"pair", pair.Label(),
			"size", tradeSize.WireString(),
			"kind", string(kind),
			"error", err.Error())
		return domain.NotAvailable(kind)
	}

	usdValue, err := e.intermediateUSDValue(ctx, pair.Intermediate, quote.AmountOut)
	if err != nil {
		return domain.NotAvailable(classifyFailure(err))
	}

	cexSymbol := asset.PairSymbol(pair.Source, e.quote)
	ticker, err := e.cex.GetPrice(ctx, cexSymbol)
	if err != nil {
		return domain.NotAvailable(classifyFailure(err))
	}
	if !ticker.Price.IsPositive() {
		return domain.NotAvailable(domain.FailurePriceUnavailable)
	}

	counterAmount := usdValue.Div(ticker.Price)

	// Fees charged where they accrue, all expressed in source units.
	// The DEX fee uses the tier the quote actually priced against, not a
	// configured assumption.
	venueAFee := tradeSize.Value().Mul(quote.FeeRate())
	venueBFee := counterAmount.Mul(e.cex.FeeRate())
	totalFees := venueAFee.Add(venueBFee).Add(e.gasFee)

	netProfit := counterAmount.Sub(tradeSize.Value()).Sub(totalFees)

	return domain.Available(&domain.Opportunity{
		ID:                   uuid.NewString(),
		Pair:                 pair,
		Direction:            direction,
		TradeSize:            tradeSize,
		IntermediateReceived: quote.AmountOut,
		CounterAmountBuyable: counterAmount,
		FeeTier:              quote.FeeTier,
		CexSymbol:            cexSymbol,
		CexPrice:             ticker.Price,
		VenueAFee:            venueAFee,
		VenueBFee:            venueBFee,
		GasFee:               e.gasFee,
		TotalFees:            totalFees,
		NetProfit:            netProfit,
		CreatedAt:            e.now(),
	})
}

// intermediateUSDValue converts the DEX output into USD. Stablecoins
// convert 1:1; anything else is priced through its own exchange market.
func (e *Evaluator) intermediateUSDValue(ctx context.Context, intermediate *asset.Asset, received asset.Amount) (decimal.Decimal, error) {
	if intermediate.IsStable() {
		return received.Value(), nil
	}

	ticker, err := e.cex.GetPrice(ctx, asset.PairSymbol(intermediate, e.quote))
	if err != nil {
		return decimal.Zero, err
	}
	if !ticker.Price.IsPositive() {
		return decimal.Zero, apperror.New(apperror.CodePriceUnavailable)
	}
	return received.Value().Mul(ticker.Price), nil
}

// classifyFailure maps venue errors onto the three failure kinds the
// search loop branches on. Only liquidity failures feed the breaker.
func classifyFailure(err error) domain.FailureKind {
	switch apperror.GetCode(err) {
	case apperror.CodeInsufficientLiquidity, apperror.CodePoolNotFound:
		return domain.FailureLiquidity
	case apperror.CodePriceUnavailable:
		return domain.FailurePriceUnavailable
	default:
		return domain.FailureTransport
	}
}
