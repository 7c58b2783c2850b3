package app

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	cexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apperror"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
)

// slippageTolerance pads the DEX leg's minimum output below the quoted
// amount so the swap survives small price moves between quote and commit.
var slippageTolerance = decimal.NewFromFloat(0.005)

// makerPriceOffset shades limit buys below the observed market price so
// the order rests and earns the maker rate.
var makerPriceOffset = decimal.NewFromFloat(0.0005)

// Executor commits an opportunity across both venues, one leg at a time.
//
// Leg 1 failing aborts cleanly; nothing has moved. Leg 2 failing after
// leg 1 executed leaves the position split across venues, which raises
// exactly one unbalanced-position alert and stops. The bot never tries
// to unwind on its own; reversing through the same thin pool that just
// failed is how one bad trade becomes two.
type Executor struct {
	dex     DexClient
	cex     ExchangeClient
	alerter Alerter
	history HistoryStore
	logger  logger.LoggerInterface
	now     func() time.Time
}

// NewExecutor creates a new Executor. history may be nil.
func NewExecutor(dex DexClient, cex ExchangeClient, alerter Alerter, history HistoryStore, log logger.LoggerInterface) *Executor {
	return &Executor{
		dex:     dex,
		cex:     cex,
		alerter: alerter,
		history: history,
		logger:  log,
		now:     time.Now,
	}
}

// Execute runs both legs of the opportunity in direction order.
func (e *Executor) Execute(ctx context.Context, opp *domain.Opportunity) error {
	e.logger.Info(ctx, "executing opportunity",
		"id", opp.ID,
		"pair", opp.Pair.Label(),
		"direction", opp.Direction.String(),
		"size", opp.TradeSize.WireString(),
		"net_profit", opp.NetProfit.String())

	switch opp.Direction {
	case domain.DirectionCexToDex:
		return e.executeCexFirst(ctx, opp)
	default:
		return e.executeDexFirst(ctx, opp)
	}
}

// executeDexFirst sells the source token on the DEX, then buys it back
// on the exchange.
func (e *Executor) executeDexFirst(ctx context.Context, opp *domain.Opportunity) error {
	receipt, err := e.dex.Swap(ctx,
		opp.Pair.Source, opp.Pair.Intermediate,
		opp.TradeSize, e.minAmountOut(opp), opp.FeeTier)
	if err != nil {
		e.abort(ctx, opp, err)
		return err
	}

	order, err := e.cex.ExecuteTrade(ctx, e.buyBackOrder(opp))
	if err != nil {
		e.unbalanced(ctx, opp, receipt.TransactionID, "", err)
		return err
	}

	e.complete(ctx, opp, receipt.TransactionID, order.OrderID)
	return nil
}

// executeCexFirst buys the source token on the exchange, then sells it
// on the DEX.
func (e *Executor) executeCexFirst(ctx context.Context, opp *domain.Opportunity) error {
	order, err := e.cex.ExecuteTrade(ctx, cexdomain.Order{
		Symbol:   opp.CexSymbol,
		Side:     cexdomain.SideBuy,
		Type:     e.orderType(),
		Quantity: opp.TradeSize.Value(),
		Price:    e.limitPrice(opp),
	})
	if err != nil {
		e.abort(ctx, opp, err)
		return err
	}

	receipt, err := e.dex.Swap(ctx,
		opp.Pair.Source, opp.Pair.Intermediate,
		opp.TradeSize, e.minAmountOut(opp), opp.FeeTier)
	if err != nil {
		e.unbalanced(ctx, opp, "", order.OrderID, err)
		return err
	}

	e.complete(ctx, opp, receipt.TransactionID, order.OrderID)
	return nil
}

// buyBackOrder builds the exchange order that repurchases the source
// token after the DEX leg.
func (e *Executor) buyBackOrder(opp *domain.Opportunity) cexdomain.Order {
	return cexdomain.Order{
		Symbol:   opp.CexSymbol,
		Side:     cexdomain.SideBuy,
		Type:     e.orderType(),
		Quantity: opp.CounterAmountBuyable.Truncate(8),
		Price:    e.limitPrice(opp),
	}
}

func (e *Executor) orderType() cexdomain.OrderType {
	if e.cex.FeeMode() == cexdomain.FeeModeMaker {
		return cexdomain.OrderTypeLimit
	}
	return cexdomain.OrderTypeMarket
}

// limitPrice returns the shaded limit price in maker mode and zero
// otherwise, since market orders carry no price.
func (e *Executor) limitPrice(opp *domain.Opportunity) decimal.Decimal {
	if e.cex.FeeMode() != cexdomain.FeeModeMaker {
		return decimal.Zero
	}
	return opp.CexPrice.Mul(decimal.NewFromInt(1).Sub(makerPriceOffset))
}

func (e *Executor) minAmountOut(opp *domain.Opportunity) asset.Amount {
	return opp.IntermediateReceived.MulDecimal(decimal.NewFromInt(1).Sub(slippageTolerance))
}

func (e *Executor) abort(ctx context.Context, opp *domain.Opportunity, cause error) {
	e.logger.Error(ctx, "leg 1 failed, aborting",
		"id", opp.ID,
		"pair", opp.Pair.Label(),
		"direction", opp.Direction.String(),
		"error", cause.Error())

	e.record(ctx, opp, domain.StatusAborted, "", "", cause)
}

// unbalanced handles the one genuinely dangerous failure mode: leg 1
// executed and leg 2 did not.
func (e *Executor) unbalanced(ctx context.Context, opp *domain.Opportunity, dexTxID, cexOrderID string, cause error) {
	err := apperror.New(apperror.CodeUnbalancedPosition, apperror.WithCause(cause))

	e.logger.Error(ctx, "UNBALANCED POSITION: leg 2 failed after leg 1 executed",
		"id", opp.ID,
		"pair", opp.Pair.Label(),
		"direction", opp.Direction.String(),
		"size", opp.TradeSize.WireString(),
		"dex_tx_id", dexTxID,
		"cex_order_id", cexOrderID,
		"error", err.Error())

	if e.alerter != nil {
		e.alerter.Alert(ctx, domain.Alert{
			Kind:    domain.AlertUnbalancedPosition,
			Message: "leg 2 failed after leg 1 executed; manual intervention required",
			Fields: map[string]string{
				"opportunity_id": opp.ID,
				"pair":           opp.Pair.Label(),
				"direction":      opp.Direction.String(),
				"trade_size":     opp.TradeSize.String(),
				"dex_tx_id":      dexTxID,
				"cex_order_id":   cexOrderID,
				"cause":          cause.Error(),
			},
			At: e.now(),
		})
	}

	e.record(ctx, opp, domain.StatusUnbalanced, dexTxID, cexOrderID, cause)
}

func (e *Executor) complete(ctx context.Context, opp *domain.Opportunity, dexTxID, cexOrderID string) {
	e.logger.Info(ctx, "opportunity executed",
		"id", opp.ID,
		"pair", opp.Pair.Label(),
		"dex_tx_id", dexTxID,
		"cex_order_id", cexOrderID,
		"net_profit", opp.NetProfit.String())

	e.record(ctx, opp, domain.StatusCompleted, dexTxID, cexOrderID, nil)
}

func (e *Executor) record(ctx context.Context, opp *domain.Opportunity, status domain.ExecutionStatus, dexTxID, cexOrderID string, cause error) {
	if e.history == nil {
		return
	}

	rec := domain.ExecutionRecord{
		ID:            uuid.NewString(),
		OpportunityID: opp.ID,
		Pair:          opp.Pair.Label(),
		Direction:     opp.Direction,
		Status:        status,
		TradeSize:     opp.TradeSize.Value(),
		NetProfit:     opp.NetProfit,
		DexTxID:       dexTxID,
		CexOrderID:    cexOrderID,
		ExecutedAt:    e.now(),
	}
	if cause != nil {
		rec.Error = cause.Error()
	}

	if err := e.history.Record(ctx, rec); err != nil {
		e.logger.Warn(ctx, "failed to persist execution record",
			"opportunity_id", opp.ID, "error", err.Error())
	}
}
