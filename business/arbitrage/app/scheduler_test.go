package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	dexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/dex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apperror"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

func newTestScheduler(t *testing.T, dex *fakeDex, cex *fakeCex, alerter *fakeAlerter) *Scheduler {
	t.Helper()
	driver := newTestDriver(t, dex, cex, SearchConfig{
		Pairs:      []domain.Pair{galaUsdtPair(t)},
		TradeSizes: sizes(100),
		MinProfit:  decimal.NewFromInt(1),
	}, nil)
	exec := NewExecutor(dex, cex, alerter, nil, testLogger())
	return NewScheduler(driver, exec, time.Minute, testLogger())
}

func TestScheduler_TickContainsPanics(t *testing.T) {
	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			panic("venue adapter blew up")
		},
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	s := newTestScheduler(t, dex, cex, &fakeAlerter{})

	// A panic anywhere in the cycle must stop at the tick boundary.
	s.tick(context.Background())

	if dex.quoteCalls != 1 {
		t.Fatalf("quote calls = %d, want 1", dex.quoteCalls)
	}

	// The loop stays usable: the next tick runs the cycle to completion.
	dex.quoteFn = quotesBySize(map[string]string{"100": "105.05"})
	s.tick(context.Background())

	if dex.quoteCalls != 2 {
		t.Errorf("quote calls after recovery = %d, want 2", dex.quoteCalls)
	}
	if dex.swapCalls != 1 {
		t.Errorf("swap calls after recovery = %d, want 1", dex.swapCalls)
	}
}

func TestScheduler_TickReturnsOnExecutionFailure(t *testing.T) {
	dex := &fakeDex{
		quoteFn: quotesBySize(map[string]string{"100": "105.05"}),
		swapFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.SwapReceipt, error) {
			return nil, apperror.New(apperror.CodeSwapRequestFailed)
		},
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}
	alerter := &fakeAlerter{}

	s := newTestScheduler(t, dex, cex, alerter)
	s.tick(context.Background())

	if dex.swapCalls != 1 {
		t.Errorf("swap calls = %d, want 1", dex.swapCalls)
	}
	// Leg 1 failed, so nothing reached the exchange and nothing alerted.
	if len(cex.orders) != 0 {
		t.Errorf("exchange orders = %d, want 0", len(cex.orders))
	}
	if got := alerter.count(domain.AlertUnbalancedPosition); got != 0 {
		t.Errorf("unbalanced alerts = %d, want 0", got)
	}
}

func TestScheduler_IdleTickMovesNothing(t *testing.T) {
	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			return nil, apperror.New(apperror.CodeInsufficientLiquidity)
		},
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	s := newTestScheduler(t, dex, cex, &fakeAlerter{})
	s.tick(context.Background())

	if dex.swapCalls != 0 {
		t.Errorf("swap calls = %d, want 0", dex.swapCalls)
	}
	if len(cex.orders) != 0 {
		t.Errorf("exchange orders = %d, want 0", len(cex.orders))
	}
}

func TestScheduler_RunStopsOnContextCancel(t *testing.T) {
	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			return nil, apperror.New(apperror.CodeInsufficientLiquidity)
		},
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	s := newTestScheduler(t, dex, cex, &fakeAlerter{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
