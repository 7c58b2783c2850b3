package app

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	cexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
	dexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/dex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
)

func testLogger() logger.LoggerInterface {
	return logger.New(io.Discard, logger.LevelError, "test", nil)
}

// fakeDex implements DexClient.
type fakeDex struct {
	quoteFn     func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error)
	swapFn      func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.SwapReceipt, error)
	balances    []dexdomain.Balance
	balancesErr error

	quoteCalls int
	swapCalls  int
}

func (f *fakeDex) BestQuote(_ context.Context, tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
	f.quoteCalls++
	return f.quoteFn(tokenIn, tokenOut, amountIn)
}

func (f *fakeDex) Swap(_ context.Context, tokenIn, tokenOut *asset.Asset, amountIn, _ asset.Amount, _ int) (*dexdomain.SwapReceipt, error) {
	f.swapCalls++
	if f.swapFn != nil {
		return f.swapFn(tokenIn, tokenOut, amountIn)
	}
	return &dexdomain.SwapReceipt{
		TransactionID: "tx-1",
		TokenIn:       tokenIn,
		TokenOut:      tokenOut,
		AmountIn:      amountIn,
		SubmittedAt:   time.Now(),
	}, nil
}

func (f *fakeDex) Balances(context.Context) ([]dexdomain.Balance, error) {
	return f.balances, f.balancesErr
}

// fakeCex implements ExchangeClient.
type fakeCex struct {
	priceFn  func(symbol string) (*cexdomain.Ticker, error)
	tradeFn  func(order cexdomain.Order) (*cexdomain.OrderResult, error)
	balances map[string]cexdomain.Balance
	feeMode  cexdomain.FeeMode
	feeRate  decimal.Decimal

	orders []cexdomain.Order
}

func (f *fakeCex) GetPrice(_ context.Context, symbol string) (*cexdomain.Ticker, error) {
	return f.priceFn(symbol)
}

func (f *fakeCex) GetBalances(context.Context) (map[string]cexdomain.Balance, error) {
	return f.balances, nil
}

func (f *fakeCex) ExecuteTrade(_ context.Context, order cexdomain.Order) (*cexdomain.OrderResult, error) {
	f.orders = append(f.orders, order)
	if f.tradeFn != nil {
		return f.tradeFn(order)
	}
	return &cexdomain.OrderResult{OrderID: "ord-1", Status: "FILLED", ExecutedQty: order.Quantity}, nil
}

func (f *fakeCex) FeeMode() cexdomain.FeeMode {
	if f.feeMode == "" {
		return cexdomain.FeeModeTaker
	}
	return f.feeMode
}

func (f *fakeCex) FeeRate() decimal.Decimal {
	return f.feeRate
}

// fixedPrice returns a priceFn serving one price for every symbol.
func fixedPrice(price string) func(string) (*cexdomain.Ticker, error) {
	p := decimal.RequireFromString(price)
	return func(symbol string) (*cexdomain.Ticker, error) {
		return &cexdomain.Ticker{Symbol: symbol, Price: p, ObservedAt: time.Now()}, nil
	}
}

// fakeAlerter implements Alerter.
type fakeAlerter struct {
	alerts []domain.Alert
}

func (f *fakeAlerter) Alert(_ context.Context, alert domain.Alert) {
	f.alerts = append(f.alerts, alert)
}

func (f *fakeAlerter) count(kind domain.AlertKind) int {
	n := 0
	for _, a := range f.alerts {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// fakeHistory implements HistoryStore.
type fakeHistory struct {
	records []domain.ExecutionRecord
}

func (f *fakeHistory) Record(_ context.Context, rec domain.ExecutionRecord) error {
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeHistory) Recent(_ context.Context, limit int) ([]domain.ExecutionRecord, error) {
	if limit > len(f.records) {
		limit = len(f.records)
	}
	return f.records[:limit], nil
}

// stableQuote builds a quote returning amountOut of the intermediate.
func stableQuote(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount, amountOut string, tier int) *dexdomain.Quote {
	out, err := asset.ParseString(tokenOut, amountOut)
	if err != nil {
		panic(err)
	}
	return &dexdomain.Quote{
		TokenIn:    tokenIn,
		TokenOut:   tokenOut,
		AmountIn:   amountIn,
		AmountOut:  out,
		FeeTier:    tier,
		ObservedAt: time.Now(),
	}
}
