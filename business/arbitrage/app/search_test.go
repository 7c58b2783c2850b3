package app

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	cexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
	dexdomain "github.com/Tariq3654467/trading-bot-galaswap/business/dex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apperror"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

func sizes(values ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromInt(v)
	}
	return out
}

func galaBalance(t *testing.T, quantity string) []dexdomain.Balance {
	t.Helper()
	amt, err := asset.ParseString(asset.GALA, quantity)
	if err != nil {
		t.Fatal(err)
	}
	return []dexdomain.Balance{{Asset: asset.GALA, Quantity: amt}}
}

// quotesBySize returns a quoteFn keyed on the input amount. With a unit
// exchange price, zero fees and the 0.05% tier, an output of
// size*1.0005+target nets exactly target.
func quotesBySize(outBySize map[string]string) func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
	return func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
		out, ok := outBySize[amountIn.WireString()]
		if !ok {
			return nil, apperror.New(apperror.CodeInsufficientLiquidity)
		}
		return stableQuote(tokenIn, tokenOut, amountIn, out, 500), nil
	}
}

func newTestDriver(t *testing.T, dex *fakeDex, cex *fakeCex, cfg SearchConfig, breaker *domain.LiquidityBreaker) *SearchDriver {
	t.Helper()
	if breaker == nil {
		breaker = domain.NewLiquidityBreaker(3, 10*time.Minute)
	}
	eval := NewEvaluator(dex, cex, cfg.Quote, decimal.Zero, testLogger())
	return NewSearchDriver(eval, dex, cex, breaker, cfg, testLogger())
}

func TestSearchDriver_PicksHighestProfitAcrossSizes(t *testing.T) {
	dex := &fakeDex{
		quoteFn: quotesBySize(map[string]string{
			"100": "102.05", // nets 2
			"200": "205.1",  // nets 5
			"300": "303.15", // nets 3
			"400": "408.2",  // nets 8
			"500": "501.25", // nets 1
		}),
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	driver := newTestDriver(t, dex, cex, SearchConfig{
		Pairs:      []domain.Pair{galaUsdtPair(t)},
		TradeSizes: sizes(100, 200, 300, 400, 500),
		MinProfit:  decimal.NewFromInt(1),
	}, nil)

	best := driver.FindBest(context.Background())
	if best == nil {
		t.Fatal("expected an opportunity")
	}
	if !best.NetProfit.Equal(decimal.NewFromInt(8)) {
		t.Errorf("NetProfit = %s, want 8", best.NetProfit)
	}
	if best.TradeSize.WireString() != "400" {
		t.Errorf("TradeSize = %s, want 400", best.TradeSize.WireString())
	}
}

func TestSearchDriver_FirstFoundWinsTies(t *testing.T) {
	dex := &fakeDex{
		quoteFn: quotesBySize(map[string]string{
			"100": "105.05", // nets 5
			"200": "205.1",  // nets 5
		}),
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	driver := newTestDriver(t, dex, cex, SearchConfig{
		Pairs:      []domain.Pair{galaUsdtPair(t)},
		TradeSizes: sizes(100, 200),
		MinProfit:  decimal.NewFromInt(1),
	}, nil)

	best := driver.FindBest(context.Background())
	if best == nil {
		t.Fatal("expected an opportunity")
	}
	if best.TradeSize.WireString() != "100" {
		t.Errorf("TradeSize = %s, want the first-found 100", best.TradeSize.WireString())
	}
}

func TestSearchDriver_FallsThroughToAlternateIntermediate(t *testing.T) {
	registry := asset.DefaultRegistry()
	primary, err := domain.ParsePair("GALA-GUSDC", registry)
	if err != nil {
		t.Fatal(err)
	}

	// The configured GUSDC pool is dry; the GUSDT alternate fills at 1000.
	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			if tokenOut.Symbol() == "GUSDC" {
				return nil, apperror.New(apperror.CodeInsufficientLiquidity)
			}
			return stableQuote(tokenIn, tokenOut, amountIn, "1050.5", 500), nil
		},
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	breaker := domain.NewLiquidityBreaker(3, 10*time.Minute)
	driver := newTestDriver(t, dex, cex, SearchConfig{
		Pairs:      []domain.Pair{primary},
		Alternates: []*asset.Asset{asset.GUSDT},
		TradeSizes: sizes(1000),
		MinProfit:  decimal.NewFromInt(1),
	}, breaker)

	best := driver.FindBest(context.Background())
	if best == nil {
		t.Fatal("expected the alternate pair to produce an opportunity")
	}
	if best.Pair.Label() != "GALA-GUSDT" {
		t.Errorf("pair = %s, want GALA-GUSDT", best.Pair.Label())
	}
	if got := breaker.Failures(primary.Key()); got != 1 {
		t.Errorf("primary pair failure count = %d, want 1", got)
	}
}

func TestSearchDriver_NilWhenBestIsBelowThreshold(t *testing.T) {
	dex := &fakeDex{
		quoteFn: quotesBySize(map[string]string{
			"100": "90", // nets roughly -10
		}),
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	driver := newTestDriver(t, dex, cex, SearchConfig{
		Pairs:      []domain.Pair{galaUsdtPair(t)},
		TradeSizes: sizes(100),
		MinProfit:  decimal.NewFromInt(1),
	}, nil)

	if best := driver.FindBest(context.Background()); best != nil {
		t.Fatalf("expected nil, got opportunity with profit %s", best.NetProfit)
	}
}

func TestSearchDriver_LossToleranceOverride(t *testing.T) {
	// Nets -0.25: below threshold, but inside a 0.5 loss tolerance.
	dex := &fakeDex{
		quoteFn: quotesBySize(map[string]string{
			"100": "99.8", // nets -0.25 after the 0.05 pool fee
		}),
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	driver := newTestDriver(t, dex, cex, SearchConfig{
		Pairs:         []domain.Pair{galaUsdtPair(t)},
		TradeSizes:    sizes(100),
		MinProfit:     decimal.NewFromInt(1),
		LossTolerance: decimal.RequireFromString("0.5"),
	}, nil)

	best := driver.FindBest(context.Background())
	if best == nil {
		t.Fatal("expected the loss-tolerance override to surface the candidate")
	}
	if !best.NetProfit.Equal(decimal.RequireFromString("-0.25")) {
		t.Errorf("NetProfit = %s, want -0.25", best.NetProfit)
	}
}

func TestSearchDriver_BreakerSkipsPairAndRetriesLater(t *testing.T) {
	dex := &fakeDex{
		quoteFn: func(tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*dexdomain.Quote, error) {
			return nil, apperror.New(apperror.CodeInsufficientLiquidity)
		},
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	breaker := domain.NewLiquidityBreaker(3, 10*time.Minute)
	driver := newTestDriver(t, dex, cex, SearchConfig{
		Pairs:      []domain.Pair{galaUsdtPair(t)},
		TradeSizes: sizes(100),
		MinProfit:  decimal.NewFromInt(1),
	}, breaker)

	current := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	driver.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		driver.FindBest(context.Background())
	}
	if dex.quoteCalls != 3 {
		t.Fatalf("quote calls after 3 cycles = %d, want 3", dex.quoteCalls)
	}

	// Breaker is open: the next cycles must not touch the venue.
	driver.FindBest(context.Background())
	if dex.quoteCalls != 3 {
		t.Fatalf("quote calls while open = %d, want 3", dex.quoteCalls)
	}

	// After the retry interval the pair gets one provisional attempt.
	current = current.Add(11 * time.Minute)
	driver.FindBest(context.Background())
	if dex.quoteCalls != 4 {
		t.Fatalf("quote calls after retry interval = %d, want 4", dex.quoteCalls)
	}
}

func TestSearchDriver_ReverseDirectionWhenOnlyExchangeIsFunded(t *testing.T) {
	dex := &fakeDex{
		quoteFn: quotesBySize(map[string]string{
			"100": "105.05", // nets 5
		}),
	}
	cex := &fakeCex{
		priceFn: fixedPrice("1"),
		feeRate: decimal.Zero,
		balances: map[string]cexdomain.Balance{
			"USDT": {Asset: "USDT", Free: decimal.NewFromInt(10000)},
		},
	}

	driver := newTestDriver(t, dex, cex, SearchConfig{
		Pairs:      []domain.Pair{galaUsdtPair(t)},
		TradeSizes: sizes(100),
		MinProfit:  decimal.NewFromInt(1),
	}, nil)

	best := driver.FindBest(context.Background())
	if best == nil {
		t.Fatal("expected an opportunity funded from the exchange")
	}
	if best.Direction != domain.DirectionCexToDex {
		t.Errorf("Direction = %s, want %s", best.Direction, domain.DirectionCexToDex)
	}
}

func TestSearchDriver_PositionCapStopsLadder(t *testing.T) {
	dex := &fakeDex{
		quoteFn: quotesBySize(map[string]string{
			"100": "105.05",
			"200": "205.1",
			"300": "305.15",
		}),
		balances: galaBalance(t, "100000"),
	}
	cex := &fakeCex{priceFn: fixedPrice("1"), feeRate: decimal.Zero}

	driver := newTestDriver(t, dex, cex, SearchConfig{
		Pairs:          []domain.Pair{galaUsdtPair(t)},
		TradeSizes:     sizes(100, 200, 300),
		MinProfit:      decimal.NewFromInt(1),
		MaxPositionUSD: decimal.NewFromInt(250),
	}, nil)

	best := driver.FindBest(context.Background())
	if best == nil {
		t.Fatal("expected an opportunity")
	}
	if dex.quoteCalls != 2 {
		t.Errorf("quote calls = %d, want 2 (300 exceeds the USD cap)", dex.quoteCalls)
	}
	if best.TradeSize.WireString() != "200" {
		t.Errorf("TradeSize = %s, want 200", best.TradeSize.WireString())
	}
}
