package app

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
)

// SearchConfig bounds the candidate space the driver explores each cycle.
type SearchConfig struct {
	Pairs          []domain.Pair
	Alternates     []*asset.Asset // stable intermediates tried after the configured ones
	Quote          *asset.Asset   // exchange quote currency, GUSDT when nil
	TradeSizes     []decimal.Decimal
	MinProfit      decimal.Decimal
	LossTolerance  decimal.Decimal // 0 disables the sub-threshold override
	MaxPositionUSD decimal.Decimal
}

// SearchDriver walks pairs and trade sizes each cycle and returns the
// single most profitable opportunity, or nil when nothing clears the
// threshold. Every per-candidate failure is swallowed; a cycle never
// errors out.
type SearchDriver struct {
	evaluator *Evaluator
	dex       DexClient
	cex       ExchangeClient
	breaker   *domain.LiquidityBreaker
	cfg       SearchConfig
	logger    logger.LoggerInterface
	now       func() time.Time
}

// NewSearchDriver creates a new SearchDriver.
func NewSearchDriver(
	evaluator *Evaluator,
	dex DexClient,
	cex ExchangeClient,
	breaker *domain.LiquidityBreaker,
	cfg SearchConfig,
	log logger.LoggerInterface,
) *SearchDriver {
	return &SearchDriver{
		evaluator: evaluator,
		dex:       dex,
		cex:       cex,
		breaker:   breaker,
		cfg:       cfg,
		logger:    log,
		now:       time.Now,
	}
}

// FindBest scans all candidates and returns the best opportunity that
// meets the minimum profit, or nil. Replacement requires strictly
// greater profit, so among equals the first one found wins.
func (s *SearchDriver) FindBest(ctx context.Context) *domain.Opportunity {
	dexBalances := s.dexBalances(ctx)
	cexBalances := s.cexBalances(ctx)

	var best *domain.Opportunity

	for _, pair := range s.candidatePairs() {
		now := s.now()
		if !s.breaker.Allow(pair.Key(), now) {
			s.logger.Debug(ctx, "skipping pair, breaker open", "pair", pair.Label())
			continue
		}

		price, ok := s.sourcePrice(ctx, pair)
		if !ok {
			continue
		}

		var quoteSucceeded, liquidityFailed bool

		for _, size := range s.cfg.TradeSizes {
			candidate, direction, ok := s.fundedCandidate(pair, size, price, dexBalances, cexBalances)
			if !ok {
				// Sizes ascend, so nothing larger is fundable either.
				break
			}

			result := s.evaluator.Evaluate(ctx, pair, direction, candidate)
			if result.OK() {
				quoteSucceeded = true
				if result.Opportunity.BetterThan(best) {
					best = result.Opportunity
				}
				continue
			}
			if result.Failure == domain.FailureLiquidity {
				// Larger sizes need more depth; stop climbing this pair.
				liquidityFailed = true
				break
			}
			if result.Failure == domain.FailurePriceUnavailable {
				// Pair-wide condition, not worth retrying at other sizes.
				break
			}
			// Transport blips are per-request; try the next size.
		}

		switch {
		case quoteSucceeded:
			s.breaker.RecordSuccess(pair.Key())
		case liquidityFailed:
			s.breaker.RecordFailure(pair.Key(), s.now())
			s.logger.Info(ctx, "liquidity failure recorded",
				"pair", pair.Label(),
				"consecutive", s.breaker.Failures(pair.Key()))
		}
	}

	if best == nil {
		return nil
	}
	if best.MeetsThreshold(s.cfg.MinProfit) {
		return best
	}
	if s.cfg.LossTolerance.IsPositive() && best.WithinLossTolerance(s.cfg.LossTolerance) {
		s.logger.Warn(ctx, "executing sub-threshold candidate under loss tolerance",
			"pair", best.Pair.Label(),
			"net_profit", best.NetProfit.String(),
			"loss_tolerance", s.cfg.LossTolerance.String())
		return best
	}

	s.logger.Info(ctx, "best candidate below threshold",
		"pair", best.Pair.Label(),
		"direction", best.Direction.String(),
		"size", best.TradeSize.WireString(),
		"net_profit", best.NetProfit.String(),
		"min_profit", s.cfg.MinProfit.String())
	return nil
}

// candidatePairs returns the configured pairs followed by alternate
// stable-intermediate variants of each, deduplicated.
func (s *SearchDriver) candidatePairs() []domain.Pair {
	seen := make(map[string]struct{}, len(s.cfg.Pairs))
	pairs := make([]domain.Pair, 0, len(s.cfg.Pairs)*2)

	for _, pair := range s.cfg.Pairs {
		if _, ok := seen[pair.Key()]; ok {
			continue
		}
		seen[pair.Key()] = struct{}{}
		pairs = append(pairs, pair)
	}
	for _, pair := range s.cfg.Pairs {
		for _, alt := range s.cfg.Alternates {
			if alt.Equals(pair.Source) {
				continue
			}
			variant := pair.WithIntermediate(alt)
			if _, ok := seen[variant.Key()]; ok {
				continue
			}
			seen[variant.Key()] = struct{}{}
			pairs = append(pairs, variant)
		}
	}
	return pairs
}

// fundedCandidate decides whether the given size is fundable, and from
// which venue. The on-chain balance funds the forward direction; the
// exchange's quote-currency balance funds the reverse. Either way the
// position is capped in USD terms.
func (s *SearchDriver) fundedCandidate(
	pair domain.Pair,
	size decimal.Decimal,
	price decimal.Decimal,
	dexBalances map[string]decimal.Decimal,
	cexBalances map[string]decimal.Decimal,
) (asset.Amount, domain.Direction, bool) {
	if s.cfg.MaxPositionUSD.IsPositive() && size.Mul(price).GreaterThan(s.cfg.MaxPositionUSD) {
		return asset.Amount{}, "", false
	}

	amount, err := asset.ParseDecimal(pair.Source, size)
	if err != nil {
		return asset.Amount{}, "", false
	}

	if dexBalances[pair.Source.Key().String()].GreaterThanOrEqual(size) {
		return amount, domain.DirectionDexToCex, true
	}

	quoteNeeded := size.Mul(price)
	if cexBalances[asset.ExchangeSymbol(s.quoteAsset())].GreaterThanOrEqual(quoteNeeded) {
		return amount, domain.DirectionCexToDex, true
	}

	return asset.Amount{}, "", false
}

// quoteAsset returns the exchange quote currency.
func (s *SearchDriver) quoteAsset() *asset.Asset {
	if s.cfg.Quote == nil {
		return asset.GUSDT
	}
	return s.cfg.Quote
}

// sourcePrice fetches the exchange price used for USD position capping.
func (s *SearchDriver) sourcePrice(ctx context.Context, pair domain.Pair) (decimal.Decimal, bool) {
	ticker, err := s.cex.GetPrice(ctx, asset.PairSymbol(pair.Source, s.quoteAsset()))
	if err != nil || !ticker.Price.IsPositive() {
		s.logger.Debug(ctx, "no exchange price for pair", "pair", pair.Label())
		return decimal.Zero, false
	}
	return ticker.Price, true
}

func (s *SearchDriver) dexBalances(ctx context.Context) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	balances, err := s.dex.Balances(ctx)
	if err != nil {
		s.logger.Warn(ctx, "dex balance fetch failed", "error", err.Error())
		return out
	}
	for _, b := range balances {
		out[b.Asset.Key().String()] = b.Quantity.Value()
	}
	return out
}

func (s *SearchDriver) cexBalances(ctx context.Context) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	balances, err := s.cex.GetBalances(ctx)
	if err != nil {
		s.logger.Warn(ctx, "exchange balance fetch failed", "error", err.Error())
		return out
	}
	for symbol, b := range balances {
		out[symbol] = b.Free
	}
	return out
}
