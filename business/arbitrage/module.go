// Package arbitrage implements the opportunity search and execution context.
package arbitrage

import (
	"context"
	"database/sql"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/app"
	arbDI "github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/di"
	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/infra/alerting"
	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/infra/history"
	cexDI "github.com/Tariq3654467/trading-bot-galaswap/business/cex/di"
	dexDI "github.com/Tariq3654467/trading-bot-galaswap/business/dex/di"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/config"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/di"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/monolith"
)

// Module implements the arbitrage bounded context.
type Module struct{}

// RegisterServices registers all arbitrage services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	di.RegisterToken(c, arbDI.Alerter, func(sr di.ServiceRegistry) app.Alerter {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		if cfg.Alerts.WebhookURL == "" {
			return alerting.NewLogAlerter(log)
		}

		alerter, err := alerting.NewWebhookAlerter(cfg.Alerts.WebhookURL, cfg.Alerts.MinInterval, log)
		if err != nil {
			panic("failed to create webhook alerter: " + err.Error())
		}
		return alerter
	})

	// Only resolved when storage is enabled; the db is nil otherwise.
	di.RegisterToken(c, arbDI.HistoryStore, func(sr di.ServiceRegistry) app.HistoryStore {
		db := sr.Get("db").(*sql.DB)

		store, err := history.NewStore(context.Background(), db)
		if err != nil {
			panic("failed to create history store: " + err.Error())
		}
		return store
	})

	di.RegisterToken(c, arbDI.Evaluator, func(sr di.ServiceRegistry) *app.Evaluator {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)
		registry := sr.Get("assetRegistry").(*asset.Registry)

		return app.NewEvaluator(
			dexDI.GetDexService(sr),
			cexDI.GetExchangeService(sr),
			quoteAsset(cfg, registry),
			cfg.Arbitrage.GasFeeDecimal(),
			log,
		)
	})

	di.RegisterToken(c, arbDI.SearchDriver, func(sr di.ServiceRegistry) *app.SearchDriver {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)
		registry := sr.Get("assetRegistry").(*asset.Registry)

		pairs := make([]domain.Pair, 0, len(cfg.Arbitrage.Pairs))
		for _, raw := range cfg.Arbitrage.Pairs {
			pair, err := domain.ParsePair(raw, registry)
			if err != nil {
				panic("invalid arbitrage pair: " + err.Error())
			}
			pairs = append(pairs, pair)
		}

		breaker := domain.NewLiquidityBreaker(
			cfg.Arbitrage.BreakerMaxFailures,
			cfg.Arbitrage.BreakerRetryInterval,
		)

		return app.NewSearchDriver(
			arbDI.GetEvaluator(sr),
			dexDI.GetDexService(sr),
			cexDI.GetExchangeService(sr),
			breaker,
			app.SearchConfig{
				Pairs:          pairs,
				Alternates:     stableAssets(registry),
				Quote:          quoteAsset(cfg, registry),
				TradeSizes:     cfg.Arbitrage.TradeSizesDecimal(),
				MinProfit:      cfg.Arbitrage.MinProfitDecimal(),
				LossTolerance:  cfg.Arbitrage.LossToleranceDecimal(),
				MaxPositionUSD: cfg.Arbitrage.MaxPositionUSDDecimal(),
			},
			log,
		)
	})

	di.RegisterToken(c, arbDI.Executor, func(sr di.ServiceRegistry) *app.Executor {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		var store app.HistoryStore
		if cfg.Storage.Enabled {
			store = arbDI.GetHistoryStore(sr)
		}

		return app.NewExecutor(
			dexDI.GetDexService(sr),
			cexDI.GetExchangeService(sr),
			arbDI.GetAlerter(sr),
			store,
			log,
		)
	})

	di.RegisterToken(c, arbDI.Scheduler, func(sr di.ServiceRegistry) *app.Scheduler {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		return app.NewScheduler(
			arbDI.GetSearchDriver(sr),
			arbDI.GetExecutor(sr),
			cfg.Arbitrage.TickInterval,
			log,
		)
	})

	return nil
}

// Startup initializes the arbitrage module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	log := mono.Logger()
	cfg := mono.Config()

	log.Info(ctx, "arbitrage module started",
		"pairs", cfg.Arbitrage.Pairs,
		"trade_sizes", cfg.Arbitrage.TradeSizes,
		"min_profit", cfg.Arbitrage.MinProfit,
		"tick_interval", cfg.Arbitrage.TickInterval.String(),
		"dry_run", cfg.App.DryRun)
	return nil
}

// quoteAsset resolves the configured exchange quote currency.
func quoteAsset(cfg *config.Config, registry *asset.Registry) *asset.Asset {
	if cfg.Exchange.QuoteSymbol == "" {
		return asset.GUSDT
	}
	quote, ok := registry.GetBySymbol(cfg.Exchange.QuoteSymbol)
	if !ok {
		panic("unknown exchange.quote_symbol: " + cfg.Exchange.QuoteSymbol)
	}
	return quote
}

// stableAssets returns all stablecoins in the registry, used as
// alternate intermediates when a configured pair's pool is thin.
func stableAssets(registry *asset.Registry) []*asset.Asset {
	var out []*asset.Asset
	for _, a := range registry.All() {
		if a.IsStable() {
			out = append(out, a)
		}
	}
	return out
}
