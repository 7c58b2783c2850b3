// Package cex implements the centralized exchange bounded context.
package cex

import (
	"context"
	"strings"
	"time"

	"github.com/Tariq3654467/trading-bot-galaswap/business/cex/app"
	cexDI "github.com/Tariq3654467/trading-bot-galaswap/business/cex/di"
	"github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/business/cex/infra/binance"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/config"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/di"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/monolith"
)

// Module implements the cex bounded context.
type Module struct{}

// RegisterServices registers all cex services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	restToken := di.NewToken[*binance.RESTClient]("cex:restClient")

	di.RegisterToken(c, restToken, func(sr di.ServiceRegistry) *binance.RESTClient {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		client, err := binance.NewRESTClient(binance.RESTConfig{
			BaseURL:           cfg.Exchange.RESTURL,
			APIKey:            cfg.Exchange.APIKey,
			APISecret:         cfg.Exchange.APISecret,
			RequestsPerMinute: cfg.Exchange.RequestsPerMinute,
		}, log)
		if err != nil {
			panic("failed to create binance rest client: " + err.Error())
		}
		return client
	})

	di.RegisterToken(c, cexDI.PriceProvider, func(sr di.ServiceRegistry) app.PriceProvider {
		return di.GetToken(sr, restToken)
	})

	di.RegisterToken(c, cexDI.TradingClient, func(sr di.ServiceRegistry) app.TradingClient {
		return di.GetToken(sr, restToken)
	})

	di.RegisterToken(c, cexDI.PriceStream, func(sr di.ServiceRegistry) app.PriceStream {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)
		registry := sr.Get("assetRegistry").(*asset.Registry)

		return binance.NewTickerStream(
			cfg.Exchange.WebSocketURL,
			streamSymbols(cfg.Arbitrage.Pairs, registry),
			log,
		)
	})

	// Register ExchangeService (public - exposed to other modules)
	di.RegisterToken(c, cexDI.ExchangeService, func(sr di.ServiceRegistry) *app.ExchangeService {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		fees := domain.FeeSchedule{
			MakerRate: cfg.Exchange.MakerFeeRate(),
			TakerRate: cfg.Exchange.TakerFeeRate(),
		}

		return app.NewExchangeService(
			cexDI.GetPriceProvider(sr),
			cexDI.GetPriceStream(sr),
			cexDI.GetTradingClient(sr),
			fees,
			domain.ParseFeeMode(cfg.Exchange.FeeMode),
			cfg.Exchange.StaleTimeout,
			log,
			cfg.App.DryRun,
		)
	})

	return nil
}

// Startup initializes the cex module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	log := mono.Logger()

	// Connect the ticker stream; REST remains as fallback so a stream
	// failure is not fatal.
	stream := cexDI.GetPriceStream(mono.Services())

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := stream.Connect(connectCtx); err != nil {
		log.Warn(ctx, "ticker stream connection failed, falling back to REST prices", "error", err)
	} else {
		log.Info(ctx, "ticker stream connected")
	}

	log.Info(ctx, "cex module started")
	return nil
}

// streamSymbols maps configured pairs ("GALA-GUSDT") to exchange market
// symbols ("GALAUSDT"). Pairs with unknown assets are skipped.
func streamSymbols(pairs []string, registry *asset.Registry) []string {
	symbols := make([]string, 0, len(pairs))
	seen := make(map[string]bool)

	for _, pair := range pairs {
		parts := strings.Split(pair, "-")
		if len(parts) != 2 {
			continue
		}

		base, ok1 := registry.GetBySymbol(parts[0])
		quote, ok2 := registry.GetBySymbol(parts[1])
		if !ok1 || !ok2 {
			continue
		}

		symbol := asset.PairSymbol(base, quote)
		if !seen[symbol] {
			seen[symbol] = true
			symbols = append(symbols, symbol)
		}
	}

	return symbols
}
