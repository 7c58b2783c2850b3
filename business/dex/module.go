// Package dex implements the on-chain venue bounded context for GalaSwap.
package dex

import (
	"context"
	"time"

	"github.com/Tariq3654467/trading-bot-galaswap/business/dex/app"
	dexDI "github.com/Tariq3654467/trading-bot-galaswap/business/dex/di"
	"github.com/Tariq3654467/trading-bot-galaswap/business/dex/infra/galaswap"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/config"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/di"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/monolith"
)

// Module implements the dex bounded context.
type Module struct{}

// RegisterServices registers all dex services with the DI container.
func (m *Module) RegisterServices(c di.Container) error {
	// One client backs all three ports; register it once and alias.
	clientToken := di.NewToken[*galaswap.Client]("dex:galaswapClient")

	di.RegisterToken(c, clientToken, func(sr di.ServiceRegistry) *galaswap.Client {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)
		registry := sr.Get("assetRegistry").(*asset.Registry)

		clientCfg := galaswap.ClientConfig{
			GatewayURL:        cfg.GalaSwap.GatewayURL,
			WalletAddress:     cfg.GalaSwap.WalletAddress,
			PrivateKey:        cfg.GalaSwap.PrivateKey,
			FeeTiers:          cfg.GalaSwap.FeeTiers,
			RequestsPerMinute: cfg.GalaSwap.RequestsPerMinute,
			RequestTimeout:    cfg.GalaSwap.RequestTimeout,
		}

		client, err := galaswap.NewClient(clientCfg, registry, log)
		if err != nil {
			panic("failed to create galaswap client: " + err.Error())
		}
		return client
	})

	di.RegisterToken(c, dexDI.QuoteProvider, func(sr di.ServiceRegistry) app.QuoteProvider {
		return di.GetToken(sr, clientToken)
	})

	di.RegisterToken(c, dexDI.SwapService, func(sr di.ServiceRegistry) app.SwapService {
		return di.GetToken(sr, clientToken)
	})

	di.RegisterToken(c, dexDI.BalanceProvider, func(sr di.ServiceRegistry) app.BalanceProvider {
		return di.GetToken(sr, clientToken)
	})

	// Register DexService (public - exposed to other modules)
	di.RegisterToken(c, dexDI.DexService, func(sr di.ServiceRegistry) *app.DexService {
		cfg := sr.Get("config").(*config.Config)
		log := sr.Get("logger").(logger.LoggerInterface)

		return app.NewDexService(
			dexDI.GetQuoteProvider(sr),
			dexDI.GetSwapService(sr),
			dexDI.GetBalanceProvider(sr),
			log,
			cfg.App.DryRun,
		)
	})

	return nil
}

// Startup initializes the dex module.
func (m *Module) Startup(ctx context.Context, mono monolith.Monolith) error {
	log := mono.Logger()
	cfg := mono.Config()

	// Probe wallet balances so a bad wallet config surfaces at startup
	// rather than mid-cycle. Failures are logged, not fatal.
	if cfg.GalaSwap.WalletAddress != "" || cfg.GalaSwap.PrivateKey != "" {
		svc := dexDI.GetDexService(mono.Services())

		probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		balances, err := svc.Balances(probeCtx)
		if err != nil {
			log.Warn(ctx, "galaswap balance probe failed, continuing", "error", err)
		} else {
			log.Info(ctx, "galaswap wallet reachable", "tokens", len(balances))
		}
	}

	log.Info(ctx, "dex module started")
	return nil
}
