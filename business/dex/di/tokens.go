// Package di contains dependency injection tokens for the dex context.
package di

import (
	"github.com/Tariq3654467/trading-bot-galaswap/business/dex/app"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/di"
)

// Public service tokens - exposed to other modules
var (
	DexService = di.NewToken[*app.DexService]("dex.DexService")
)

// Private dependency tokens - internal to dex module
var (
	QuoteProvider   = di.NewToken[app.QuoteProvider]("dex:quoteProvider")
	SwapService     = di.NewToken[app.SwapService]("dex:swapService")
	BalanceProvider = di.NewToken[app.BalanceProvider]("dex:balanceProvider")
)

// Helper functions for type-safe access
func GetDexService(c di.ServiceRegistry) *app.DexService {
	return di.GetToken(c, DexService)
}

func GetQuoteProvider(c di.ServiceRegistry) app.QuoteProvider {
	return di.GetToken(c, QuoteProvider)
}

func GetSwapService(c di.ServiceRegistry) app.SwapService {
	return di.GetToken(c, SwapService)
}

func GetBalanceProvider(c di.ServiceRegistry) app.BalanceProvider {
	return di.GetToken(c, BalanceProvider)
}
