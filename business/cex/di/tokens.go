// Package di contains dependency injection tokens for the cex context.
package di

import (
	"github.com/Tariq3654467/trading-bot-galaswap/business/cex/app"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/di"
)

// Public service tokens - exposed to other modules
var (
	ExchangeService = di.NewToken[*app.ExchangeService]("cex.ExchangeService")
)

// Private dependency tokens - internal to cex module
var (
	PriceProvider = di.NewToken[app.PriceProvider]("cex:priceProvider")
	PriceStream   = di.NewToken[app.PriceStream]("cex:priceStream")
	TradingClient = di.NewToken[app.TradingClient]("cex:tradingClient")
)

// Helper functions for type-safe access
func GetExchangeService(c di.ServiceRegistry) *app.ExchangeService {
	return di.GetToken(c, ExchangeService)
}

func GetPriceProvider(c di.ServiceRegistry) app.PriceProvider {
	return di.GetToken(c, PriceProvider)
}

func GetPriceStream(c di.ServiceRegistry) app.PriceStream {
	return di.GetToken(c, PriceStream)
}

func GetTradingClient(c di.ServiceRegistry) app.TradingClient {
	return di.GetToken(c, TradingClient)
}
