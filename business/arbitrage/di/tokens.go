// Package di contains dependency injection tokens for the arbitrage context.
package di

import (
	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/app"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/di"
)

// Public service tokens - exposed to other modules
var (
	Scheduler = di.NewToken[*app.Scheduler]("arbitrage.Scheduler")
)

// Private dependency tokens - internal to arbitrage module
var (
	Evaluator    = di.NewToken[*app.Evaluator]("arbitrage:evaluator")
	SearchDriver = di.NewToken[*app.SearchDriver]("arbitrage:searchDriver")
	Executor     = di.NewToken[*app.Executor]("arbitrage:executor")
	Alerter      = di.NewToken[app.Alerter]("arbitrage:alerter")
	HistoryStore = di.NewToken[app.HistoryStore]("arbitrage:historyStore")
)

// Helper functions for type-safe access
func GetScheduler(c di.ServiceRegistry) *app.Scheduler {
	return di.GetToken(c, Scheduler)
}

func GetEvaluator(c di.ServiceRegistry) *app.Evaluator {
	return di.GetToken(c, Evaluator)
}

func GetSearchDriver(c di.ServiceRegistry) *app.SearchDriver {
	return di.GetToken(c, SearchDriver)
}

func GetExecutor(c di.ServiceRegistry) *app.Executor {
	return di.GetToken(c, Executor)
}

func GetAlerter(c di.ServiceRegistry) app.Alerter {
	return di.GetToken(c, Alerter)
}

func GetHistoryStore(c di.ServiceRegistry) app.HistoryStore {
	return di.GetToken(c, HistoryStore)
}
