package alerting

import (
	"context"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
)

// LogAlerter writes alerts to the structured log. Used when no webhook
// is configured.
type LogAlerter struct {
	logger logger.LoggerInterface
}

// NewLogAlerter creates a log-only alerter.
func NewLogAlerter(log logger.LoggerInterface) *LogAlerter {
	return &LogAlerter{logger: log}
}

// Alert logs the alert at error level.
func (a *LogAlerter) Alert(ctx context.Context, alert domain.Alert) {
	args := []any{"kind", string(alert.Kind), "message", alert.Message}
	for k, v := range alert.Fields {
		args = append(args, k, v)
	}
	a.logger.Error(ctx, "ALERT", args...)
}
