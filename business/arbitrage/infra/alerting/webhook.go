// Package alerting delivers operator notifications.
package alerting

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Tariq3654467/trading-bot-galaswap/business/arbitrage/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/httpclient"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
)

// WebhookAlerter posts alerts to a Slack-compatible webhook. Repeats of
// the same alert kind inside minInterval are dropped so a flapping venue
// cannot flood the channel; unbalanced-position alerts are never
// throttled.
type WebhookAlerter struct {
	http        httpclient.Client
	url         string
	minInterval time.Duration
	logger      logger.LoggerInterface

	mu       sync.Mutex
	lastSent map[domain.AlertKind]time.Time
}

// NewWebhookAlerter creates a webhook alerter.
func NewWebhookAlerter(url string, minInterval time.Duration, log logger.LoggerInterface) (*WebhookAlerter, error) {
	client, err := httpclient.NewInstrumentedClient(
		httpclient.WithVenueName("alert-webhook"),
		httpclient.WithRequestTimeout(10*time.Second),
	)
	if err != nil {
		return nil, err
	}

	return &WebhookAlerter{
		http:        client,
		url:         url,
		minInterval: minInterval,
		logger:      log,
		lastSent:    make(map[domain.AlertKind]time.Time),
	}, nil
}

type webhookPayload struct {
	Text string `json:"text"`
}

// Alert posts the alert. Delivery failures are logged and dropped; an
// alert must never take the trading loop down with it.
func (a *WebhookAlerter) Alert(ctx context.Context, alert domain.Alert) {
	if a.throttled(alert) {
		a.logger.Debug(ctx, "alert throttled", "kind", string(alert.Kind))
		return
	}

	resp, err := a.http.NewRequest().
		SetBody(webhookPayload{Text: formatAlert(alert)}).
		Post(ctx, a.url)
	if err != nil {
		a.logger.Error(ctx, "alert delivery failed",
			"kind", string(alert.Kind), "error", err.Error())
		return
	}
	if resp.IsError() {
		a.logger.Error(ctx, "alert webhook rejected",
			"kind", string(alert.Kind), "status", resp.StatusCode)
	}
}

func (a *WebhookAlerter) throttled(alert domain.Alert) bool {
	if alert.Kind == domain.AlertUnbalancedPosition {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if last, ok := a.lastSent[alert.Kind]; ok && alert.At.Sub(last) < a.minInterval {
		return true
	}
	a.lastSent[alert.Kind] = alert.At
	return false
}

func formatAlert(alert domain.Alert) string {
	var b strings.Builder
	fmt.Fprintf(&b, ":rotating_light: *%s*\n%s", alert.Kind, alert.Message)

	keys := make([]string, 0, len(alert.Fields))
	for k := range alert.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "\n• %s: `%s`", k, alert.Fields[k])
	}
	return b.String()
}
