// Package binance implements the cex ports against a Binance-compatible REST API.
package binance

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apm"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apperror"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/circuitbreaker"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/httpclient"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/ratelimit"
)

const (
	tracerName = "binance-rest"

	tickerPath  = "/api/v3/ticker/price"
	accountPath = "/api/v3/account"
	orderPath   = "/api/v3/order"
)

// RESTConfig holds Binance REST client configuration.
type RESTConfig struct {
	BaseURL           string
	APIKey            string
	APISecret         string
	RequestsPerMinute int
}

// RESTClient is a minimal signed Binance REST client. It implements the
// cex context's PriceProvider and TradingClient ports.
type RESTClient struct {
	http    httpclient.Client
	apiKey  string
	secret  []byte
	limiter *ratelimit.Limiter
	cb      *circuitbreaker.CircuitBreaker[*httpclient.Response]
	logger  logger.LoggerInterface
	tracer  apm.Tracer
}

// NewRESTClient creates a new Binance REST client.
func NewRESTClient(cfg RESTConfig, log logger.LoggerInterface) (*RESTClient, error) {
	headers := map[string]string{}
	if cfg.APIKey != "" {
		headers["X-MBX-APIKEY"] = cfg.APIKey
	}

	httpClient, err := httpclient.NewInstrumentedClient(
		httpclient.WithBaseURL(cfg.BaseURL),
		httpclient.WithVenueName("binance"),
		httpclient.WithHeaders(headers),
	)
	if err != nil {
		return nil, err
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 1200
	}

	c := &RESTClient{
		http:    httpClient,
		apiKey:  cfg.APIKey,
		secret:  []byte(cfg.APISecret),
		limiter: ratelimit.New(rpm),
		logger:  log,
		tracer:  apm.NewTracer(tracerName),
	}

	c.cb = circuitbreaker.New[*httpclient.Response](circuitbreaker.DefaultConfig("binance-rest"))

	return c, nil
}

type tickerDTO struct {
	Symbol string `json:"symbol"`
	Price  string `json:"price"`
}

// GetPrice returns the last price for a symbol.
func (c *RESTClient) GetPrice(ctx context.Context, symbol string) (*domain.Ticker, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var dto tickerDTO
	resp, err := c.cb.Execute(func() (*httpclient.Response, error) {
		return c.http.NewRequest().
			SetQueryParam("symbol", symbol).
			SetResult(&dto).
			Get(ctx, tickerPath)
	})
	if err != nil {
		return nil, apperror.New(apperror.CodeExchangeConnectionFailed, apperror.WithCause(err))
	}

	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(dto.Price)
	if err != nil || !price.IsPositive() {
		return nil, apperror.New(apperror.CodePriceUnavailable,
			apperror.WithMessage(fmt.Sprintf("bad price %q for %s", dto.Price, symbol)))
	}

	return &domain.Ticker{
		Symbol:     symbol,
		Price:      price,
		ObservedAt: time.Now(),
	}, nil
}

type accountDTO struct {
	Balances []struct {
		Asset  string `json:"asset"`
		Free   string `json:"free"`
		Locked string `json:"locked"`
	} `json:"balances"`
}

// GetBalances returns the account's non-zero balances.
func (c *RESTClient) GetBalances(ctx context.Context) (map[string]domain.Balance, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var dto accountDTO
	resp, err := c.cb.Execute(func() (*httpclient.Response, error) {
		return c.http.NewRequest().
			SetQueryParams(c.sign(nil)).
			SetResult(&dto).
			Get(ctx, accountPath)
	})
	if err != nil {
		return nil, apperror.New(apperror.CodeExchangeConnectionFailed, apperror.WithCause(err))
	}

	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}

	balances := make(map[string]domain.Balance)
	for _, b := range dto.Balances {
		free, err1 := decimal.NewFromString(b.Free)
		locked, err2 := decimal.NewFromString(b.Locked)
		if err1 != nil || err2 != nil {
			continue
		}
		if free.IsZero() && locked.IsZero() {
			continue
		}
		balances[b.Asset] = domain.Balance{Asset: b.Asset, Free: free, Locked: locked}
	}

	return balances, nil
}

type orderResultDTO struct {
	OrderID     int64  `json:"orderId"`
	Status      string `json:"status"`
	ExecutedQty string `json:"executedQty"`
}

// ExecuteTrade submits a signed order.
func (c *RESTClient) ExecuteTrade(ctx context.Context, order domain.Order) (*domain.OrderResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "binance.execute_trade",
		trace.WithAttributes(
			attribute.String("symbol", order.Symbol),
			attribute.String("side", string(order.Side)),
			attribute.String("type", string(order.Type)),
			attribute.String("quantity", order.Quantity.String()),
		))
	defer span.End()

	params := map[string]string{
		"symbol":   order.Symbol,
		"side":     string(order.Side),
		"type":     string(order.Type),
		"quantity": order.Quantity.String(),
	}
	if order.Type == domain.OrderTypeLimit {
		params["price"] = order.Price.String()
		params["timeInForce"] = "GTC"
	}

	var dto orderResultDTO
	resp, err := c.cb.Execute(func() (*httpclient.Response, error) {
		return c.http.NewRequest().
			SetQueryParams(c.sign(params)).
			SetResult(&dto).
			Post(ctx, orderPath)
	})
	if err != nil {
		span.NoticeError(err)
		return nil, apperror.New(apperror.CodeExchangeConnectionFailed, apperror.WithCause(err))
	}

	if err := c.checkResponse(resp); err != nil {
		span.NoticeError(err)
		return nil, apperror.Wrap(err, apperror.CodeOrderExecutionFailed, order.Symbol)
	}

	span.SetAttributes(attribute.String("order_status", dto.Status))

	executedQty, err := decimal.NewFromString(dto.ExecutedQty)
	if err != nil {
		executedQty = decimal.Zero
	}

	return &domain.OrderResult{
		OrderID:     strconv.FormatInt(dto.OrderID, 10),
		Status:      dto.Status,
		ExecutedQty: executedQty,
	}, nil
}

// sign appends the timestamp and HMAC signature required by signed
// endpoints.
func (c *RESTClient) sign(params map[string]string) map[string]string {
	signed := make(map[string]string, len(params)+2)
	for k, v := range params {
		signed[k] = v
	}
	signed["timestamp"] = strconv.FormatInt(time.Now().UnixMilli(), 10)

	values := url.Values{}
	for k, v := range signed {
		values.Set(k, v)
	}

	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(values.Encode()))
	signed["signature"] = hex.EncodeToString(mac.Sum(nil))

	return signed
}

func (c *RESTClient) checkResponse(resp *httpclient.Response) error {
	if resp == nil {
		return apperror.New(apperror.CodeExchangeAPIError, apperror.WithMessage("empty response"))
	}
	if resp.StatusCode == 429 || resp.StatusCode == 418 {
		return apperror.New(apperror.CodeExchangeRateLimited, apperror.WithMessage(resp.String()))
	}
	if resp.IsError() {
		return apperror.New(apperror.CodeExchangeAPIError,
			apperror.WithMessage(fmt.Sprintf("exchange error (status %d): %s", resp.StatusCode, resp.String())))
	}
	return nil
}
