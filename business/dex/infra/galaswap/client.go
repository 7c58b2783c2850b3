// Package galaswap implements the dex ports against the GalaChain DEX APIs.
package galaswap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Tariq3654467/trading-bot-galaswap/business/dex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apm"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/apperror"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/circuitbreaker"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/httpclient"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/ratelimit"
)

const (
	tracerName = "galaswap-client"

	quotePath         = "/api/asset/dexv3-contract/QuoteExactAmount"
	compositePoolPath = "/api/asset/dexv3-contract/GetCompositePool"
	swapPath          = "/api/asset/dexv3-contract/ExactInputSingle"
	balancesPath      = "/api/asset/token-contract/FetchBalances"

	swapDeadline = 5 * time.Minute
)

// ClientConfig holds GalaSwap client configuration.
type ClientConfig struct {
	GatewayURL        string
	WalletAddress     string
	PrivateKey        string
	FeeTiers          []int
	RequestsPerMinute int
	RequestTimeout    time.Duration
}

// Client talks to the GalaChain gateway. It implements the dex context's
// QuoteProvider, SwapService, and BalanceProvider ports.
type Client struct {
	http     httpclient.Client
	signer   *Signer
	wallet   string
	feeTiers []int
	limiter  *ratelimit.Limiter
	cb       *circuitbreaker.CircuitBreaker[*httpclient.Response]
	registry *asset.Registry
	logger   logger.LoggerInterface
	tracer   apm.Tracer
}

// NewClient creates a new GalaSwap client.
// The signer is optional: quote and balance reads work without a key,
// swaps do not.
func NewClient(cfg ClientConfig, registry *asset.Registry, log logger.LoggerInterface) (*Client, error) {
	httpClient, err := httpclient.NewInstrumentedClient(
		httpclient.WithBaseURL(cfg.GatewayURL),
		httpclient.WithVenueName("galaswap"),
		httpclient.WithRequestTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		return nil, err
	}

	var signer *Signer
	wallet := cfg.WalletAddress
	if cfg.PrivateKey != "" {
		signer, err = NewSigner(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		// The derived address is authoritative; the configured one is
		// display-only.
		wallet = signer.Address()
	}

	feeTiers := cfg.FeeTiers
	if len(feeTiers) == 0 {
		feeTiers = []int{500, 3000, 10000}
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 120
	}

	c := &Client{
		http:     httpClient,
		signer:   signer,
		wallet:   wallet,
		feeTiers: feeTiers,
		limiter:  ratelimit.New(rpm),
		registry: registry,
		logger:   log,
		tracer:   apm.NewTracer(tracerName),
	}

	c.cb = circuitbreaker.New[*httpclient.Response](circuitbreaker.DefaultConfig("galaswap-gateway"))

	return c, nil
}

// BestQuote quotes amountIn across all configured fee tiers and returns
// the quote with the highest output.
func (c *Client) BestQuote(ctx context.Context, tokenIn, tokenOut *asset.Asset, amountIn asset.Amount) (*domain.Quote, error) {
	ctx, span := c.tracer.Start(ctx, "galaswap.best_quote",
		trace.WithAttributes(
			attribute.String("token_in", tokenIn.Symbol()),
			attribute.String("token_out", tokenOut.Symbol()),
			attribute.String("amount_in", amountIn.WireString()),
		))
	defer span.End()

	// zeroForOne means selling token0; tokenIn is token0 exactly when the
	// pair is already in pool order.
	_, _, swapped := domain.OrderTokens(tokenIn.Key(), tokenOut.Key())
	zeroForOne := !swapped

	var (
		best         *domain.Quote
		sawLiquidity bool
		lastErr      error
	)

	for _, tier := range c.feeTiers {
		quote, err := c.quoteTier(ctx, tokenIn, tokenOut, amountIn, tier, zeroForOne)
		if err != nil {
			if apperror.IsCode(err, apperror.CodeInsufficientLiquidity) ||
				apperror.IsCode(err, apperror.CodePoolNotFound) {
				sawLiquidity = true
			}
			lastErr = err
			continue
		}

		if best == nil || quote.AmountOut.Value().GreaterThan(best.AmountOut.Value()) {
			best = quote
		}
	}

	if best == nil {
		if sawLiquidity {
			return nil, apperror.New(apperror.CodeInsufficientLiquidity,
				apperror.WithMessage(fmt.Sprintf("no tier can fill %s -> %s", tokenIn.Symbol(), tokenOut.Symbol())),
				apperror.WithCause(lastErr))
		}
		return nil, apperror.Wrap(lastErr, apperror.CodeQuoteFailed,
			fmt.Sprintf("%s -> %s", tokenIn.Symbol(), tokenOut.Symbol()))
	}

	span.SetAttributes(
		attribute.String("amount_out", best.AmountOut.WireString()),
		attribute.Int("fee_tier", best.FeeTier),
	)

	return best, nil
}

func (c *Client) quoteTier(ctx context.Context, tokenIn, tokenOut *asset.Asset, amountIn asset.Amount, tier int, zeroForOne bool) (*domain.Quote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	token0, token1 := tokenIn, tokenOut
	if !zeroForOne {
		token0, token1 = tokenOut, tokenIn
	}

	reqBody := quoteExactAmountRequest{
		Token0:     classKeyDTO(token0.Key()),
		Token1:     classKeyDTO(token1.Key()),
		ZeroForOne: zeroForOne,
		Fee:        tier,
		Amount:     amountIn.WireString(),
	}

	var result quoteExactAmountResponse
	resp, err := c.post(ctx, quotePath, reqBody, &result)
	if err != nil {
		return nil, err
	}

	if result.Data == nil {
		return nil, c.classifyFailure(resp, result.Message)
	}

	// The chain reports the output side as a negative amount.
	outStr := result.Data.Amount1
	if !zeroForOne {
		outStr = result.Data.Amount0
	}
	outStr = strings.TrimPrefix(outStr, "-")

	amountOut, err := asset.ParseString(tokenOut, outStr)
	if err != nil {
		return nil, apperror.New(apperror.CodeQuoteFailed,
			apperror.WithMessage(fmt.Sprintf("bad amount in quote response: %q", outStr)),
			apperror.WithCause(err))
	}

	if !amountOut.IsPositive() {
		return nil, apperror.New(apperror.CodeInsufficientLiquidity,
			apperror.WithMessage("quote returned zero output"))
	}

	sqrtPrice, _ := decimal.NewFromString(result.Data.CurrentSqrtPrice)

	return &domain.Quote{
		TokenIn:    tokenIn,
		TokenOut:   tokenOut,
		AmountIn:   amountIn,
		AmountOut:  amountOut,
		FeeTier:    tier,
		SqrtPrice:  sqrtPrice,
		ObservedAt: time.Now(),
	}, nil
}

// Pool fetches the composite pool snapshot for a pair and tier.
func (c *Client) Pool(ctx context.Context, a, b asset.ClassKey, feeTier int) (*domain.Pool, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	token0, token1, _ := domain.OrderTokens(a, b)

	reqBody := compositePoolRequest{
		Token0ClassKey: classKeyDTO(token0),
		Token1ClassKey: classKeyDTO(token1),
		Fee:            feeTier,
	}

	var result compositePoolResponse
	resp, err := c.post(ctx, compositePoolPath, reqBody, &result)
	if err != nil {
		return nil, err
	}

	if result.Data == nil || result.Data.Pool == nil {
		return nil, c.classifyFailure(resp, "")
	}

	sqrtPrice, _ := decimal.NewFromString(result.Data.Pool.SqrtPrice)
	liquidity, _ := decimal.NewFromString(result.Data.Pool.Liquidity)

	return &domain.Pool{
		Token0:    token0,
		Token1:    token1,
		FeeTier:   result.Data.Pool.Fee,
		SqrtPrice: sqrtPrice,
		Liquidity: liquidity,
	}, nil
}

// Swap submits a signed exact-input swap.
func (c *Client) Swap(ctx context.Context, tokenIn, tokenOut *asset.Asset, amountIn, minAmountOut asset.Amount, feeTier int) (*domain.SwapReceipt, error) {
	if c.signer == nil {
		return nil, apperror.New(apperror.CodeSigningFailed,
			apperror.WithMessage("no private key configured"))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "galaswap.swap",
		trace.WithAttributes(
			attribute.String("token_in", tokenIn.Symbol()),
			attribute.String("token_out", tokenOut.Symbol()),
			attribute.String("amount_in", amountIn.WireString()),
			attribute.Int("fee_tier", feeTier),
		))
	defer span.End()

	dto := swapDTO{
		TokenIn:          classKeyDTO(tokenIn.Key()),
		TokenOut:         classKeyDTO(tokenOut.Key()),
		Fee:              feeTier,
		AmountIn:         amountIn.WireString(),
		AmountOutMinimum: minAmountOut.WireString(),
		Deadline:         time.Now().Add(swapDeadline).Unix(),
		Recipient:        c.wallet,
	}

	signature, err := c.signer.Sign(dto)
	if err != nil {
		span.NoticeError(err)
		return nil, err
	}

	var result swapResponse
	_, err = c.post(ctx, swapPath, signedSwapRequest{DTO: dto, Signature: signature}, &result)
	if err != nil {
		span.NoticeError(err)
		return nil, apperror.Wrap(err, apperror.CodeSwapRequestFailed, tokenIn.Symbol())
	}

	txID := result.Data.TransactionID
	if txID == "" {
		txID = result.Data.Hash
	}
	if txID == "" {
		return nil, apperror.New(apperror.CodeSwapRequestFailed,
			apperror.WithMessage("swap accepted without a transaction id"))
	}

	span.SetAttributes(attribute.String("tx_id", txID))

	return &domain.SwapReceipt{
		TransactionID: txID,
		TokenIn:       tokenIn,
		TokenOut:      tokenOut,
		AmountIn:      amountIn,
		MinAmountOut:  minAmountOut,
		FeeTier:       feeTier,
		SubmittedAt:   time.Now(),
	}, nil
}

// Balances returns the wallet's token balances.
func (c *Client) Balances(ctx context.Context) ([]domain.Balance, error) {
	if c.wallet == "" {
		return nil, apperror.New(apperror.CodeBalanceFetchFailed,
			apperror.WithMessage("no wallet address configured"))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var result fetchBalancesResponse
	_, err := c.post(ctx, balancesPath, fetchBalancesRequest{Owner: c.wallet}, &result)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.CodeBalanceFetchFailed, c.wallet)
	}

	balances := make([]domain.Balance, 0, len(result.Data))
	for _, b := range result.Data {
		key := asset.NewClassKey(b.Collection, b.Category, b.Type, b.AdditionalKey)

		// Balances for tokens outside the registry are skipped; the bot
		// only trades registered assets.
		a, ok := c.registry.Get(key)
		if !ok {
			continue
		}

		qty, err := asset.ParseString(a, b.Quantity)
		if err != nil {
			c.logger.Warn(ctx, "skipping balance with bad quantity",
				"token", key.String(), "quantity", b.Quantity)
			continue
		}

		balances = append(balances, domain.Balance{Asset: a, Quantity: qty})
	}

	return balances, nil
}

// post runs a JSON POST through the circuit breaker.
func (c *Client) post(ctx context.Context, path string, body, result any) (*httpclient.Response, error) {
	resp, err := c.cb.Execute(func() (*httpclient.Response, error) {
		return c.http.NewRequest().
			SetBody(body).
			SetResult(result).
			Post(ctx, path)
	})
	if err != nil {
		return nil, apperror.New(apperror.CodeGalaSwapConnectionFailed, apperror.WithCause(err))
	}

	if resp.IsError() {
		return resp, c.classifyFailure(resp, "")
	}

	return resp, nil
}

// classifyFailure maps an API failure to a liquidity, pool, or generic
// error code. The chain reports illiquid pools both as 404s and as
// message strings.
func (c *Client) classifyFailure(resp *httpclient.Response, message string) error {
	body := message
	if body == "" && resp != nil {
		body = resp.String()
	}
	lower := strings.ToLower(body)

	switch {
	case strings.Contains(lower, "liquidity"):
		return apperror.New(apperror.CodeInsufficientLiquidity, apperror.WithMessage(body))
	case strings.Contains(lower, "pool") && (strings.Contains(lower, "not found") || strings.Contains(lower, "does not exist")):
		return apperror.New(apperror.CodePoolNotFound, apperror.WithMessage(body))
	case resp != nil && resp.StatusCode == 404:
		return apperror.New(apperror.CodePoolNotFound, apperror.WithMessage(body))
	default:
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return apperror.New(apperror.CodeGalaSwapAPIError,
			apperror.WithMessage(fmt.Sprintf("gateway error (status %d): %s", status, body)))
	}
}

func classKeyDTO(key asset.ClassKey) tokenClassKeyDTO {
	return tokenClassKeyDTO{
		Collection:    key.Collection,
		Category:      key.Category,
		Type:          key.Type,
		AdditionalKey: key.AdditionalKey,
	}
}
