package binance

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Tariq3654467/trading-bot-galaswap/business/cex/domain"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
	"github.com/Tariq3654467/trading-bot-galaswap/internal/wsconn"
)

// TickerStream maintains a live price cache fed by the combined
// miniTicker websocket stream.
type TickerStream struct {
	ws      *wsconn.Client
	symbols []string
	logger  logger.LoggerInterface

	latest map[string]*domain.Ticker
	mu     sync.RWMutex
}

// NewTickerStream creates a stream for the given symbols.
func NewTickerStream(wsURL string, symbols []string, log logger.LoggerInterface) *TickerStream {
	streams := make([]string, len(symbols))
	for i, s := range symbols {
		streams[i] = strings.ToLower(s) + "@miniTicker"
	}
	endpoint := strings.TrimSuffix(wsURL, "/") + "/stream?streams=" + strings.Join(streams, "/")

	return &TickerStream{
		ws:      wsconn.New(wsconn.DefaultConfig(endpoint)),
		symbols: symbols,
		logger:  log,
		latest:  make(map[string]*domain.Ticker),
	}
}

// Connect opens the stream and starts consuming ticks.
func (s *TickerStream) Connect(ctx context.Context) error {
	if err := s.ws.Connect(ctx); err != nil {
		return err
	}

	go s.consume(ctx)
	return nil
}

// Latest returns the most recent ticker for a symbol, if any.
func (s *TickerStream) Latest(symbol string) (*domain.Ticker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.latest[strings.ToUpper(symbol)]
	return t, ok
}

// Close shuts the stream down.
func (s *TickerStream) Close() error {
	return s.ws.Close()
}

// combined stream envelope: {"stream":"galausdt@miniTicker","data":{...}}
type streamEnvelope struct {
	Stream string        `json:"stream"`
	Data   miniTickerDTO `json:"data"`
}

type miniTickerDTO struct {
	EventType string `json:"e"`
	Symbol    string `json:"s"`
	Close     string `json:"c"`
}

func (s *TickerStream) consume(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-s.ws.Messages():
			if !ok {
				return
			}
			s.handle(ctx, msg)
		}
	}
}

func (s *TickerStream) handle(ctx context.Context, msg []byte) {
	var envelope streamEnvelope
	if err := json.Unmarshal(msg, &envelope); err != nil {
		s.logger.Debug(ctx, "dropping unparseable stream message", "error", err)
		return
	}

	if envelope.Data.Symbol == "" {
		return
	}

	price, err := decimal.NewFromString(envelope.Data.Close)
	if err != nil || !price.IsPositive() {
		return
	}

	ticker := &domain.Ticker{
		Symbol:     envelope.Data.Symbol,
		Price:      price,
		ObservedAt: time.Now(),
	}

	s.mu.Lock()
	s.latest[envelope.Data.Symbol] = ticker
	s.mu.Unlock()
}
