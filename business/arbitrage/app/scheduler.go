package app

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/Tariq3654467/trading-bot-galaswap/internal/logger"
)

// Scheduler drives the search-and-execute cycle on a fixed interval.
// Ticks run strictly one at a time; a slow cycle delays the next one
// rather than overlapping it. Nothing that happens inside a tick can
// take the loop down: errors are logged and panics are recovered at the
// tick boundary.
type Scheduler struct {
	search   *SearchDriver
	executor *Executor
	interval time.Duration
	logger   logger.LoggerInterface

	ticks      metric.Int64Counter
	executions metric.Int64Counter
}

// NewScheduler creates a new Scheduler.
func NewScheduler(search *SearchDriver, executor *Executor, interval time.Duration, log logger.LoggerInterface) *Scheduler {
	meter := otel.Meter("arbitrage")
	ticks, _ := meter.Int64Counter("arbitrage_ticks_total",
		metric.WithDescription("Completed scheduler ticks"))
	executions, _ := meter.Int64Counter("arbitrage_executions_total",
		metric.WithDescription("Opportunities handed to the executor"))

	return &Scheduler{
		search:     search,
		executor:   executor,
		interval:   interval,
		logger:     log,
		ticks:      ticks,
		executions: executions,
	}
}

// Run blocks until ctx is cancelled, ticking immediately and then on
// every interval.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info(ctx, "scheduler started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info(ctx, "scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick runs one full search-and-execute cycle.
func (s *Scheduler) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "tick panicked", "panic", fmt.Sprint(r))
			s.ticks.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "panic")))
		}
	}()

	start := time.Now()

	best := s.search.FindBest(ctx)
	if best == nil {
		s.logger.Debug(ctx, "no opportunity this cycle", "elapsed", time.Since(start).String())
		s.ticks.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "idle")))
		return
	}

	s.executions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("pair", best.Pair.Label()),
		attribute.String("direction", best.Direction.String())))

	if err := s.executor.Execute(ctx, best); err != nil {
		s.logger.Error(ctx, "execution failed",
			"opportunity_id", best.ID, "error", err.Error())
		s.ticks.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "execution_failed")))
		return
	}

	s.ticks.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "executed")))
}
