package domain

import (
	"sync"
	"time"
)

// LiquidityBreaker tracks consecutive liquidity failures per pair and
// temporarily skips pairs that keep failing. State lives for the life of
// the process and resets on restart.
//
// Transitions: CLOSED -> OPEN after maxFailures consecutive liquidity
// failures; OPEN -> CLOSED on any successful quote; after retryInterval
// an open pair gets one provisional attempt, which reopens on failure.
type LiquidityBreaker struct {
	maxFailures   int
	retryInterval time.Duration

	mu    sync.Mutex
	pairs map[string]*pairState
}

type pairState struct {
	consecutiveFailures int
	lastFailure         time.Time
}

// NewLiquidityBreaker creates a breaker with the given thresholds.
func NewLiquidityBreaker(maxFailures int, retryInterval time.Duration) *LiquidityBreaker {
	if maxFailures <= 0 {
		maxFailures = 3
	}
	return &LiquidityBreaker{
		maxFailures:   maxFailures,
		retryInterval: retryInterval,
		pairs:         make(map[string]*pairState),
	}
}

// Allow reports whether the pair may be attempted now.
func (b *LiquidityBreaker) Allow(pairKey string, now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, ok := b.pairs[pairKey]
	if !ok || state.consecutiveFailures < b.maxFailures {
		return true
	}

	// Open: allow a provisional retry once the cooldown has elapsed.
	return now.Sub(state.lastFailure) >= b.retryInterval
}

// RecordFailure notes a liquidity failure for the pair.
func (b *LiquidityBreaker) RecordFailure(pairKey string, now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state, ok := b.pairs[pairKey]
	if !ok {
		state = &pairState{}
		b.pairs[pairKey] = state
	}

	state.consecutiveFailures++
	state.lastFailure = now
}

// RecordSuccess closes the breaker for the pair.
func (b *LiquidityBreaker) RecordSuccess(pairKey string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.pairs, pairKey)
}

// IsOpen reports whether the pair is currently being skipped.
func (b *LiquidityBreaker) IsOpen(pairKey string, now time.Time) bool {
	return !b.Allow(pairKey, now)
}

// Failures returns the consecutive failure count for a pair.
func (b *LiquidityBreaker) Failures(pairKey string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if state, ok := b.pairs[pairKey]; ok {
		return state.consecutiveFailures
	}
	return 0
}
