// Package domain contains the core domain types for the cex context.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ticker is a last-price observation for an exchange symbol.
type Ticker struct {
	Symbol     string
	Price      decimal.Decimal
	ObservedAt time.Time
}

// IsStale reports whether the observation is older than maxAge.
func (t *Ticker) IsStale(maxAge time.Duration) bool {
	return time.Since(t.ObservedAt) > maxAge
}
