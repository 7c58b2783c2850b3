package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExecutionStatus tracks how far a two-leg execution got.
type ExecutionStatus string

const (
	// StatusCompleted means both legs executed.
	StatusCompleted ExecutionStatus = "COMPLETED"

	// StatusAborted means leg 1 failed and nothing moved.
	StatusAborted ExecutionStatus = "ABORTED"

	// StatusUnbalanced means leg 1 executed and leg 2 failed, leaving the
	// position open across venues. Requires manual intervention.
	StatusUnbalanced ExecutionStatus = "UNBALANCED"
)

// ExecutionRecord is the persisted outcome of one executed opportunity.
type ExecutionRecord struct {
	ID            string
	OpportunityID string
	Pair          string
	Direction     Direction
	Status        ExecutionStatus

	TradeSize decimal.Decimal
	NetProfit decimal.Decimal

	DexTxID    string
	CexOrderID string

	Error      string
	ExecutedAt time.Time
}
