package domain

import "time"

// AlertKind names the alert category.
type AlertKind string

const (
	// AlertUnbalancedPosition fires when leg 2 fails after leg 1 executed.
	AlertUnbalancedPosition AlertKind = "UNBALANCED_POSITION"

	// AlertExecutionFailed fires when an execution aborts before any funds
	// moved.
	AlertExecutionFailed AlertKind = "EXECUTION_FAILED"
)

// Alert is an operator notification. Unbalanced-position alerts are the
// loudest thing the bot emits; they mean funds are split across venues
// and a human has to unwind the position.
type Alert struct {
	Kind    AlertKind
	Message string
	Fields  map[string]string
	At      time.Time
}
