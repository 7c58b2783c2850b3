package domain

// FailureKind classifies why an evaluation produced no opportunity.
// Callers branch on the kind instead of string-matching error messages.
type FailureKind string

const (
	// FailureLiquidity means the pool cannot fill the requested size.
	// Expected and frequent; drives the per-pair circuit breaker.
	FailureLiquidity FailureKind = "liquidity"

	// FailurePriceUnavailable means the exchange had no usable price.
	FailurePriceUnavailable FailureKind = "price_unavailable"

	// FailureTransport covers network, auth, and API errors from either
	// venue. Treated as "this check failed", never fatal.
	FailureTransport FailureKind = "transport"
)

// EvalResult is the tagged outcome of a single evaluation: either an
// opportunity or a classified reason there is none.
type EvalResult struct {
	Opportunity *Opportunity
	Failure     FailureKind
}

// Available wraps a successful evaluation.
func Available(opp *Opportunity) EvalResult {
	return EvalResult{Opportunity: opp}
}

// NotAvailable wraps a failed evaluation with its kind.
func NotAvailable(kind FailureKind) EvalResult {
	return EvalResult{Failure: kind}
}

// OK reports whether an opportunity was produced.
func (r EvalResult) OK() bool {
	return r.Opportunity != nil
}
