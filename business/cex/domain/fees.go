package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FeeMode selects which side of the fee schedule the bot pays.
// Maker applies when the executor rests limit orders, taker when it
// crosses the book with market orders. The choice materially changes
// profitability, so it is configuration, never assumed.
type FeeMode string

const (
	FeeModeMaker FeeMode = "maker"
	FeeModeTaker FeeMode = "taker"
)

// ParseFeeMode parses a fee mode string, defaulting to taker.
func ParseFeeMode(s string) FeeMode {
	if strings.EqualFold(s, string(FeeModeMaker)) {
		return FeeModeMaker
	}
	return FeeModeTaker
}

// FeeSchedule holds the exchange's maker and taker rates as fractions.
type FeeSchedule struct {
	MakerRate decimal.Decimal
	TakerRate decimal.Decimal
}

// Rate returns the rate for the given mode.
func (f FeeSchedule) Rate(mode FeeMode) decimal.Decimal {
	if mode == FeeModeMaker {
		return f.MakerRate
	}
	return f.TakerRate
}
