package domain

import (
	"time"

	"github.com/Tariq3654467/trading-bot-galaswap/internal/asset"
)

// SwapReceipt is the acknowledgement returned after submitting a swap.
// Settlement happens asynchronously on chain; the transaction id is the
// only handle the bot keeps.
type SwapReceipt struct {
	TransactionID string
	TokenIn       *asset.Asset
	TokenOut      *asset.Asset
	AmountIn      asset.Amount
	MinAmountOut  asset.Amount
	FeeTier       int
	SubmittedAt   time.Time
}

// Balance is a wallet balance for a single token.
type Balance struct {
	Asset    *asset.Asset
	Quantity asset.Amount
}
