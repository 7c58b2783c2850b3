package galaswap

// DTOs for the GalaChain dexv3-contract and token-contract APIs.
// Amounts travel as decimal strings; the chain returns the output side
// of a quote as a negative amount.

// tokenClassKeyDTO identifies a token class on chain.
type tokenClassKeyDTO struct {
	Collection    string `json:"collection"`
	Category      string `json:"category"`
	Type          string `json:"type"`
	AdditionalKey string `json:"additionalKey"`
}

// quoteExactAmountRequest is the request for QuoteExactAmount.
// Token0 and token1 must be in lexicographic pool order.
type quoteExactAmountRequest struct {
	Token0     tokenClassKeyDTO `json:"token0"`
	Token1     tokenClassKeyDTO `json:"token1"`
	ZeroForOne bool             `json:"zeroForOne"`
	Fee        int              `json:"fee"`
	Amount     string           `json:"amount"`
}

// quoteExactAmountResponse is the response from QuoteExactAmount.
type quoteExactAmountResponse struct {
	Status  int            `json:"Status"`
	Message string         `json:"Message"`
	Data    *quoteDataDTO  `json:"Data"`
}

type quoteDataDTO struct {
	Amount0          string `json:"amount0"`
	Amount1          string `json:"amount1"`
	CurrentSqrtPrice string `json:"currentSqrtPrice"`
	NewSqrtPrice     string `json:"newSqrtPrice,omitempty"`
}

// compositePoolRequest is the request for GetCompositePool.
type compositePoolRequest struct {
	Token0ClassKey tokenClassKeyDTO `json:"token0ClassKey"`
	Token1ClassKey tokenClassKeyDTO `json:"token1ClassKey"`
	Fee            int              `json:"fee"`
}

// compositePoolResponse is the response from GetCompositePool.
type compositePoolResponse struct {
	Status int                   `json:"Status"`
	Data   *compositePoolDataDTO `json:"Data"`
}

type compositePoolDataDTO struct {
	Pool *poolDTO `json:"pool"`
}

type poolDTO struct {
	Token0    string `json:"token0"`
	Token1    string `json:"token1"`
	Fee       int    `json:"fee"`
	SqrtPrice string `json:"sqrtPrice"`
	Liquidity string `json:"liquidity"`
}

// swapDTO is the unsigned payload for ExactInputSingle.
type swapDTO struct {
	TokenIn          tokenClassKeyDTO `json:"tokenIn"`
	TokenOut         tokenClassKeyDTO `json:"tokenOut"`
	Fee              int              `json:"fee"`
	AmountIn         string           `json:"amountIn"`
	AmountOutMinimum string           `json:"amountOutMinimum"`
	Deadline         int64            `json:"deadline"`
	Recipient        string           `json:"recipient"`
}

// signedSwapRequest wraps a swap DTO with its signature.
type signedSwapRequest struct {
	DTO       swapDTO `json:"dto"`
	Signature string  `json:"signature"`
}

// swapResponse is the response from ExactInputSingle.
type swapResponse struct {
	Data struct {
		TransactionID string `json:"transactionId"`
		Hash          string `json:"hash"`
	} `json:"Data"`
}

// fetchBalancesRequest is the request for FetchBalances.
type fetchBalancesRequest struct {
	Owner string `json:"owner"`
}

// fetchBalancesResponse is the response from FetchBalances.
type fetchBalancesResponse struct {
	Data []balanceDTO `json:"Data"`
}

type balanceDTO struct {
	Collection    string `json:"collection"`
	Category      string `json:"category"`
	Type          string `json:"type"`
	AdditionalKey string `json:"additionalKey"`
	Quantity      string `json:"quantity"`
}
