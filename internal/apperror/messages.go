package apperror

// messages maps error codes to human-readable messages
var messages = map[Code]string{
	CodeRequiredField:   "Required field is missing",
	CodeInvalidInput:    "Invalid input provided",
	CodeInvalidFormat:   "Invalid data format",
	CodeInvalidState:    "Invalid state for this operation",
	CodeNotFound:        "Resource not found",
	CodeValidationError: "Validation error",

	CodeConfigurationError: "Configuration error",

	CodeExternalServiceError: "External service error",
	CodeServiceTimeout:       "Service request timeout",
	CodeServiceUnavailable:   "Service temporarily unavailable",
	CodeRateLimitExceeded:    "Rate limit exceeded",
	CodeUnauthorized:         "Unauthorized",

	CodeInternalError: "Internal error",
	CodeUnknownError:  "An unknown error occurred",

	CodeGalaSwapConnectionFailed: "Failed to connect to GalaSwap API",
	CodeGalaSwapAPIError:         "GalaSwap API error",
	CodeQuoteFailed:              "Failed to get swap quote",
	CodePoolNotFound:             "Liquidity pool not found",
	CodeInsufficientLiquidity:    "Insufficient pool liquidity for trade size",
	CodeSwapRequestFailed:        "Swap request failed",
	CodeSigningFailed:            "Failed to sign GalaChain payload",
	CodeBalanceFetchFailed:       "Failed to fetch balances",

	CodeExchangeConnectionFailed: "Failed to connect to exchange API",
	CodeExchangeAPIError:         "Exchange API error",
	CodeExchangeRateLimited:      "Exchange rate limit exceeded",
	CodePriceUnavailable:         "Price unavailable for symbol",
	CodeOrderExecutionFailed:     "Order execution failed",
	CodeInvalidSymbol:            "Invalid trading symbol",

	CodeProfitCalculationFailed: "Profit calculation failed",
	CodeInvalidTradeSize:        "Invalid trade size",
	CodeUnbalancedPosition:      "Position left unbalanced after partial execution",
	CodeCircuitOpen:             "Circuit breaker is open",
}
