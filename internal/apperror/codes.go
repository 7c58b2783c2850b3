package apperror

// Code represents a unique error code for the application
type Code string

// General error codes
const (
	CodeRequiredField   Code = "REQUIRED_FIELD"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeNotFound        Code = "NOT_FOUND"
	CodeValidationError Code = "VALIDATION_ERROR"

	CodeConfigurationError Code = "CONFIGURATION_ERROR"

	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodeServiceTimeout       Code = "SERVICE_TIMEOUT"
	CodeServiceUnavailable   Code = "SERVICE_UNAVAILABLE"
	CodeRateLimitExceeded    Code = "RATE_LIMIT_EXCEEDED"
	CodeUnauthorized         Code = "UNAUTHORIZED"

	CodeInternalError Code = "INTERNAL_ERROR"
	CodeUnknownError  Code = "UNKNOWN_ERROR"
)

// GalaChain / GalaSwap error codes
const (
	CodeGalaSwapConnectionFailed Code = "GALASWAP_CONNECTION_FAILED"
	CodeGalaSwapAPIError         Code = "GALASWAP_API_ERROR"
	CodeQuoteFailed              Code = "QUOTE_FAILED"
	CodePoolNotFound             Code = "POOL_NOT_FOUND"
	CodeInsufficientLiquidity    Code = "INSUFFICIENT_LIQUIDITY"
	CodeSwapRequestFailed        Code = "SWAP_REQUEST_FAILED"
	CodeSigningFailed            Code = "SIGNING_FAILED"
	CodeBalanceFetchFailed       Code = "BALANCE_FETCH_FAILED"
)

// Centralized exchange error codes
const (
	CodeExchangeConnectionFailed Code = "EXCHANGE_CONNECTION_FAILED"
	CodeExchangeAPIError         Code = "EXCHANGE_API_ERROR"
	CodeExchangeRateLimited      Code = "EXCHANGE_RATE_LIMITED"
	CodePriceUnavailable         Code = "PRICE_UNAVAILABLE"
	CodeOrderExecutionFailed     Code = "ORDER_EXECUTION_FAILED"
	CodeInvalidSymbol            Code = "INVALID_SYMBOL"
)

// Arbitrage error codes
const (
	CodeProfitCalculationFailed Code = "PROFIT_CALCULATION_FAILED"
	CodeInvalidTradeSize        Code = "INVALID_TRADE_SIZE"
	CodeUnbalancedPosition      Code = "UNBALANCED_POSITION"
	CodeCircuitOpen             Code = "CIRCUIT_OPEN"
)
