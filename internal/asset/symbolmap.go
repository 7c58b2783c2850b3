package asset

// Wrapped GalaChain tokens trade under their underlying symbols on
// centralized venues (GWETH pools against ETH markets, GUSDT against
// USDT). Unknown symbols map to themselves.
var exchangeSymbols = map[string]string{
	"GALA":  "GALA",
	"GUSDC": "USDC",
	"GUSDT": "USDT",
	"GWETH": "ETH",
	"GWBTC": "BTC",
	"GSOL":  "SOL",
}

// ExchangeSymbol returns the centralized-exchange symbol for an asset.
func ExchangeSymbol(a *Asset) string {
	if a == nil {
		return ""
	}
	if mapped, ok := exchangeSymbols[a.Symbol()]; ok {
		return mapped
	}
	return a.Symbol()
}

// PairSymbol returns the exchange market symbol for a base/quote pair
// (e.g., GALA + GUSDT -> "GALAUSDT").
func PairSymbol(base, quote *Asset) string {
	return ExchangeSymbol(base) + ExchangeSymbol(quote)
}
