package asset

// Well-known GalaChain token class keys
var (
	KeyGALA  = NewUnitClassKey("GALA")
	KeyGUSDC = NewUnitClassKey("GUSDC")
	KeyGUSDT = NewUnitClassKey("GUSDT")
	KeyGWETH = NewUnitClassKey("GWETH")
	KeyGWBTC = NewUnitClassKey("GWBTC")
	KeyGSOL  = NewUnitClassKey("GSOL")
)

// Well-known Assets (pre-created instances)
var (
	GALA  = NewAssetWithName(KeyGALA, "GALA", "Gala", 8)
	GUSDC = NewStableAsset(KeyGUSDC, "GUSDC", "Gala USD Coin", 6)
	GUSDT = NewStableAsset(KeyGUSDT, "GUSDT", "Gala Tether USD", 6)
	GWETH = NewAssetWithName(KeyGWETH, "GWETH", "Gala Wrapped Ether", 18)
	GWBTC = NewAssetWithName(KeyGWBTC, "GWBTC", "Gala Wrapped Bitcoin", 8)
	GSOL  = NewAssetWithName(KeyGSOL, "GSOL", "Gala Wrapped Solana", 9)
)

// DefaultRegistry returns a registry pre-populated with well-known assets.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	r.Register(GALA)
	r.Register(GUSDC)
	r.Register(GUSDT)
	r.Register(GWETH)
	r.Register(GWBTC)
	r.Register(GSOL)

	return r
}

// MustNewToken creates and returns a token asset for a custom class key string.
func MustNewToken(classKey, symbol, name string, decimals uint8, stable bool) *Asset {
	key := MustParseClassKey(classKey)
	if stable {
		return NewStableAsset(key, symbol, name, decimals)
	}
	return NewAssetWithName(key, symbol, name, decimals)
}
